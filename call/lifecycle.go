// ABOUTME: Call attempt state machine
// ABOUTME: Explicit Idle -> Dialing -> AwaitingResult flow backed by a durable pending-call marker
package call

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
)

// State is the lifecycle position of the current call attempt.
type State int

const (
	// StateIdle means no call is in flight.
	StateIdle State = iota
	// StateDialing means a dial intent was issued and the caller is away
	// placing the call. The pending-call marker survives this state across
	// process restarts.
	StateDialing
	// StateAwaitingResult means the caller is back and owes an outcome.
	StateAwaitingResult
)

var (
	// ErrUnauthenticated means no caller identity is active; the caller is
	// asked to sign in before mutating anything.
	ErrUnauthenticated = errors.New("please sign in")

	// ErrNoActiveCall means a result was committed with no call awaiting
	// one - a state mismatch, typically a double commit.
	ErrNoActiveCall = errors.New("no call awaiting a result")
)

// Dialer places the platform call action. Fire and forget: the core never
// consumes a result from it.
type Dialer interface {
	Dial(phone string)
}

// Identity supplies the caller identity token gating mutations.
type Identity interface {
	// UserID returns the active identity, or an error when nobody is
	// signed in.
	UserID() (string, error)
}

// Authorize fails with ErrUnauthenticated unless an identity is active.
// Every mutating surface calls this first.
func Authorize(identity Identity) error {
	if identity == nil {
		return ErrUnauthenticated
	}
	if _, err := identity.UserID(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return nil
}

// Draft is the result form state primed when the caller returns from a
// call: the contact being resolved plus editable status and notes.
type Draft struct {
	ContactID uuid.UUID
	ProfileID uuid.UUID
	ShopName  string
	Phone     string
	Status    models.Status
	Notes     string
}

// Lifecycle drives one call attempt at a time. It is re-entrant across
// process restarts: Resume recovers the Dialing state solely from the
// durable pending-call marker.
type Lifecycle struct {
	db       *sql.DB
	dialer   Dialer
	identity Identity

	state     State
	draft     Draft
	commitErr error
}

func NewLifecycle(database *sql.DB, dialer Dialer, identity Identity) *Lifecycle {
	return &Lifecycle{
		db:       database,
		dialer:   dialer,
		identity: identity,
		state:    StateIdle,
	}
}

// State returns the machine's current position.
func (l *Lifecycle) State() State {
	return l.state
}

// Draft returns the result form state. Only meaningful in
// StateAwaitingResult.
func (l *Lifecycle) Draft() Draft {
	return l.draft
}

// CommitErr returns the error from the last rejected commit, cleared on
// resume and on a successful commit.
func (l *Lifecycle) CommitErr() error {
	return l.commitErr
}

// Dial records the pending-call marker and issues the dial intent with
// the contact's phone field verbatim. The marker is durable so the
// transition survives the caller suspending the app to place the call.
func (l *Lifecycle) Dial(contactID uuid.UUID) error {
	if err := Authorize(l.identity); err != nil {
		return err
	}

	contact, err := db.GetContact(l.db, contactID)
	if err != nil {
		return err
	}

	if err := db.SetStateID(l.db, db.StatePendingCallID, contact.ID); err != nil {
		return err
	}
	if err := db.SetStateID(l.db, db.StateActiveContactID, contact.ID); err != nil {
		return err
	}

	if l.dialer != nil {
		l.dialer.Dial(contact.Phone)
	}

	l.state = StateDialing
	return nil
}

// Resume is the entry point the host calls when the caller's attention
// returns to the application. When a pending-call marker exists the
// result form is primed from the contact and the machine moves to
// StateAwaitingResult. A marker pointing at a deleted contact is
// silently discarded - the profile was removed mid-call - and the
// machine stays Idle. Resume reports whether a result is now awaited.
func (l *Lifecycle) Resume() (bool, error) {
	pending, err := db.GetStateID(l.db, db.StatePendingCallID)
	if err != nil {
		return false, err
	}
	if pending == uuid.Nil {
		return l.state == StateAwaitingResult, nil
	}

	contact, err := db.GetContact(l.db, pending)
	if errors.Is(err, db.ErrNotFound) {
		if err := db.RemoveState(l.db, db.StatePendingCallID); err != nil {
			return false, err
		}
		l.state = StateIdle
		l.draft = Draft{}
		return false, nil
	}
	if err != nil {
		return false, err
	}

	status := contact.Status
	if status == models.StatusToCall || !status.Valid() {
		status = models.StatusAnswered
	}

	l.draft = Draft{
		ContactID: contact.ID,
		ProfileID: contact.ProfileID,
		ShopName:  contact.ShopName,
		Phone:     contact.Phone,
		Status:    status,
		Notes:     contact.Notes,
	}
	l.commitErr = nil
	l.state = StateAwaitingResult
	return true, nil
}

// Commit confirms the chosen outcome: the contact's status and notes are
// updated, a history snapshot is appended, the pending-call marker is
// cleared, and the queue cursor is re-derived. An empty status is
// rejected with a validation error and the machine stays in
// StateAwaitingResult so the caller can re-prompt.
func (l *Lifecycle) Commit(status models.Status, notes string) (*models.CallHistoryEntry, error) {
	if l.state != StateAwaitingResult {
		return nil, ErrNoActiveCall
	}
	if err := Authorize(l.identity); err != nil {
		return nil, err
	}

	if status == "" {
		l.commitErr = fmt.Errorf("%w: select a call status", db.ErrValidation)
		return nil, l.commitErr
	}

	entry, err := RecordOutcome(l.db, l.draft.ContactID, status, notes)
	if err != nil {
		l.commitErr = err
		return nil, err
	}

	if err := db.RemoveState(l.db, db.StatePendingCallID); err != nil {
		return nil, err
	}

	l.commitErr = nil
	l.draft = Draft{}
	l.state = StateIdle
	return entry, nil
}

// Cancel abandons the in-progress result, clearing the pending-call
// marker without touching the store or the history.
func (l *Lifecycle) Cancel() error {
	if err := db.RemoveState(l.db, db.StatePendingCallID); err != nil {
		return err
	}
	l.draft = Draft{}
	l.commitErr = nil
	l.state = StateIdle
	return nil
}
