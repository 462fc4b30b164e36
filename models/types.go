// ABOUTME: Data models for cold-call entities
// ABOUTME: Defines Profile, Contact, CallHistoryEntry structs and the Status enumeration
package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the call-outcome state of a contact. The set is closed;
// anything outside it is rejected by the store.
type Status string

const (
	StatusToCall         Status = "To Call"
	StatusAnswered       Status = "Answered"
	StatusNoAnswer       Status = "No Answer"
	StatusBusy           Status = "Busy"
	StatusVoicemail      Status = "Voicemail"
	StatusOrdered        Status = "Ordered"
	StatusNotInterested  Status = "Not Interested"
	StatusFollowUpNeeded Status = "Follow-up Needed"
	StatusWrongNumber    Status = "Wrong Number"
	StatusDoNotCall      Status = "Do Not Call"
)

// AllStatuses lists every valid status, in the order the result form shows them.
var AllStatuses = []Status{
	StatusAnswered,
	StatusNoAnswer,
	StatusBusy,
	StatusVoicemail,
	StatusOrdered,
	StatusNotInterested,
	StatusFollowUpNeeded,
	StatusWrongNumber,
	StatusDoNotCall,
	StatusToCall,
}

// PendingStatuses are the outcomes that still count toward the pending-calls
// number on the dashboard.
var PendingStatuses = []Status{
	StatusToCall,
	StatusFollowUpNeeded,
	StatusNoAnswer,
	StatusBusy,
	StatusVoicemail,
}

// MissedStatuses back the "Missed Calls" composite history filter.
var MissedStatuses = []Status{
	StatusNoAnswer,
	StatusBusy,
	StatusVoicemail,
}

// Valid reports whether s is one of the closed enumeration values.
func (s Status) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Pending reports whether s still requires caller attention.
func (s Status) Pending() bool {
	for _, v := range PendingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Missed reports whether s is one of the missed-call outcomes.
func (s Status) Missed() bool {
	for _, v := range MissedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseStatus returns the Status for a stored string, or false if the
// string is outside the enumeration.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, st.Valid()
}

// Profile is one named call campaign, created by importing a contact list.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactsCount int       `json:"contacts_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Contact is a single shop entry owned by a profile. Position is the
// stable import order the call queue walks.
type Contact struct {
	ID         uuid.UUID `json:"id"`
	ProfileID  uuid.UUID `json:"profile_id"`
	ShopName   string    `json:"shop_name"`
	Nickname   string    `json:"nickname"`
	TypeOfShop string    `json:"type_of_shop"`
	Phone      string    `json:"phone"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	Position   int       `json:"position"`
}

// CallHistoryEntry records one committed call outcome. Name and phone are
// snapshots taken at commit time, not live references; the entry is never
// updated after it is appended.
type CallHistoryEntry struct {
	ID          string    `json:"id"` // ULID, time-sortable
	ProfileID   uuid.UUID `json:"profile_id"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

// Summary aggregates committed calls for the dashboard.
type Summary struct {
	Total          int     `json:"total"`
	Answered       int     `json:"answered"`
	Ordered        int     `json:"ordered"`
	ConversionRate float64 `json:"conversion_rate"`
}

// History filter values accepted alongside literal statuses.
const (
	FilterAll    = "All"
	FilterMissed = "Missed Calls"
)
