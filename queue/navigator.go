// ABOUTME: Call queue navigation over a profile's ordered contact list
// ABOUTME: Pure position math - forward-first wraparound selection, strict next/previous scans
package queue

import (
	"github.com/harperreed/coldcall/models"
)

// FindCurrent locates the contact the caller should dial next. It scans
// forward from cursor to the end of the list, then wraps to scan from the
// top up to (but excluding) cursor. The returned index is the corrected
// cursor; when it differs from the one passed in, the caller should
// persist it (the cursor self-heals after external mutation). ok is false
// when no To Call contact remains - the queue is exhausted, which covers
// the empty-profile case too.
func FindCurrent(contacts []models.Contact, cursor int) (models.Contact, int, bool) {
	if cursor < 0 {
		cursor = 0
	}

	for i := cursor; i < len(contacts); i++ {
		if contacts[i].Status == models.StatusToCall {
			return contacts[i], i, true
		}
	}

	for i := 0; i < cursor && i < len(contacts); i++ {
		if contacts[i].Status == models.StatusToCall {
			return contacts[i], i, true
		}
	}

	return models.Contact{}, 0, false
}

// Next returns the index of the next To Call contact strictly after
// current. No wraparound: when nothing remains in that direction, ok is
// false.
func Next(contacts []models.Contact, current int) (int, bool) {
	for i := current + 1; i < len(contacts); i++ {
		if contacts[i].Status == models.StatusToCall {
			return i, true
		}
	}
	return 0, false
}

// Previous returns the index of the nearest To Call contact strictly
// before current, scanning backward without wraparound. The scan excludes
// index 0, but when nothing is found and the first contact itself is
// To Call, index 0 is returned (boundary inclusion).
func Previous(contacts []models.Contact, current int) (int, bool) {
	if current > len(contacts) {
		current = len(contacts)
	}
	for i := current - 1; i > 0; i-- {
		if contacts[i].Status == models.StatusToCall {
			return i, true
		}
	}
	if current > 0 && len(contacts) > 0 && contacts[0].Status == models.StatusToCall {
		return 0, true
	}
	return 0, false
}

// HasPrevious reports whether any To Call contact sits strictly before
// current; the previous control is disabled when it returns false.
func HasPrevious(contacts []models.Contact, current int) bool {
	if current > len(contacts) {
		current = len(contacts)
	}
	for i := 0; i < current; i++ {
		if contacts[i].Status == models.StatusToCall {
			return true
		}
	}
	return false
}

// HasNext reports whether any To Call contact sits strictly after current.
func HasNext(contacts []models.Contact, current int) bool {
	for i := current + 1; i < len(contacts); i++ {
		if contacts[i].Status == models.StatusToCall {
			return true
		}
	}
	return false
}
