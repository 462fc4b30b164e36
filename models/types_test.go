package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, Status("").Valid())
	assert.False(t, Status("Completed").Valid())
	assert.False(t, Status("to call").Valid(), "status matching is case-sensitive")
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("Follow-up Needed")
	assert.True(t, ok)
	assert.Equal(t, StatusFollowUpNeeded, st)

	_, ok = ParseStatus("Select Status")
	assert.False(t, ok)
}

func TestStatusPending(t *testing.T) {
	pending := []Status{StatusToCall, StatusFollowUpNeeded, StatusNoAnswer, StatusBusy, StatusVoicemail}
	for _, s := range pending {
		assert.True(t, s.Pending(), "expected %q to be pending", s)
	}

	done := []Status{StatusAnswered, StatusOrdered, StatusNotInterested, StatusWrongNumber, StatusDoNotCall}
	for _, s := range done {
		assert.False(t, s.Pending(), "expected %q to not be pending", s)
	}
}

func TestStatusMissed(t *testing.T) {
	assert.True(t, StatusNoAnswer.Missed())
	assert.True(t, StatusBusy.Missed())
	assert.True(t, StatusVoicemail.Missed())
	assert.False(t, StatusAnswered.Missed())
	assert.False(t, StatusToCall.Missed())
}
