package lifecycle

import (
	"testing"

	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanApply_TransitionTable(t *testing.T) {
	tests := []struct {
		action Action
		from   models.IncidentStatus
		want   bool
	}{
		{ActionVerify, models.StatusDetected, true},
		{ActionVerify, models.StatusVerified, false},
		{ActionVerify, models.StatusReported, false},
		{ActionVerify, models.StatusDispatched, false},
		{ActionVerify, models.StatusClosed, false},
		{ActionVerify, models.StatusFalseAlarm, false},

		{ActionFalseAlarm, models.StatusDetected, true},
		{ActionFalseAlarm, models.StatusVerified, false},
		{ActionFalseAlarm, models.StatusDispatched, false},

		{ActionReport, models.StatusDetected, true},
		{ActionReport, models.StatusVerified, true},
		{ActionReport, models.StatusReported, false},
		{ActionReport, models.StatusDispatched, false},
		{ActionReport, models.StatusClosed, false},

		{ActionDispatch, models.StatusDetected, true},
		{ActionDispatch, models.StatusVerified, true},
		{ActionDispatch, models.StatusReported, true},
		{ActionDispatch, models.StatusDispatched, false},
		{ActionDispatch, models.StatusClosed, false},
		{ActionDispatch, models.StatusFalseAlarm, false},

		{ActionClose, models.StatusDetected, true},
		{ActionClose, models.StatusVerified, true},
		{ActionClose, models.StatusReported, true},
		{ActionClose, models.StatusDispatched, true},
		{ActionClose, models.StatusFalseAlarm, true},
		{ActionClose, models.StatusClosed, false},
	}

	for _, tt := range tests {
		got := CanApply(tt.action, tt.from)
		assert.Equal(t, tt.want, got, "%s from %s", tt.action, tt.from)
	}
}

func TestTarget(t *testing.T) {
	assert.Equal(t, models.StatusVerified, Target(ActionVerify))
	assert.Equal(t, models.StatusFalseAlarm, Target(ActionFalseAlarm))
	assert.Equal(t, models.StatusReported, Target(ActionReport))
	assert.Equal(t, models.StatusDispatched, Target(ActionDispatch))
	assert.Equal(t, models.StatusClosed, Target(ActionClose))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusClosed))
	assert.True(t, IsTerminal(models.StatusFalseAlarm))
	assert.False(t, IsTerminal(models.StatusDetected))
	assert.False(t, IsTerminal(models.StatusVerified))
	assert.False(t, IsTerminal(models.StatusReported))
	assert.False(t, IsTerminal(models.StatusDispatched))
}

func TestEventName(t *testing.T) {
	for _, a := range []Action{ActionVerify, ActionFalseAlarm, ActionReport, ActionDispatch, ActionClose} {
		assert.NotEmpty(t, EventName(a), "action %s has no event name", a)
	}
}
