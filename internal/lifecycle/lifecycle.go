package lifecycle

import (
	"github.com/shenikar/accident_responder_system/internal/models"
)

// Action names an operator-triggered lifecycle transition.
type Action string

const (
	ActionVerify     Action = "verify"
	ActionFalseAlarm Action = "mark_false_alarm"
	ActionReport     Action = "send_police_report"
	ActionDispatch   Action = "dispatch_ambulance"
	ActionClose      Action = "close"
)

// Event names broadcast for each applied transition.
const (
	EventVerified   = "incident_verified"
	EventFalseAlarm = "incident_false_alarm"
	EventReported   = "incident_reported"
	EventDispatched = "incident_dispatched"
	EventClosed     = "incident_closed"
)

// allowedFrom maps each action to the set of source states it may fire from.
// Close is handled separately: it is allowed from every state except CLOSED.
var allowedFrom = map[Action]map[models.IncidentStatus]bool{
	ActionVerify: {
		models.StatusDetected: true,
	},
	ActionFalseAlarm: {
		models.StatusDetected: true,
	},
	ActionReport: {
		models.StatusDetected: true,
		models.StatusVerified: true,
	},
	ActionDispatch: {
		models.StatusDetected: true,
		models.StatusVerified: true,
		models.StatusReported: true,
	},
}

// target maps each action to the state it advances the incident into.
var target = map[Action]models.IncidentStatus{
	ActionVerify:     models.StatusVerified,
	ActionFalseAlarm: models.StatusFalseAlarm,
	ActionReport:     models.StatusReported,
	ActionDispatch:   models.StatusDispatched,
	ActionClose:      models.StatusClosed,
}

// eventFor maps each action to its broadcast event name.
var eventFor = map[Action]string{
	ActionVerify:     EventVerified,
	ActionFalseAlarm: EventFalseAlarm,
	ActionReport:     EventReported,
	ActionDispatch:   EventDispatched,
	ActionClose:      EventClosed,
}

// IsTerminal reports whether no further transitions may leave the state.
func IsTerminal(s models.IncidentStatus) bool {
	return s == models.StatusClosed || s == models.StatusFalseAlarm
}

// CanApply reports whether action may fire from the given state.
func CanApply(action Action, from models.IncidentStatus) bool {
	if action == ActionClose {
		return from != models.StatusClosed
	}
	return allowedFrom[action][from]
}

// Target returns the state the action advances into.
func Target(action Action) models.IncidentStatus {
	return target[action]
}

// EventName returns the broadcast event name for an applied action.
func EventName(action Action) string {
	return eventFor[action]
}

// AllStatuses lists every lifecycle state.
func AllStatuses() []models.IncidentStatus {
	return []models.IncidentStatus{
		models.StatusDetected,
		models.StatusVerified,
		models.StatusReported,
		models.StatusDispatched,
		models.StatusClosed,
		models.StatusFalseAlarm,
	}
}
