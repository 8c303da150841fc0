package models

import (
	"encoding/json"
	"time"
)

// ActionKind distinguishes the two irreversible external actions.
type ActionKind string

const (
	ActionPoliceReport      ActionKind = "POLICE_REPORT"
	ActionAmbulanceDispatch ActionKind = "AMBULANCE_DISPATCH"
)

// DispatchAction is one attempted external action for an incident.
// At most one successful action of a given kind exists per incident;
// failed attempts may be recorded any number of times.
type DispatchAction struct {
	ID             int64           `json:"id"`
	IncidentID     string          `json:"incident_id"`
	Kind           ActionKind      `json:"kind"`
	TargetID       string          `json:"target_id"`
	Success        bool            `json:"success"`
	FailureReason  string          `json:"failure_reason,omitempty"`
	RequestPayload json.RawMessage `json:"request_payload,omitempty"`
	RequestedBy    string          `json:"requested_by"`
	CreatedAt      time.Time       `json:"created_at"`
}
