package service

import (
	"errors"
	"fmt"

	"github.com/shenikar/accident_responder_system/internal/lifecycle"
	"github.com/shenikar/accident_responder_system/internal/models"
)

// ErrNotFound is returned when the referenced incident does not exist.
var ErrNotFound = errors.New("incident not found")

// ErrAlreadyInProgress is returned when a dispatch action of the same kind
// is currently in flight for the incident. The caller should retry later.
var ErrAlreadyInProgress = errors.New("dispatch action already in progress")

// InvalidTransitionError reports a guard violation: the attempted transition
// is not allowed from the incident's current state. The incident is unchanged.
type InvalidTransitionError struct {
	Action lifecycle.Action
	From   models.IncidentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %q is not allowed from state %s", e.Action, e.From)
}

// PolicyViolationError reports a request that is well-formed but forbidden
// by dispatch policy, e.g. ambulance dispatch on a LOW severity incident.
type PolicyViolationError struct {
	Reason string
}

func (e *PolicyViolationError) Error() string {
	return "policy violation: " + e.Reason
}

// NotifierError reports a failed or timed-out external notification.
// The incident state was not advanced; the operation may be retried.
type NotifierError struct {
	Target string
	Reason string
	Err    error
}

func (e *NotifierError) Error() string {
	return fmt.Sprintf("notifier %s failed: %s", e.Target, e.Reason)
}

func (e *NotifierError) Unwrap() error {
	return e.Err
}
