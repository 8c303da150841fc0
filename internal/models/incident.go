package models

import (
	"time"
)

// SeverityLevel is the coarse severity tier derived from the numeric score.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "LOW"
	SeverityMedium   SeverityLevel = "MEDIUM"
	SeverityHigh     SeverityLevel = "HIGH"
	SeverityCritical SeverityLevel = "CRITICAL"
)

// IncidentStatus is the lifecycle state of an incident.
type IncidentStatus string

const (
	StatusDetected   IncidentStatus = "DETECTED"
	StatusVerified   IncidentStatus = "VERIFIED"
	StatusReported   IncidentStatus = "REPORTED"
	StatusDispatched IncidentStatus = "DISPATCHED"
	StatusClosed     IncidentStatus = "CLOSED"
	StatusFalseAlarm IncidentStatus = "FALSE_ALARM"
)

// IncidentType is the accident category assigned at detection time.
type IncidentType string

const (
	TypeVehicleCollision IncidentType = "VEHICLE_COLLISION"
	TypeMultiVehicle     IncidentType = "MULTI_VEHICLE"
	TypePedestrianImpact IncidentType = "PEDESTRIAN_IMPACT"
	TypeRollover         IncidentType = "ROLLOVER"
	TypeFireSmoke        IncidentType = "FIRE_SMOKE"
)

// Incident is the central entity tracked through the response lifecycle.
// Audit timestamps are append-only: once set by a transition they are never
// cleared or overwritten.
type Incident struct {
	ID                 string         `json:"id"`
	CameraID           string         `json:"camera_id"`
	IncidentType       IncidentType   `json:"incident_type"`
	Severity           SeverityLevel  `json:"severity"`
	SeverityScore      float64        `json:"severity_score"`
	ConfidenceScore    float64        `json:"confidence_score"`
	Status             IncidentStatus `json:"status"`
	VehiclesInvolved   int            `json:"vehicles_involved"`
	PedestrianInvolved bool           `json:"pedestrian_involved"`
	FireDetected       bool           `json:"fire_detected"`
	Rollover           bool           `json:"rollover"`
	Description        string         `json:"description,omitempty"`
	Snapshots          []string       `json:"snapshots,omitempty"`
	DetectedAt         time.Time      `json:"detected_at"`
	VerifiedBy         string         `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time     `json:"verified_at,omitempty"`
	ReportedBy         string         `json:"reported_by,omitempty"`
	ReportedAt         *time.Time     `json:"reported_at,omitempty"`
	DispatchedBy       string         `json:"dispatched_by,omitempty"`
	DispatchedAt       *time.Time     `json:"dispatched_at,omitempty"`
	ClosedBy           string         `json:"closed_by,omitempty"`
	ClosedAt           *time.Time     `json:"closed_at,omitempty"`
	ClosureNotes       string         `json:"closure_notes,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// IncidentFilter narrows List queries. Zero values mean "no filter".
type IncidentFilter struct {
	Status     IncidentStatus
	Severity   SeverityLevel
	ActiveOnly bool
	Limit      int
	Offset     int
}

// DashboardStats is the aggregate snapshot shown on the operator dashboard.
type DashboardStats struct {
	ActiveIncidents      int `json:"active_incidents"`
	TodayIncidents       int `json:"today_incidents"`
	PendingVerification  int `json:"pending_verification"`
	DispatchedAmbulances int `json:"dispatched_ambulances"`
	PoliceReportsSent    int `json:"police_reports_sent"`
}
