package v1

import (
	"encoding/json"
	"time"
)

// DetectionFeatures is the feature set of one detection event.
// @Description Feature set of one machine detection
type DetectionFeatures struct {
	VehiclesInvolved   int     `json:"vehicles_involved" validate:"gte=0"`
	PedestrianInvolved bool    `json:"pedestrian_involved"`
	FireDetected       bool    `json:"fire_detected"`
	Rollover           bool    `json:"rollover"`
	EstimatedSpeedKmh  float64 `json:"estimated_speed_kmh" validate:"gte=0"`
}

// DetectionRequest is the ingestion gateway intake payload.
// @Description Detection event produced by the ML pipeline
type DetectionRequest struct {
	CameraID    string            `json:"camera_id" validate:"required"`
	Timestamp   time.Time         `json:"timestamp,omitempty"`
	Features    DetectionFeatures `json:"features" validate:"required"`
	Confidence  float64           `json:"confidence" validate:"gte=0,lte=1"`
	Description string            `json:"description,omitempty"`
	Snapshots   []string          `json:"snapshots,omitempty"`
}

// DetectionResponse acknowledges an ingested detection.
// @Description Created incident identifier and initial severity
type DetectionResponse struct {
	IncidentID string  `json:"incident_id"`
	Severity   string  `json:"severity"`
	Score      float64 `json:"severity_score"`
	Status     string  `json:"status"`
}

// ActorRequest carries the operator identity for a transition.
// @Description Operator identity for a lifecycle transition
type ActorRequest struct {
	Actor string `json:"actor" validate:"required,min=1,max=100"`
}

// CloseRequest carries the operator identity and closure notes.
// @Description Administrative closure request
type CloseRequest struct {
	Actor string `json:"actor" validate:"required,min=1,max=100"`
	Notes string `json:"notes,omitempty"`
}

// PoliceReportRequest asks for a police report to be sent.
// @Description Police report request; station_id empty selects the nearest station
type PoliceReportRequest struct {
	StationID   string `json:"station_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
	RequestedBy string `json:"requested_by" validate:"required,min=1,max=100"`
}

// AmbulanceDispatchRequest asks for an ambulance dispatch.
// @Description Ambulance dispatch request; requires operator confirmation
type AmbulanceDispatchRequest struct {
	IncidentID     string `json:"incident_id" validate:"required"`
	ProviderID     string `json:"provider_id,omitempty"`
	CallbackNumber string `json:"callback_number" validate:"required,min=3,max=20"`
	OperatorID     string `json:"operator_id" validate:"required,min=1,max=100"`
	Confirmed      bool   `json:"confirmed"`
}

// IncidentResponse is the wire representation of an incident.
// @Description Incident with lifecycle and audit fields
type IncidentResponse struct {
	ID                 string     `json:"id"`
	CameraID           string     `json:"camera_id"`
	IncidentType       string     `json:"incident_type"`
	Severity           string     `json:"severity"`
	SeverityScore      float64    `json:"severity_score"`
	ConfidenceScore    float64    `json:"confidence_score"`
	Status             string     `json:"status"`
	VehiclesInvolved   int        `json:"vehicles_involved"`
	PedestrianInvolved bool       `json:"pedestrian_involved"`
	FireDetected       bool       `json:"fire_detected"`
	Rollover           bool       `json:"rollover"`
	Description        string     `json:"description,omitempty"`
	Snapshots          []string   `json:"snapshots,omitempty"`
	DetectedAt         time.Time  `json:"detected_at"`
	VerifiedBy         string     `json:"verified_by,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	ReportedBy         string     `json:"reported_by,omitempty"`
	ReportedAt         *time.Time `json:"reported_at,omitempty"`
	DispatchedBy       string     `json:"dispatched_by,omitempty"`
	DispatchedAt       *time.Time `json:"dispatched_at,omitempty"`
	ClosedBy           string     `json:"closed_by,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	ClosureNotes       string     `json:"closure_notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// DispatchActionResponse is one recorded external action attempt.
// @Description Dispatch action record
type DispatchActionResponse struct {
	ID             int64           `json:"id"`
	IncidentID     string          `json:"incident_id"`
	Kind           string          `json:"kind"`
	TargetID       string          `json:"target_id"`
	Success        bool            `json:"success"`
	FailureReason  string          `json:"failure_reason,omitempty"`
	RequestPayload json.RawMessage `json:"request_payload,omitempty"`
	RequestedBy    string          `json:"requested_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DispatchResultResponse is the outcome of a dispatch operation.
// @Description Updated incident plus the action record; replayed marks an idempotent replay
type DispatchResultResponse struct {
	Incident *IncidentResponse       `json:"incident"`
	Action   *DispatchActionResponse `json:"action"`
	Replayed bool                    `json:"replayed"`
}

// CreateCameraRequest registers a traffic camera.
// @Description Camera registration request
type CreateCameraRequest struct {
	CameraID        string  `json:"camera_id" validate:"required,min=2,max=50"`
	Name            string  `json:"name" validate:"required,min=2,max=100"`
	LocationAddress string  `json:"location_address" validate:"required"`
	Latitude        float64 `json:"latitude" validate:"latitude"`
	Longitude       float64 `json:"longitude" validate:"longitude"`
	Zone            string  `json:"zone,omitempty"`
}

// CreatePoliceStationRequest registers a police station.
// @Description Police station registration request
type CreatePoliceStationRequest struct {
	StationID    string  `json:"station_id" validate:"required,min=2,max=50"`
	Name         string  `json:"name" validate:"required,min=2,max=200"`
	Address      string  `json:"address" validate:"required"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Jurisdiction string  `json:"jurisdiction,omitempty"`
	ContactPhone string  `json:"contact_phone,omitempty"`
	Endpoint     string  `json:"endpoint,omitempty" validate:"omitempty,url"`
}

// CreateAmbulanceProviderRequest registers an ambulance provider.
// @Description Ambulance provider registration request
type CreateAmbulanceProviderRequest struct {
	ProviderID   string `json:"provider_id" validate:"required,min=2,max=50"`
	Name         string `json:"name" validate:"required,min=2,max=200"`
	ServiceType  string `json:"service_type,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Endpoint     string `json:"endpoint,omitempty" validate:"omitempty,url"`
	CoverageArea string `json:"coverage_area,omitempty"`
}

// StatsResponse is the dashboard aggregate snapshot.
// @Description Dashboard statistics
type StatsResponse struct {
	ActiveIncidents      int `json:"active_incidents"`
	TodayIncidents       int `json:"today_incidents"`
	PendingVerification  int `json:"pending_verification"`
	DispatchedAmbulances int `json:"dispatched_ambulances"`
	PoliceReportsSent    int `json:"police_reports_sent"`
}
