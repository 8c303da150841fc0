// Package report builds the structured payloads delivered to police stations
// and ambulance providers. A police report is a preliminary incident
// intimation, not an official FIR.
package report

import (
	"fmt"
	"time"

	"github.com/shenikar/accident_responder_system/internal/models"
)

const disclaimer = "This is an AI-generated preliminary report for information purposes only. " +
	"It does NOT constitute an official First Information Report (FIR). " +
	"Official action requires human verification."

// PoliceReport is the document sent to a police station.
type PoliceReport struct {
	DocumentType string          `json:"document_type"`
	Disclaimer   string          `json:"disclaimer"`
	GeneratedAt  time.Time       `json:"generated_at"`
	Incident     IncidentDetails `json:"incident_details"`
	Location     Location        `json:"location"`
	Accident     AccidentDetails `json:"accident_details"`
	Evidence     Evidence        `json:"evidence"`
	Verification Verification    `json:"verification"`
	Recipient    *Recipient      `json:"recipient,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

type IncidentDetails struct {
	IncidentID      string  `json:"incident_id"`
	DetectedAt      string  `json:"detected_at"`
	IncidentType    string  `json:"incident_type"`
	Severity        string  `json:"severity"`
	SeverityScore   float64 `json:"severity_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	Status          string  `json:"status"`
}

type Location struct {
	CameraID  string  `json:"camera_id"`
	Address   string  `json:"address"`
	Zone      string  `json:"zone,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AccidentDetails struct {
	VehiclesInvolved   int    `json:"vehicles_involved"`
	PedestrianInvolved bool   `json:"pedestrian_involved"`
	FireDetected       bool   `json:"fire_detected"`
	Description        string `json:"description"`
}

type Evidence struct {
	Snapshots []string `json:"snapshots"`
}

type Verification struct {
	Verified   bool   `json:"verified"`
	VerifiedBy string `json:"verified_by,omitempty"`
	VerifiedAt string `json:"verified_at,omitempty"`
}

type Recipient struct {
	StationID    string `json:"station_id"`
	StationName  string `json:"station_name"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

// AmbulanceRequest is the document sent to an ambulance provider.
type AmbulanceRequest struct {
	IncidentID     string   `json:"incident_id"`
	Severity       string   `json:"severity"`
	Location       Location `json:"location"`
	CallbackNumber string   `json:"callback_number"`
	SnapshotURL    string   `json:"snapshot_url,omitempty"`
	Description    string   `json:"description"`
}

// BuildPoliceReport assembles the police report for an incident.
func BuildPoliceReport(incident *models.Incident, camera *models.Camera, station *models.PoliceStation, notes string) *PoliceReport {
	description := incident.Description
	if description == "" {
		description = "AI-detected incident requiring human verification."
	}

	r := &PoliceReport{
		DocumentType: "PRELIMINARY_INCIDENT_INTIMATION",
		Disclaimer:   disclaimer,
		GeneratedAt:  time.Now().UTC(),
		Incident: IncidentDetails{
			IncidentID:      incident.ID,
			DetectedAt:      incident.DetectedAt.Format(time.RFC3339),
			IncidentType:    string(incident.IncidentType),
			Severity:        string(incident.Severity),
			SeverityScore:   incident.SeverityScore,
			ConfidenceScore: incident.ConfidenceScore,
			Status:          string(incident.Status),
		},
		Location: locationFor(camera),
		Accident: AccidentDetails{
			VehiclesInvolved:   incident.VehiclesInvolved,
			PedestrianInvolved: incident.PedestrianInvolved,
			FireDetected:       incident.FireDetected,
			Description:        description,
		},
		Evidence: Evidence{Snapshots: incident.Snapshots},
		Verification: Verification{
			Verified:   incident.VerifiedBy != "",
			VerifiedBy: incident.VerifiedBy,
		},
		Notes: notes,
	}
	if incident.VerifiedAt != nil {
		r.Verification.VerifiedAt = incident.VerifiedAt.Format(time.RFC3339)
	}
	if station != nil {
		r.Recipient = &Recipient{
			StationID:    station.StationID,
			StationName:  station.Name,
			Jurisdiction: station.Jurisdiction,
			Contact:      station.ContactPhone,
		}
	}
	return r
}

// BuildAmbulanceRequest assembles the dispatch request for a provider.
func BuildAmbulanceRequest(incident *models.Incident, camera *models.Camera, callbackNumber string) *AmbulanceRequest {
	snapshot := ""
	if len(incident.Snapshots) > 0 {
		snapshot = incident.Snapshots[0]
	}
	return &AmbulanceRequest{
		IncidentID:     incident.ID,
		Severity:       string(incident.Severity),
		Location:       locationFor(camera),
		CallbackNumber: callbackNumber,
		SnapshotURL:    snapshot,
		Description: fmt.Sprintf("%s - %d vehicle(s) involved",
			incident.IncidentType, incident.VehiclesInvolved),
	}
}

func locationFor(camera *models.Camera) Location {
	if camera == nil {
		return Location{}
	}
	return Location{
		CameraID:  camera.CameraID,
		Address:   camera.LocationAddress,
		Zone:      camera.Zone,
		Latitude:  camera.Latitude,
		Longitude: camera.Longitude,
	}
}
