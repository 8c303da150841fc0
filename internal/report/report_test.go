package report

import (
	"testing"
	"time"

	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIncident() *models.Incident {
	verifiedAt := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	return &models.Incident{
		ID:                 "INC-2026-AB12CD",
		CameraID:           "CAM-01",
		IncidentType:       models.TypePedestrianImpact,
		Severity:           models.SeverityCritical,
		SeverityScore:      6.5,
		ConfidenceScore:    0.92,
		Status:             models.StatusVerified,
		VehiclesInvolved:   2,
		PedestrianInvolved: true,
		Snapshots:          []string{"https://cdn.example/snap1.jpg"},
		DetectedAt:         time.Date(2026, 8, 20, 10, 15, 0, 0, time.UTC),
		VerifiedBy:         "operator-7",
		VerifiedAt:         &verifiedAt,
	}
}

func testCamera() *models.Camera {
	return &models.Camera{
		CameraID:        "CAM-01",
		LocationAddress: "12 MG Road",
		Zone:            "central",
		Latitude:        12.9716,
		Longitude:       77.5946,
	}
}

func TestBuildPoliceReport(t *testing.T) {
	station := &models.PoliceStation{
		StationID:    "PS-01",
		Name:         "Central Station",
		Jurisdiction: "central",
	}

	r := BuildPoliceReport(testIncident(), testCamera(), station, "spotted by patrol too")

	assert.Equal(t, "PRELIMINARY_INCIDENT_INTIMATION", r.DocumentType)
	assert.Contains(t, r.Disclaimer, "does NOT constitute an official First Information Report")
	assert.Equal(t, "INC-2026-AB12CD", r.Incident.IncidentID)
	assert.Equal(t, "CRITICAL", r.Incident.Severity)
	assert.Equal(t, "12 MG Road", r.Location.Address)
	assert.True(t, r.Accident.PedestrianInvolved)
	assert.True(t, r.Verification.Verified)
	assert.Equal(t, "operator-7", r.Verification.VerifiedBy)
	require.NotNil(t, r.Recipient)
	assert.Equal(t, "PS-01", r.Recipient.StationID)
	assert.Equal(t, "spotted by patrol too", r.Notes)
}

func TestBuildPoliceReport_UnverifiedDefaults(t *testing.T) {
	incident := testIncident()
	incident.Status = models.StatusDetected
	incident.VerifiedBy = ""
	incident.VerifiedAt = nil
	incident.Description = ""

	r := BuildPoliceReport(incident, testCamera(), nil, "")

	assert.False(t, r.Verification.Verified)
	assert.Empty(t, r.Verification.VerifiedAt)
	assert.Nil(t, r.Recipient)
	assert.Contains(t, r.Accident.Description, "human verification")
}

func TestBuildAmbulanceRequest(t *testing.T) {
	r := BuildAmbulanceRequest(testIncident(), testCamera(), "108")

	assert.Equal(t, "INC-2026-AB12CD", r.IncidentID)
	assert.Equal(t, "CRITICAL", r.Severity)
	assert.Equal(t, "108", r.CallbackNumber)
	assert.Equal(t, "https://cdn.example/snap1.jpg", r.SnapshotURL)
	assert.Equal(t, 12.9716, r.Location.Latitude)
	assert.Contains(t, r.Description, "2 vehicle(s)")
}
