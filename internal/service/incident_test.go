package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/accident_responder_system/internal/webhook/mocks"
	"github.com/shenikar/accident_responder_system/internal/severity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService creates a service instance wired to mocks.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *mocks.MockRegistryRepository, *mocks.MockBroadcaster, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	registryMock := mocks.NewMockRegistryRepository(ctrl)
	broadcasterMock := mocks.NewMockBroadcaster(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{}

	svc := NewIncidentService(repoMock, registryMock, broadcasterMock, publisherMock, logger, cfg)
	return svc.(*incidentService), repoMock, registryMock, broadcasterMock, publisherMock
}

func TestIngestDetection_Success(t *testing.T) {
	svc, repoMock, registryMock, broadcasterMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	camera := &models.Camera{CameraID: "CAM-01", IsActive: true}
	det := &DetectionEvent{
		CameraID: "CAM-01",
		Factors: severity.Factors{
			VehiclesInvolved:   2,
			PedestrianInvolved: true,
			FireDetected:       true,
		},
		Confidence:  0.92,
		Description: "collision at main junction",
	}

	registryMock.EXPECT().
		GetCamera(ctx, "CAM-01").
		Return(camera, nil).
		Times(1)

	var created *models.Incident
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			created = inc
			return nil
		}).
		Times(1)

	broadcasterMock.EXPECT().
		BroadcastNewIncident(gomock.Any()).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	incident, err := svc.IngestDetection(ctx, det)

	require.NoError(t, err)
	require.NotNil(t, incident)
	assert.Same(t, created, incident)
	assert.True(t, strings.HasPrefix(incident.ID, "INC-"), "id should carry the INC- prefix")
	assert.Equal(t, models.StatusDetected, incident.Status)
	// pedestrian 3.0 + fire 3.5 = 6.5, CRITICAL
	assert.Equal(t, models.SeverityCritical, incident.Severity)
	assert.InDelta(t, 6.5, incident.SeverityScore, 0.001)
	assert.Equal(t, models.TypePedestrianImpact, incident.IncidentType)
	assert.False(t, incident.DetectedAt.IsZero())
}

func TestIngestDetection_UnknownCamera(t *testing.T) {
	svc, _, registryMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	registryMock.EXPECT().
		GetCamera(ctx, "CAM-MISSING").
		Return(nil, fmt.Errorf("camera CAM-MISSING: %w", ErrNotFound)).
		Times(1)

	incident, err := svc.IngestDetection(ctx, &DetectionEvent{CameraID: "CAM-MISSING"})

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetIncident_Success_FromCache(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDetected}

	repoMock.EXPECT().
		GetIncidentFromCache(ctx, expected.ID).
		Return(expected, nil).
		Times(1)

	incident, err := svc.GetIncident(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_Success_FromDB(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusVerified}

	// cache miss
	repoMock.EXPECT().
		GetIncidentFromCache(ctx, expected.ID).
		Return(nil, nil).
		Times(1)
	// database hit
	repoMock.EXPECT().
		GetByID(ctx, expected.ID).
		Return(expected, nil).
		Times(1)
	// write-back
	repoMock.EXPECT().
		SetIncidentCache(ctx, expected).
		Return(nil).
		Times(1)

	incident, err := svc.GetIncident(ctx, expected.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		GetIncidentFromCache(ctx, "INC-2026-000000").
		Return(nil, nil).
		Times(1)
	repoMock.EXPECT().
		GetByID(ctx, "INC-2026-000000").
		Return(nil, fmt.Errorf("incident INC-2026-000000: %w", ErrNotFound)).
		Times(1)

	incident, err := svc.GetIncident(ctx, "INC-2026-000000")

	require.Error(t, err)
	assert.Nil(t, incident)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVerify_Success(t *testing.T) {
	svc, repoMock, _, broadcasterMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDetected}

	repoMock.EXPECT().
		UpdateState(ctx, stored.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*models.Incident) error) (*models.Incident, error) {
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		}).
		Times(1)
	repoMock.EXPECT().
		InvalidateIncidentCache(ctx, stored.ID).
		Return(nil).
		Times(1)
	broadcasterMock.EXPECT().
		BroadcastStatusUpdate(stored, "incident_verified").
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	incident, err := svc.Verify(ctx, stored.ID, "operator-7")

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, incident.Status)
	assert.Equal(t, "operator-7", incident.VerifiedBy)
	require.NotNil(t, incident.VerifiedAt)
}

func TestVerify_InvalidTransition(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusClosed}

	repoMock.EXPECT().
		UpdateState(ctx, stored.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*models.Incident) error) (*models.Incident, error) {
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		}).
		Times(1)

	incident, err := svc.Verify(ctx, stored.ID, "operator-7")

	require.Error(t, err)
	assert.Nil(t, incident)
	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, models.StatusClosed, invalid.From)
	// the failed attempt must not mutate the stored status
	assert.Equal(t, models.StatusClosed, stored.Status)
}

func TestVerify_ActorRequired(t *testing.T) {
	svc, _, _, _, _ := newTestIncidentService(t)

	incident, err := svc.Verify(context.Background(), "INC-2026-AB12CD", "")

	require.Error(t, err)
	assert.Nil(t, incident)
	var policy *PolicyViolationError
	assert.True(t, errors.As(err, &policy))
}

func TestMarkFalseAlarm_Success(t *testing.T) {
	svc, repoMock, _, broadcasterMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDetected}

	repoMock.EXPECT().
		UpdateState(ctx, stored.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*models.Incident) error) (*models.Incident, error) {
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, stored.ID).Return(nil).Times(1)
	broadcasterMock.EXPECT().BroadcastStatusUpdate(stored, "incident_false_alarm").Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := svc.MarkFalseAlarm(ctx, stored.ID, "operator-3")

	require.NoError(t, err)
	assert.Equal(t, models.StatusFalseAlarm, incident.Status)
}

func TestClose_Success(t *testing.T) {
	svc, repoMock, _, broadcasterMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDispatched}

	repoMock.EXPECT().
		UpdateState(ctx, stored.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*models.Incident) error) (*models.Incident, error) {
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		}).
		Times(1)
	repoMock.EXPECT().InvalidateIncidentCache(ctx, stored.ID).Return(nil).Times(1)
	broadcasterMock.EXPECT().BroadcastStatusUpdate(stored, "incident_closed").Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	incident, err := svc.Close(ctx, stored.ID, "supervisor-1", "resolved on scene")

	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, incident.Status)
	assert.Equal(t, "supervisor-1", incident.ClosedBy)
	assert.Equal(t, "resolved on scene", incident.ClosureNotes)
}

func TestClose_AlreadyClosed(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusClosed}

	repoMock.EXPECT().
		UpdateState(ctx, stored.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*models.Incident) error) (*models.Incident, error) {
			if err := mutate(stored); err != nil {
				return nil, err
			}
			return stored, nil
		}).
		Times(1)

	incident, err := svc.Close(ctx, stored.ID, "supervisor-1", "")

	require.Error(t, err)
	assert.Nil(t, incident)
	var invalid *InvalidTransitionError
	assert.True(t, errors.As(err, &invalid))
}

func TestListDispatchActions_Success(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	stored := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusReported}
	expected := []*models.DispatchAction{
		{ID: 1, IncidentID: stored.ID, Kind: models.ActionPoliceReport, Success: true},
		{ID: 2, IncidentID: stored.ID, Kind: models.ActionAmbulanceDispatch, Success: false, FailureReason: "timeout"},
	}

	repoMock.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Times(1)
	repoMock.EXPECT().ListActions(ctx, stored.ID).Return(expected, nil).Times(1)

	actions, err := svc.ListDispatchActions(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, expected, actions)
}

func TestListIncidents_LimitNormalized(t *testing.T) {
	svc, repoMock, _, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		List(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
			assert.Equal(t, 50, filter.Limit)
			assert.Equal(t, 0, filter.Offset)
			return []*models.Incident{}, nil
		}).
		Times(1)

	_, err := svc.ListIncidents(ctx, models.IncidentFilter{Limit: -5, Offset: -1})
	require.NoError(t, err)
}
