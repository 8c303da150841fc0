package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/accident_responder_system/internal/broadcast"
	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/lifecycle"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service"
	"github.com/shenikar/accident_responder_system/internal/service/mocks"
	"github.com/shenikar/accident_responder_system/internal/service/svcmocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler creates a Handler instance wired to mocked services.
func newTestHandler(t *testing.T) (*Handler, *svcmocks.MockIncidentService, *svcmocks.MockDispatchService, *mocks.MockRegistryRepository, *gin.Engine) {
	ctrl := gomock.NewController(t)
	incidentMock := svcmocks.NewMockIncidentService(ctrl)
	dispatchMock := svcmocks.NewMockDispatchService(ctrl)
	registryMock := mocks.NewMockRegistryRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // silence logs in tests

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	hub := broadcast.NewHub(8, logger)
	handler := NewHandler(incidentMock, dispatchMock, registryMock, hub, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, incidentMock, dispatchMock, registryMock, router
}

// makeRequest is a helper for running HTTP requests against the router.
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestIngestDetection_Created(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	reqBody := DetectionRequest{
		CameraID: "CAM-01",
		Features: DetectionFeatures{
			VehiclesInvolved:   3,
			PedestrianInvolved: true,
		},
		Confidence: 0.9,
	}
	expected := &models.Incident{
		ID:            "INC-2026-AB12CD",
		CameraID:      "CAM-01",
		Severity:      models.SeverityCritical,
		SeverityScore: 6.5,
		Status:        models.StatusDetected,
	}

	incidentMock.EXPECT().
		IngestDetection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, det *service.DetectionEvent) (*models.Incident, error) {
			assert.Equal(t, "CAM-01", det.CameraID)
			assert.True(t, det.Factors.PedestrianInvolved)
			return expected, nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/detections", jsonBody(t, reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp DetectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.IncidentID)
	assert.Equal(t, "CRITICAL", resp.Severity)
	assert.Equal(t, "DETECTED", resp.Status)
}

func TestIngestDetection_InvalidBody(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/detections", bytes.NewReader([]byte("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestDetection_MissingCamera(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	// camera_id is required, validator must reject
	w := makeRequest(router, http.MethodPost, "/api/v1/detections", jsonBody(t, DetectionRequest{Confidence: 0.5}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	expected := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusVerified}

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), expected.ID).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+expected.ID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, expected.ID, resp.ID)
	assert.Equal(t, "VERIFIED", resp.Status)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), "INC-2026-000000").
		Return(nil, fmt.Errorf("incident: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/INC-2026-000000", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	expected := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusVerified, VerifiedBy: "operator-7"}

	incidentMock.EXPECT().
		Verify(gomock.Any(), expected.ID, "operator-7").
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+expected.ID+"/verify",
		jsonBody(t, ActorRequest{Actor: "operator-7"}))

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VERIFIED", resp.Status)
}

func TestVerifyIncident_MissingActor(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/INC-2026-AB12CD/verify",
		jsonBody(t, ActorRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyIncident_InvalidTransition(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().
		Verify(gomock.Any(), "INC-2026-AB12CD", "operator-7").
		Return(nil, &service.InvalidTransitionError{Action: lifecycle.ActionVerify, From: models.StatusClosed}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/INC-2026-AB12CD/verify",
		jsonBody(t, ActorRequest{Actor: "operator-7"}))

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_transition", resp["code"])
}

func TestCloseIncident_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)
	expected := &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusClosed, ClosureNotes: "wrapped up"}

	incidentMock.EXPECT().
		Close(gomock.Any(), expected.ID, "supervisor-1", "wrapped up").
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/"+expected.ID+"/close",
		jsonBody(t, CloseRequest{Actor: "supervisor-1", Notes: "wrapped up"}))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestSendPoliceReport_NotifierFailure(t *testing.T) {
	_, _, dispatchMock, _, router := newTestHandler(t)

	dispatchMock.EXPECT().
		SendPoliceReport(gomock.Any(), gomock.Any()).
		Return(nil, &service.NotifierError{Target: "PS-01", Reason: "endpoint returned status 503"}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/INC-2026-AB12CD/police-report",
		jsonBody(t, PoliceReportRequest{StationID: "PS-01", RequestedBy: "operator-7"}))

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "notifier_failure", resp["code"])
	assert.Equal(t, true, resp["retryable"])
}

func TestDispatchAmbulance_AlreadyInProgress(t *testing.T) {
	_, _, dispatchMock, _, router := newTestHandler(t)

	dispatchMock.EXPECT().
		DispatchAmbulance(gomock.Any(), gomock.Any()).
		Return(nil, service.ErrAlreadyInProgress).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/ambulance",
		jsonBody(t, AmbulanceDispatchRequest{
			IncidentID:     "INC-2026-AB12CD",
			CallbackNumber: "108",
			OperatorID:     "operator-5",
			Confirmed:      true,
		}))

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_in_progress", resp["code"])
}

func TestDispatchAmbulance_PolicyViolation(t *testing.T) {
	_, _, dispatchMock, _, router := newTestHandler(t)

	dispatchMock.EXPECT().
		DispatchAmbulance(gomock.Any(), gomock.Any()).
		Return(nil, &service.PolicyViolationError{Reason: "ambulance dispatch requires HIGH or CRITICAL severity, incident is LOW"}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/ambulance",
		jsonBody(t, AmbulanceDispatchRequest{
			IncidentID:     "INC-2026-AB12CD",
			CallbackNumber: "108",
			OperatorID:     "operator-5",
			Confirmed:      true,
		}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "policy_violation", resp["code"])
}

func TestDispatchAmbulance_Replayed(t *testing.T) {
	_, _, dispatchMock, _, router := newTestHandler(t)

	prior := &service.DispatchResult{
		Incident: &models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDispatched},
		Action:   &models.DispatchAction{ID: 7, Kind: models.ActionAmbulanceDispatch, Success: true},
		Replayed: true,
	}
	dispatchMock.EXPECT().
		DispatchAmbulance(gomock.Any(), gomock.Any()).
		Return(prior, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/dispatch/ambulance",
		jsonBody(t, AmbulanceDispatchRequest{
			IncidentID:     "INC-2026-AB12CD",
			CallbackNumber: "108",
			OperatorID:     "operator-5",
			Confirmed:      true,
		}))

	require.Equal(t, http.StatusOK, w.Code)
	var resp DispatchResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Replayed)
	assert.Equal(t, "DISPATCHED", resp.Incident.Status)
}

func TestListIncidents_FilterParsing(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
			assert.Equal(t, models.StatusDetected, filter.Status)
			assert.Equal(t, models.SeverityHigh, filter.Severity)
			assert.True(t, filter.ActiveOnly)
			assert.Equal(t, 10, filter.Limit)
			return []*models.Incident{}, nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?status=DETECTED&severity=HIGH&active=true&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, incidentMock, _, _, router := newTestHandler(t)

	incidentMock.EXPECT().
		GetStats(gomock.Any()).
		Return(&models.DashboardStats{ActiveIncidents: 4, PoliceReportsSent: 2}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.ActiveIncidents)
	assert.Equal(t, 2, resp.PoliceReportsSent)
}

func TestCreateCamera_Success(t *testing.T) {
	_, _, _, registryMock, router := newTestHandler(t)

	registryMock.EXPECT().
		CreateCamera(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, camera *models.Camera) error {
			assert.Equal(t, "CAM-01", camera.CameraID)
			assert.True(t, camera.IsActive)
			return nil
		}).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/cameras", jsonBody(t, CreateCameraRequest{
		CameraID:        "CAM-01",
		Name:            "Main junction north",
		LocationAddress: "12 MG Road",
		Latitude:        12.9716,
		Longitude:       77.5946,
		Zone:            "central",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetCamera_Success(t *testing.T) {
	_, _, _, registryMock, router := newTestHandler(t)

	registryMock.EXPECT().
		GetCamera(gomock.Any(), "CAM-01").
		Return(&models.Camera{CameraID: "CAM-01", Zone: "central", IsActive: true}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/cameras/CAM-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Camera
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "CAM-01", got.CameraID)
	assert.Equal(t, "central", got.Zone)
}

func TestGetCamera_NotFound(t *testing.T) {
	_, _, _, registryMock, router := newTestHandler(t)

	registryMock.EXPECT().
		GetCamera(gomock.Any(), "CAM-99").
		Return(nil, fmt.Errorf("failed to get camera: %w", service.ErrNotFound)).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/cameras/CAM-99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, _, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPIKeyAuthMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{APIKeys: []string{"test-api-key"}}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	// missing key
	w := makeRequest(router, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// wrong key
	w = makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// header key
	w = makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)

	// bearer key
	w = makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"Authorization": "Bearer test-api-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
