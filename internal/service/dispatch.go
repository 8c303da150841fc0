package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/lifecycle"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/notifier"
	"github.com/shenikar/accident_responder_system/internal/report"
	"github.com/shenikar/accident_responder_system/internal/severity"
	"github.com/shenikar/accident_responder_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// PoliceReportRequest asks for an incident report to be sent to a station.
// StationID may be empty, in which case the nearest active station to the
// incident's camera is used.
type PoliceReportRequest struct {
	IncidentID  string
	StationID   string
	Notes       string
	RequestedBy string
}

// AmbulanceDispatchRequest asks for an ambulance. Confirmed must be set by
// the operator; ProviderID may be empty to use the first active provider.
type AmbulanceDispatchRequest struct {
	IncidentID     string
	ProviderID     string
	CallbackNumber string
	OperatorID     string
	Confirmed      bool
}

// DispatchResult carries the updated incident and the action record. Replayed
// is true when a prior successful action was returned without re-notifying.
type DispatchResult struct {
	Incident *models.Incident
	Action   *models.DispatchAction
	Replayed bool
}

// DispatchService performs the two irreversible external actions with
// per-incident mutual exclusion and idempotent replay.
type DispatchService interface {
	SendPoliceReport(ctx context.Context, req *PoliceReportRequest) (*DispatchResult, error)
	DispatchAmbulance(ctx context.Context, req *AmbulanceDispatchRequest) (*DispatchResult, error)
	NearestStation(ctx context.Context, incidentID string) (*models.PoliceStation, error)
}

type dispatchService struct {
	repo        IncidentRepository
	registry    RegistryRepository
	police      notifier.PoliceNotifier
	ambulance   notifier.AmbulanceNotifier
	broadcaster Broadcaster
	publisher   webhook.Publisher
	locks       *keyedMutex
	inflight    *inflightGuard
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewDispatchService(
	repo IncidentRepository,
	registry RegistryRepository,
	police notifier.PoliceNotifier,
	ambulance notifier.AmbulanceNotifier,
	broadcaster Broadcaster,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) DispatchService {
	return &dispatchService{
		repo:        repo,
		registry:    registry,
		police:      police,
		ambulance:   ambulance,
		broadcaster: broadcaster,
		publisher:   publisher,
		locks:       newKeyedMutex(),
		inflight:    newInflightGuard(),
		logger:      logger,
		cfg:         cfg,
	}
}

// SendPoliceReport resolves the target station, notifies it and, only on
// success, records the action and advances the incident to REPORTED in one
// atomic step. A replay after success returns the prior record untouched.
func (s *dispatchService) SendPoliceReport(ctx context.Context, req *PoliceReportRequest) (*DispatchResult, error) {
	if req.RequestedBy == "" {
		return nil, &PolicyViolationError{Reason: "actor identity is required"}
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "SendPoliceReport",
		"incident_id": req.IncidentID,
		"actor":       req.RequestedBy,
	})

	release, ok := s.inflight.Acquire(req.IncidentID, models.ActionPoliceReport)
	if !ok {
		log.Warn("Police report already in flight for incident")
		return nil, ErrAlreadyInProgress
	}
	defer release()

	unlock := s.locks.Lock(req.IncidentID)
	defer unlock()

	if existing, err := s.repo.FindSuccessfulAction(ctx, req.IncidentID, models.ActionPoliceReport); err != nil {
		return nil, fmt.Errorf("dispatch: could not check prior report: %w", err)
	} else if existing != nil {
		incident, err := s.repo.GetByID(ctx, req.IncidentID)
		if err != nil {
			return nil, err
		}
		log.Info("Police report already sent, returning prior record")
		return &DispatchResult{Incident: incident, Action: existing, Replayed: true}, nil
	}

	incident, err := s.repo.GetByID(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.CanApply(lifecycle.ActionReport, incident.Status) {
		return nil, &InvalidTransitionError{Action: lifecycle.ActionReport, From: incident.Status}
	}

	camera, err := s.registry.GetCamera(ctx, incident.CameraID)
	if err != nil {
		return nil, fmt.Errorf("dispatch: camera %s: %w", incident.CameraID, err)
	}

	station, err := s.resolveStation(ctx, req.StationID, camera)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report.BuildPoliceReport(incident, camera, station, req.Notes))
	if err != nil {
		return nil, fmt.Errorf("dispatch: could not marshal report: %w", err)
	}

	action := &models.DispatchAction{
		IncidentID:     incident.ID,
		Kind:           models.ActionPoliceReport,
		TargetID:       station.StationID,
		RequestPayload: payload,
		RequestedBy:    req.RequestedBy,
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifierTimeout)
	defer cancel()
	if err := s.police.NotifyPolice(notifyCtx, station, payload); err != nil {
		log.WithError(err).Warn("Police notifier failed, incident state unchanged")
		action.Success = false
		action.FailureReason = err.Error()
		if recErr := s.repo.RecordAction(ctx, action); recErr != nil {
			log.WithError(recErr).Error("Failed to record failed report attempt")
		}
		return nil, &NotifierError{Target: station.StationID, Reason: err.Error(), Err: err}
	}
	action.Success = true

	now := time.Now().UTC()
	updated, err := s.repo.RecordActionAndTransition(ctx, action, func(inc *models.Incident) error {
		if !lifecycle.CanApply(lifecycle.ActionReport, inc.Status) {
			return &InvalidTransitionError{Action: lifecycle.ActionReport, From: inc.Status}
		}
		inc.ReportedBy = req.RequestedBy
		inc.ReportedAt = &now
		inc.Status = models.StatusReported
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.finishTransition(ctx, log, updated, lifecycle.ActionReport)
	return &DispatchResult{Incident: updated, Action: action}, nil
}

// DispatchAmbulance notifies a provider for a HIGH or CRITICAL incident and
// advances it to DISPATCHED. Duplicate concurrent requests are rejected with
// ErrAlreadyInProgress; a replay after success returns the prior record.
func (s *dispatchService) DispatchAmbulance(ctx context.Context, req *AmbulanceDispatchRequest) (*DispatchResult, error) {
	if req.OperatorID == "" {
		return nil, &PolicyViolationError{Reason: "actor identity is required"}
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "dispatch",
		"method":      "DispatchAmbulance",
		"incident_id": req.IncidentID,
		"actor":       req.OperatorID,
	})

	release, ok := s.inflight.Acquire(req.IncidentID, models.ActionAmbulanceDispatch)
	if !ok {
		log.Warn("Ambulance dispatch already in flight for incident")
		return nil, ErrAlreadyInProgress
	}
	defer release()

	unlock := s.locks.Lock(req.IncidentID)
	defer unlock()

	if existing, err := s.repo.FindSuccessfulAction(ctx, req.IncidentID, models.ActionAmbulanceDispatch); err != nil {
		return nil, fmt.Errorf("dispatch: could not check prior dispatch: %w", err)
	} else if existing != nil {
		incident, err := s.repo.GetByID(ctx, req.IncidentID)
		if err != nil {
			return nil, err
		}
		log.Info("Ambulance already dispatched, returning prior record")
		return &DispatchResult{Incident: incident, Action: existing, Replayed: true}, nil
	}

	incident, err := s.repo.GetByID(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}

	if !severity.DispatchEligible(incident.Severity) {
		return nil, &PolicyViolationError{
			Reason: fmt.Sprintf("ambulance dispatch requires HIGH or CRITICAL severity, incident is %s", incident.Severity),
		}
	}
	if !req.Confirmed {
		return nil, &PolicyViolationError{Reason: "ambulance dispatch requires operator confirmation"}
	}
	if !lifecycle.CanApply(lifecycle.ActionDispatch, incident.Status) {
		return nil, &InvalidTransitionError{Action: lifecycle.ActionDispatch, From: incident.Status}
	}

	camera, err := s.registry.GetCamera(ctx, incident.CameraID)
	if err != nil {
		return nil, fmt.Errorf("dispatch: camera %s: %w", incident.CameraID, err)
	}

	provider, err := s.resolveProvider(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report.BuildAmbulanceRequest(incident, camera, req.CallbackNumber))
	if err != nil {
		return nil, fmt.Errorf("dispatch: could not marshal dispatch request: %w", err)
	}

	action := &models.DispatchAction{
		IncidentID:     incident.ID,
		Kind:           models.ActionAmbulanceDispatch,
		TargetID:       provider.ProviderID,
		RequestPayload: payload,
		RequestedBy:    req.OperatorID,
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifierTimeout)
	defer cancel()
	if err := s.ambulance.NotifyAmbulance(notifyCtx, provider, payload); err != nil {
		log.WithError(err).Warn("Ambulance notifier failed, incident state unchanged")
		action.Success = false
		action.FailureReason = err.Error()
		if recErr := s.repo.RecordAction(ctx, action); recErr != nil {
			log.WithError(recErr).Error("Failed to record failed dispatch attempt")
		}
		return nil, &NotifierError{Target: provider.ProviderID, Reason: err.Error(), Err: err}
	}
	action.Success = true

	now := time.Now().UTC()
	updated, err := s.repo.RecordActionAndTransition(ctx, action, func(inc *models.Incident) error {
		if !lifecycle.CanApply(lifecycle.ActionDispatch, inc.Status) {
			return &InvalidTransitionError{Action: lifecycle.ActionDispatch, From: inc.Status}
		}
		inc.DispatchedBy = req.OperatorID
		inc.DispatchedAt = &now
		inc.Status = models.StatusDispatched
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.finishTransition(ctx, log, updated, lifecycle.ActionDispatch)
	return &DispatchResult{Incident: updated, Action: action}, nil
}

// NearestStation resolves the closest active police station to the
// incident's camera location.
func (s *dispatchService) NearestStation(ctx context.Context, incidentID string) (*models.PoliceStation, error) {
	incident, err := s.repo.GetByID(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	camera, err := s.registry.GetCamera(ctx, incident.CameraID)
	if err != nil {
		return nil, fmt.Errorf("dispatch: camera %s: %w", incident.CameraID, err)
	}
	return s.nearestStationTo(ctx, camera)
}

func (s *dispatchService) resolveStation(ctx context.Context, stationID string, camera *models.Camera) (*models.PoliceStation, error) {
	if stationID != "" {
		station, err := s.registry.GetPoliceStation(ctx, stationID)
		if err != nil {
			return nil, fmt.Errorf("dispatch: police station %s: %w", stationID, err)
		}
		return station, nil
	}
	return s.nearestStationTo(ctx, camera)
}

func (s *dispatchService) nearestStationTo(ctx context.Context, camera *models.Camera) (*models.PoliceStation, error) {
	stations, err := s.registry.ListPoliceStations(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dispatch: could not list police stations: %w", err)
	}
	if len(stations) == 0 {
		return nil, fmt.Errorf("dispatch: no active police stations registered")
	}

	nearest := stations[0]
	best := haversineKm(camera.Latitude, camera.Longitude, nearest.Latitude, nearest.Longitude)
	for _, st := range stations[1:] {
		if d := haversineKm(camera.Latitude, camera.Longitude, st.Latitude, st.Longitude); d < best {
			nearest, best = st, d
		}
	}
	return nearest, nil
}

func (s *dispatchService) resolveProvider(ctx context.Context, providerID string) (*models.AmbulanceProvider, error) {
	if providerID != "" {
		provider, err := s.registry.GetAmbulanceProvider(ctx, providerID)
		if err != nil {
			return nil, fmt.Errorf("dispatch: ambulance provider %s: %w", providerID, err)
		}
		return provider, nil
	}
	providers, err := s.registry.ListAmbulanceProviders(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("dispatch: could not list ambulance providers: %w", err)
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("dispatch: no active ambulance providers registered")
	}
	return providers[0], nil
}

func (s *dispatchService) finishTransition(ctx context.Context, log *logrus.Entry, incident *models.Incident, action lifecycle.Action) {
	if err := s.repo.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
	log.WithField("status", incident.Status).Info("Dispatch action applied")
	s.broadcaster.BroadcastStatusUpdate(incident, lifecycle.EventName(action))

	event := webhook.Event{
		EventType:  webhook.EventStatusUpdate,
		IncidentID: incident.ID,
		Status:     string(incident.Status),
		Severity:   string(incident.Severity),
		Timestamp:  time.Now().UTC(),
		Incident:   incident,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish webhook event")
	}
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
