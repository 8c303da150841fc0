package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/lifecycle"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/severity"
	"github.com/shenikar/accident_responder_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// IncidentRepository is the persistence contract for incidents and their
// dispatch action records. UpdateState and RecordActionAndTransition apply
// the mutator inside a transaction holding a row lock, so the state check
// and the write are atomic even across processes.
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id string) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	UpdateState(ctx context.Context, id string, mutate func(*models.Incident) error) (*models.Incident, error)
	RecordAction(ctx context.Context, action *models.DispatchAction) error
	RecordActionAndTransition(ctx context.Context, action *models.DispatchAction, mutate func(*models.Incident) error) (*models.Incident, error)
	FindSuccessfulAction(ctx context.Context, incidentID string, kind models.ActionKind) (*models.DispatchAction, error)
	ListActions(ctx context.Context, incidentID string) ([]*models.DispatchAction, error)
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id string) error
}

// RegistryRepository is the persistence contract for cameras, police
// stations and ambulance providers.
type RegistryRepository interface {
	CreateCamera(ctx context.Context, camera *models.Camera) error
	GetCamera(ctx context.Context, id string) (*models.Camera, error)
	ListCameras(ctx context.Context, activeOnly bool, zone string) ([]*models.Camera, error)
	CreatePoliceStation(ctx context.Context, station *models.PoliceStation) error
	GetPoliceStation(ctx context.Context, id string) (*models.PoliceStation, error)
	ListPoliceStations(ctx context.Context, activeOnly bool) ([]*models.PoliceStation, error)
	CreateAmbulanceProvider(ctx context.Context, provider *models.AmbulanceProvider) error
	GetAmbulanceProvider(ctx context.Context, id string) (*models.AmbulanceProvider, error)
	ListAmbulanceProviders(ctx context.Context, activeOnly bool) ([]*models.AmbulanceProvider, error)
}

// Broadcaster fans incident events out to connected observers. Delivery is
// fire-and-forget: a slow observer never blocks the emitting operation.
type Broadcaster interface {
	BroadcastNewIncident(incident *models.Incident)
	BroadcastStatusUpdate(incident *models.Incident, event string)
}

// DetectionEvent is the intake payload produced by the detection pipeline.
type DetectionEvent struct {
	CameraID    string
	Timestamp   time.Time
	Factors     severity.Factors
	Confidence  float64
	Description string
	Snapshots   []string
}

// IncidentService is the operator-facing contract for the incident lifecycle.
type IncidentService interface {
	IngestDetection(ctx context.Context, det *DetectionEvent) (*models.Incident, error)
	GetIncident(ctx context.Context, id string) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	Verify(ctx context.Context, id, actor string) (*models.Incident, error)
	MarkFalseAlarm(ctx context.Context, id, actor string) (*models.Incident, error)
	Close(ctx context.Context, id, actor, notes string) (*models.Incident, error)
	ListDispatchActions(ctx context.Context, id string) ([]*models.DispatchAction, error)
}

type incidentService struct {
	repo        IncidentRepository
	registry    RegistryRepository
	broadcaster Broadcaster
	publisher   webhook.Publisher
	locks       *keyedMutex
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewIncidentService(
	repo IncidentRepository,
	registry RegistryRepository,
	broadcaster Broadcaster,
	publisher webhook.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:        repo,
		registry:    registry,
		broadcaster: broadcaster,
		publisher:   publisher,
		locks:       newKeyedMutex(),
		logger:      logger,
		cfg:         cfg,
	}
}

// newIncidentID produces a date-salted, human-legible identifier
// such as INC-2026-9F3A1C.
func newIncidentID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("INC-%d-%X", now.Year(), u[:3])
}

// IngestDetection classifies a detection event, creates the incident in
// DETECTED state and announces it to all observers.
func (s *incidentService) IngestDetection(ctx context.Context, det *DetectionEvent) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "IngestDetection",
		"camera_id": det.CameraID,
	})

	camera, err := s.registry.GetCamera(ctx, det.CameraID)
	if err != nil {
		log.WithError(err).Warn("Detection references unknown camera")
		return nil, fmt.Errorf("service: camera %s: %w", det.CameraID, err)
	}

	score, tier := severity.Classify(det.Factors)
	now := time.Now().UTC()
	detectedAt := det.Timestamp
	if detectedAt.IsZero() {
		detectedAt = now
	}

	incident := &models.Incident{
		ID:                 newIncidentID(now),
		CameraID:           camera.CameraID,
		IncidentType:       severity.CategoryFor(det.Factors),
		Severity:           tier,
		SeverityScore:      score,
		ConfidenceScore:    det.Confidence,
		Status:             models.StatusDetected,
		VehiclesInvolved:   det.Factors.VehiclesInvolved,
		PedestrianInvolved: det.Factors.PedestrianInvolved,
		FireDetected:       det.Factors.FireDetected,
		Rollover:           det.Factors.Rollover,
		Description:        det.Description,
		Snapshots:          det.Snapshots,
		DetectedAt:         detectedAt,
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"severity":    incident.Severity,
		"score":       incident.SeverityScore,
	}).Info("Incident created from detection")

	s.broadcaster.BroadcastNewIncident(incident)
	s.publishEvent(ctx, webhook.EventNewIncident, incident)
	return incident, nil
}

// GetIncident returns an incident by id, reading through the cache.
func (s *incidentService) GetIncident(ctx context.Context, id string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Cache lookup failed, falling back to database")
	}
	if cached != nil {
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, err
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to cache incident")
	}
	return incident, nil
}

// ListIncidents returns incidents matching the filter, newest first.
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	incidents, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return incidents, nil
}

// GetStats returns dashboard aggregates.
func (s *incidentService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := s.repo.GetStats(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get dashboard stats")
		return nil, fmt.Errorf("service: could not get stats: %w", err)
	}
	return stats, nil
}

// Verify moves a DETECTED incident to VERIFIED.
func (s *incidentService) Verify(ctx context.Context, id, actor string) (*models.Incident, error) {
	return s.applyTransition(ctx, id, lifecycle.ActionVerify, actor, func(inc *models.Incident, now time.Time) {
		inc.VerifiedBy = actor
		inc.VerifiedAt = &now
	})
}

// MarkFalseAlarm moves a DETECTED incident to the terminal FALSE_ALARM state.
func (s *incidentService) MarkFalseAlarm(ctx context.Context, id, actor string) (*models.Incident, error) {
	return s.applyTransition(ctx, id, lifecycle.ActionFalseAlarm, actor, func(inc *models.Incident, now time.Time) {
		inc.VerifiedBy = actor
		inc.VerifiedAt = &now
	})
}

// Close administratively closes an incident from any non-closed state.
func (s *incidentService) Close(ctx context.Context, id, actor, notes string) (*models.Incident, error) {
	return s.applyTransition(ctx, id, lifecycle.ActionClose, actor, func(inc *models.Incident, now time.Time) {
		inc.ClosedBy = actor
		inc.ClosedAt = &now
		inc.ClosureNotes = notes
	})
}

// ListDispatchActions returns the dispatch action log for an incident.
func (s *incidentService) ListDispatchActions(ctx context.Context, id string) ([]*models.DispatchAction, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	actions, err := s.repo.ListActions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not list dispatch actions: %w", err)
	}
	return actions, nil
}

// applyTransition runs one guarded lifecycle transition under the incident's
// exclusive section. Audit fields are only ever added, never cleared.
func (s *incidentService) applyTransition(
	ctx context.Context,
	id string,
	action lifecycle.Action,
	actor string,
	apply func(*models.Incident, time.Time),
) (*models.Incident, error) {
	if actor == "" {
		return nil, &PolicyViolationError{Reason: "actor identity is required"}
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "applyTransition",
		"incident_id": id,
		"action":      action,
		"actor":       actor,
	})

	unlock := s.locks.Lock(id)
	defer unlock()

	now := time.Now().UTC()
	updated, err := s.repo.UpdateState(ctx, id, func(inc *models.Incident) error {
		if !lifecycle.CanApply(action, inc.Status) {
			return &InvalidTransitionError{Action: action, From: inc.Status}
		}
		apply(inc, now)
		inc.Status = lifecycle.Target(action)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Transition rejected")
		return nil, err
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.WithField("status", updated.Status).Info("Transition applied")
	s.broadcaster.BroadcastStatusUpdate(updated, lifecycle.EventName(action))
	s.publishEvent(ctx, webhook.EventStatusUpdate, updated)
	return updated, nil
}

// publishEvent enqueues the lifecycle event on the outbound webhook queue.
// Delivery problems are logged, never propagated to the caller.
func (s *incidentService) publishEvent(ctx context.Context, eventType string, incident *models.Incident) {
	event := webhook.Event{
		EventType:  eventType,
		IncidentID: incident.ID,
		Status:     string(incident.Status),
		Severity:   string(incident.Severity),
		Timestamp:  time.Now().UTC(),
		Incident:   incident,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("incident_id", incident.ID).
			Warn("Failed to publish webhook event")
	}
}
