package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

const incidentColumns = `
	id,
	camera_id,
	incident_type,
	severity,
	severity_score,
	confidence_score,
	status,
	vehicles_involved,
	pedestrian_involved,
	fire_detected,
	rollover,
	description,
	snapshots,
	detected_at,
	verified_by,
	verified_at,
	reported_by,
	reported_at,
	dispatched_by,
	dispatched_at,
	closed_by,
	closed_at,
	closure_notes,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.CameraID,
		&incident.IncidentType,
		&incident.Severity,
		&incident.SeverityScore,
		&incident.ConfidenceScore,
		&incident.Status,
		&incident.VehiclesInvolved,
		&incident.PedestrianInvolved,
		&incident.FireDetected,
		&incident.Rollover,
		&incident.Description,
		&incident.Snapshots,
		&incident.DetectedAt,
		&incident.VerifiedBy,
		&incident.VerifiedAt,
		&incident.ReportedBy,
		&incident.ReportedAt,
		&incident.DispatchedBy,
		&incident.DispatchedAt,
		&incident.ClosedBy,
		&incident.ClosedAt,
		&incident.ClosureNotes,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create inserts a new incident record.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, camera_id, incident_type, severity, severity_score, confidence_score,
			status, vehicles_involved, pedestrian_involved, fire_detected, rollover,
			description, snapshots, detected_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.CameraID,
		incident.IncidentType,
		incident.Severity,
		incident.SeverityScore,
		incident.ConfidenceScore,
		incident.Status,
		incident.VehiclesInvolved,
		incident.PedestrianInvolved,
		incident.FireDetected,
		incident.Rollover,
		incident.Description,
		incident.Snapshots,
		incident.DetectedAt,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID returns an incident by its identifier.
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List returns incidents matching the filter, newest first.
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		query += fmt.Sprintf(" AND severity = $%d", len(args))
	}
	if filter.ActiveOnly {
		query += " AND status NOT IN ('CLOSED', 'FALSE_ALARM')"
	}

	query += " ORDER BY created_at DESC"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during list iteration: %w", err)
	}
	return incidents, nil
}

// UpdateState applies the mutator to the incident while holding a row lock,
// so concurrent transition attempts are linearized: the second one observes
// the post-state of the first and is evaluated against the guard again.
func (r *IncidentRepository) UpdateState(ctx context.Context, id string, mutate func(*models.Incident) error) (*models.Incident, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	incident, err := r.lockIncident(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(incident); err != nil {
		// Guard rejections from the mutator pass through untouched.
		return nil, err
	}

	if err := r.persistState(ctx, tx, incident); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit state update: %w", err)
	}
	return incident, nil
}

// RecordAction inserts a dispatch action record outside any transition,
// used for failed attempts that leave the incident untouched.
func (r *IncidentRepository) RecordAction(ctx context.Context, action *models.DispatchAction) error {
	query := `
		INSERT INTO dispatch_actions (incident_id, kind, target_id, success, failure_reason, request_payload, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		action.IncidentID,
		action.Kind,
		action.TargetID,
		action.Success,
		action.FailureReason,
		action.RequestPayload,
		action.RequestedBy,
	).Scan(&action.ID, &action.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record dispatch action: %w", err)
	}
	return nil
}

// RecordActionAndTransition appends the action record and applies the state
// transition in a single transaction: both happen or neither does.
func (r *IncidentRepository) RecordActionAndTransition(ctx context.Context, action *models.DispatchAction, mutate func(*models.Incident) error) (*models.Incident, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	incident, err := r.lockIncident(ctx, tx, action.IncidentID)
	if err != nil {
		return nil, err
	}

	if err := mutate(incident); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO dispatch_actions (incident_id, kind, target_id, success, failure_reason, request_payload, requested_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		action.IncidentID,
		action.Kind,
		action.TargetID,
		action.Success,
		action.FailureReason,
		action.RequestPayload,
		action.RequestedBy,
	).Scan(&action.ID, &action.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record dispatch action: %w", err)
	}

	if err := r.persistState(ctx, tx, incident); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit dispatch transition: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) lockIncident(ctx context.Context, tx pgx.Tx, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 FOR UPDATE;`
	incident, err := scanIncident(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock incident row: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) persistState(ctx context.Context, tx pgx.Tx, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			status = $1,
			verified_by = $2,
			verified_at = $3,
			reported_by = $4,
			reported_at = $5,
			dispatched_by = $6,
			dispatched_at = $7,
			closed_by = $8,
			closed_at = $9,
			closure_notes = $10,
			updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at;
	`
	err := tx.QueryRow(ctx, query,
		incident.Status,
		incident.VerifiedBy,
		incident.VerifiedAt,
		incident.ReportedBy,
		incident.ReportedAt,
		incident.DispatchedBy,
		incident.DispatchedAt,
		incident.ClosedBy,
		incident.ClosedAt,
		incident.ClosureNotes,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to persist incident state: %w", err)
	}
	return nil
}

// FindSuccessfulAction returns the successful action of the given kind, or
// nil when none has been recorded yet.
func (r *IncidentRepository) FindSuccessfulAction(ctx context.Context, incidentID string, kind models.ActionKind) (*models.DispatchAction, error) {
	query := `
		SELECT id, incident_id, kind, target_id, success, failure_reason, request_payload, requested_by, created_at
		FROM dispatch_actions
		WHERE incident_id = $1 AND kind = $2 AND success
		ORDER BY created_at ASC
		LIMIT 1;
	`
	action := &models.DispatchAction{}
	err := r.db.QueryRow(ctx, query, incidentID, kind).Scan(
		&action.ID,
		&action.IncidentID,
		&action.Kind,
		&action.TargetID,
		&action.Success,
		&action.FailureReason,
		&action.RequestPayload,
		&action.RequestedBy,
		&action.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find successful dispatch action: %w", err)
	}
	return action, nil
}

// ListActions returns the dispatch action log for an incident, oldest first.
func (r *IncidentRepository) ListActions(ctx context.Context, incidentID string) ([]*models.DispatchAction, error) {
	query := `
		SELECT id, incident_id, kind, target_id, success, failure_reason, request_payload, requested_by, created_at
		FROM dispatch_actions
		WHERE incident_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch actions: %w", err)
	}
	defer rows.Close()

	actions := make([]*models.DispatchAction, 0)
	for rows.Next() {
		action := &models.DispatchAction{}
		err := rows.Scan(
			&action.ID,
			&action.IncidentID,
			&action.Kind,
			&action.TargetID,
			&action.Success,
			&action.FailureReason,
			&action.RequestPayload,
			&action.RequestedBy,
			&action.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch action row: %w", err)
		}
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during action list iteration: %w", err)
	}
	return actions, nil
}

// GetStats returns the dashboard aggregates in one query.
func (r *IncidentRepository) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status NOT IN ('CLOSED', 'FALSE_ALARM')) AS active,
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', NOW())) AS today,
			COUNT(*) FILTER (WHERE status = 'DETECTED') AS pending,
			COUNT(*) FILTER (WHERE status = 'DISPATCHED') AS dispatched,
			COUNT(*) FILTER (WHERE status IN ('REPORTED', 'DISPATCHED', 'CLOSED')) AS reported
		FROM incidents;
	`
	stats := &models.DashboardStats{}
	err := r.db.QueryRow(ctx, query).Scan(
		&stats.ActiveIncidents,
		&stats.TodayIncidents,
		&stats.PendingVerification,
		&stats.DispatchedAmbulances,
		&stats.PoliceReportsSent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// GetIncidentFromCache tries to fetch an incident from Redis.
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	key := fmt.Sprintf("incident:%s", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache stores an incident in Redis with a TTL.
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	key := fmt.Sprintf("incident:%s", incident.ID)
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache drops an incident from the Redis cache.
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id string) error {
	key := fmt.Sprintf("incident:%s", id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
