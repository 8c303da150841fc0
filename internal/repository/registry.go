package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service"
)

// RegistryRepository stores cameras, police stations and ambulance providers.
type RegistryRepository struct {
	db *pgxpool.Pool
}

func NewRegistryRepository(db *pgxpool.Pool) service.RegistryRepository {
	return &RegistryRepository{db: db}
}

// CreateCamera registers a new camera.
func (r *RegistryRepository) CreateCamera(ctx context.Context, camera *models.Camera) error {
	query := `
		INSERT INTO cameras (camera_id, name, location_address, latitude, longitude, zone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		camera.CameraID,
		camera.Name,
		camera.LocationAddress,
		camera.Latitude,
		camera.Longitude,
		camera.Zone,
		camera.IsActive,
	).Scan(&camera.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create camera: %w", err)
	}
	return nil
}

// GetCamera returns a camera by its identifier.
func (r *RegistryRepository) GetCamera(ctx context.Context, id string) (*models.Camera, error) {
	query := `
		SELECT camera_id, name, location_address, latitude, longitude, zone, is_active, created_at
		FROM cameras
		WHERE camera_id = $1;
	`
	camera := &models.Camera{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&camera.CameraID,
		&camera.Name,
		&camera.LocationAddress,
		&camera.Latitude,
		&camera.Longitude,
		&camera.Zone,
		&camera.IsActive,
		&camera.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("camera %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get camera: %w", err)
	}
	return camera, nil
}

// ListCameras returns cameras, optionally only active ones within a zone.
func (r *RegistryRepository) ListCameras(ctx context.Context, activeOnly bool, zone string) ([]*models.Camera, error) {
	query := `
		SELECT camera_id, name, location_address, latitude, longitude, zone, is_active, created_at
		FROM cameras
		WHERE 1=1
	`
	args := []any{}
	if activeOnly {
		query += " AND is_active"
	}
	if zone != "" {
		args = append(args, zone)
		query += fmt.Sprintf(" AND zone = $%d", len(args))
	}
	query += " ORDER BY camera_id;"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	defer rows.Close()

	cameras := make([]*models.Camera, 0)
	for rows.Next() {
		camera := &models.Camera{}
		err := rows.Scan(
			&camera.CameraID,
			&camera.Name,
			&camera.LocationAddress,
			&camera.Latitude,
			&camera.Longitude,
			&camera.Zone,
			&camera.IsActive,
			&camera.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camera row: %w", err)
		}
		cameras = append(cameras, camera)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during camera list iteration: %w", err)
	}
	return cameras, nil
}

// CreatePoliceStation registers a new police station.
func (r *RegistryRepository) CreatePoliceStation(ctx context.Context, station *models.PoliceStation) error {
	query := `
		INSERT INTO police_stations (station_id, name, address, latitude, longitude, jurisdiction, contact_phone, endpoint, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		station.StationID,
		station.Name,
		station.Address,
		station.Latitude,
		station.Longitude,
		station.Jurisdiction,
		station.ContactPhone,
		station.Endpoint,
		station.IsActive,
	).Scan(&station.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create police station: %w", err)
	}
	return nil
}

// GetPoliceStation returns a police station by its identifier.
func (r *RegistryRepository) GetPoliceStation(ctx context.Context, id string) (*models.PoliceStation, error) {
	query := `
		SELECT station_id, name, address, latitude, longitude, jurisdiction, contact_phone, endpoint, is_active, created_at
		FROM police_stations
		WHERE station_id = $1;
	`
	station := &models.PoliceStation{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&station.StationID,
		&station.Name,
		&station.Address,
		&station.Latitude,
		&station.Longitude,
		&station.Jurisdiction,
		&station.ContactPhone,
		&station.Endpoint,
		&station.IsActive,
		&station.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("police station %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get police station: %w", err)
	}
	return station, nil
}

// ListPoliceStations returns police stations, optionally only active ones.
func (r *RegistryRepository) ListPoliceStations(ctx context.Context, activeOnly bool) ([]*models.PoliceStation, error) {
	query := `
		SELECT station_id, name, address, latitude, longitude, jurisdiction, contact_phone, endpoint, is_active, created_at
		FROM police_stations
	`
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY station_id;"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list police stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.PoliceStation, 0)
	for rows.Next() {
		station := &models.PoliceStation{}
		err := rows.Scan(
			&station.StationID,
			&station.Name,
			&station.Address,
			&station.Latitude,
			&station.Longitude,
			&station.Jurisdiction,
			&station.ContactPhone,
			&station.Endpoint,
			&station.IsActive,
			&station.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan police station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during station list iteration: %w", err)
	}
	return stations, nil
}

// CreateAmbulanceProvider registers a new ambulance provider.
func (r *RegistryRepository) CreateAmbulanceProvider(ctx context.Context, provider *models.AmbulanceProvider) error {
	query := `
		INSERT INTO ambulance_providers (provider_id, name, service_type, contact_phone, endpoint, coverage_area, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		provider.ProviderID,
		provider.Name,
		provider.ServiceType,
		provider.ContactPhone,
		provider.Endpoint,
		provider.CoverageArea,
		provider.IsActive,
	).Scan(&provider.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ambulance provider: %w", err)
	}
	return nil
}

// GetAmbulanceProvider returns an ambulance provider by its identifier.
func (r *RegistryRepository) GetAmbulanceProvider(ctx context.Context, id string) (*models.AmbulanceProvider, error) {
	query := `
		SELECT provider_id, name, service_type, contact_phone, endpoint, coverage_area, is_active, created_at
		FROM ambulance_providers
		WHERE provider_id = $1;
	`
	provider := &models.AmbulanceProvider{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&provider.ProviderID,
		&provider.Name,
		&provider.ServiceType,
		&provider.ContactPhone,
		&provider.Endpoint,
		&provider.CoverageArea,
		&provider.IsActive,
		&provider.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ambulance provider %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ambulance provider: %w", err)
	}
	return provider, nil
}

// ListAmbulanceProviders returns providers, optionally only active ones.
func (r *RegistryRepository) ListAmbulanceProviders(ctx context.Context, activeOnly bool) ([]*models.AmbulanceProvider, error) {
	query := `
		SELECT provider_id, name, service_type, contact_phone, endpoint, coverage_area, is_active, created_at
		FROM ambulance_providers
	`
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY provider_id;"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ambulance providers: %w", err)
	}
	defer rows.Close()

	providers := make([]*models.AmbulanceProvider, 0)
	for rows.Next() {
		provider := &models.AmbulanceProvider{}
		err := rows.Scan(
			&provider.ProviderID,
			&provider.Name,
			&provider.ServiceType,
			&provider.ContactPhone,
			&provider.Endpoint,
			&provider.CoverageArea,
			&provider.IsActive,
			&provider.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ambulance provider row: %w", err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during provider list iteration: %w", err)
	}
	return providers, nil
}
