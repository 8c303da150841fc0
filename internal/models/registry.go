package models

import (
	"time"
)

// Camera is a registered traffic camera that produces detections.
type Camera struct {
	CameraID        string    `json:"camera_id"`
	Name            string    `json:"name"`
	LocationAddress string    `json:"location_address"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Zone            string    `json:"zone,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// PoliceStation is a report recipient with a jurisdiction and a location
// used for nearest-station resolution.
type PoliceStation struct {
	StationID    string    `json:"station_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Jurisdiction string    `json:"jurisdiction,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Endpoint     string    `json:"endpoint,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AmbulanceProvider is an emergency medical service reachable for dispatch.
type AmbulanceProvider struct {
	ProviderID   string    `json:"provider_id"`
	Name         string    `json:"name"`
	ServiceType  string    `json:"service_type,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Endpoint     string    `json:"endpoint,omitempty"`
	CoverageArea string    `json:"coverage_area,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
