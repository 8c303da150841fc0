package severity

import (
	"github.com/shenikar/accident_responder_system/internal/models"
)

// Factors is the feature set reported by the detection pipeline for one event.
type Factors struct {
	VehiclesInvolved   int
	PedestrianInvolved bool
	FireDetected       bool
	Rollover           bool
	EstimatedSpeedKmh  float64
}

// Scoring weights. Each factor contributes independently, no compounding.
const (
	weightPedestrian   = 3.0
	weightFire         = 3.5
	weightRollover     = 2.5
	weightMultiVehicle = 2.0
	weightHighSpeed    = 2.0

	multiVehicleCount = 3
	highSpeedKmh      = 60.0
)

// Tier thresholds, evaluated highest-first on the summed score.
const (
	thresholdCritical = 6.0
	thresholdHigh     = 4.0
	thresholdMedium   = 2.0
)

// Classify maps detection factors to a severity score and tier.
// It is a pure function: the same input always yields the same output,
// which keeps the audit trail reproducible.
func Classify(f Factors) (float64, models.SeverityLevel) {
	score := 0.0

	if f.PedestrianInvolved {
		score += weightPedestrian
	}
	if f.FireDetected {
		score += weightFire
	}
	if f.Rollover {
		score += weightRollover
	}
	if f.VehiclesInvolved >= multiVehicleCount {
		score += weightMultiVehicle
	}
	if f.EstimatedSpeedKmh > highSpeedKmh {
		score += weightHighSpeed
	}

	return score, tierFor(score)
}

func tierFor(score float64) models.SeverityLevel {
	switch {
	case score >= thresholdCritical:
		return models.SeverityCritical
	case score >= thresholdHigh:
		return models.SeverityHigh
	case score >= thresholdMedium:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// CategoryFor derives the incident category from the dominant factor.
func CategoryFor(f Factors) models.IncidentType {
	switch {
	case f.PedestrianInvolved:
		return models.TypePedestrianImpact
	case f.FireDetected:
		return models.TypeFireSmoke
	case f.Rollover:
		return models.TypeRollover
	case f.VehiclesInvolved >= multiVehicleCount:
		return models.TypeMultiVehicle
	default:
		return models.TypeVehicleCollision
	}
}

// DispatchEligible reports whether the tier warrants an ambulance prompt.
// Actual dispatch still requires operator confirmation.
func DispatchEligible(level models.SeverityLevel) bool {
	return level == models.SeverityHigh || level == models.SeverityCritical
}
