package v1

import (
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service"
	"github.com/shenikar/accident_responder_system/internal/severity"
)

func toDetectionEvent(req *DetectionRequest) *service.DetectionEvent {
	return &service.DetectionEvent{
		CameraID:  req.CameraID,
		Timestamp: req.Timestamp,
		Factors: severity.Factors{
			VehiclesInvolved:   req.Features.VehiclesInvolved,
			PedestrianInvolved: req.Features.PedestrianInvolved,
			FireDetected:       req.Features.FireDetected,
			Rollover:           req.Features.Rollover,
			EstimatedSpeedKmh:  req.Features.EstimatedSpeedKmh,
		},
		Confidence:  req.Confidence,
		Description: req.Description,
		Snapshots:   req.Snapshots,
	}
}

func toIncidentResponse(inc *models.Incident) *IncidentResponse {
	if inc == nil {
		return nil
	}
	return &IncidentResponse{
		ID:                 inc.ID,
		CameraID:           inc.CameraID,
		IncidentType:       string(inc.IncidentType),
		Severity:           string(inc.Severity),
		SeverityScore:      inc.SeverityScore,
		ConfidenceScore:    inc.ConfidenceScore,
		Status:             string(inc.Status),
		VehiclesInvolved:   inc.VehiclesInvolved,
		PedestrianInvolved: inc.PedestrianInvolved,
		FireDetected:       inc.FireDetected,
		Rollover:           inc.Rollover,
		Description:        inc.Description,
		Snapshots:          inc.Snapshots,
		DetectedAt:         inc.DetectedAt,
		VerifiedBy:         inc.VerifiedBy,
		VerifiedAt:         inc.VerifiedAt,
		ReportedBy:         inc.ReportedBy,
		ReportedAt:         inc.ReportedAt,
		DispatchedBy:       inc.DispatchedBy,
		DispatchedAt:       inc.DispatchedAt,
		ClosedBy:           inc.ClosedBy,
		ClosedAt:           inc.ClosedAt,
		ClosureNotes:       inc.ClosureNotes,
		CreatedAt:          inc.CreatedAt,
		UpdatedAt:          inc.UpdatedAt,
	}
}

func toIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	out := make([]*IncidentResponse, 0, len(incidents))
	for _, inc := range incidents {
		out = append(out, toIncidentResponse(inc))
	}
	return out
}

func toActionResponse(action *models.DispatchAction) *DispatchActionResponse {
	if action == nil {
		return nil
	}
	return &DispatchActionResponse{
		ID:             action.ID,
		IncidentID:     action.IncidentID,
		Kind:           string(action.Kind),
		TargetID:       action.TargetID,
		Success:        action.Success,
		FailureReason:  action.FailureReason,
		RequestPayload: action.RequestPayload,
		RequestedBy:    action.RequestedBy,
		CreatedAt:      action.CreatedAt,
	}
}

func toActionResponses(actions []*models.DispatchAction) []*DispatchActionResponse {
	out := make([]*DispatchActionResponse, 0, len(actions))
	for _, action := range actions {
		out = append(out, toActionResponse(action))
	}
	return out
}

func toDispatchResultResponse(res *service.DispatchResult) *DispatchResultResponse {
	return &DispatchResultResponse{
		Incident: toIncidentResponse(res.Incident),
		Action:   toActionResponse(res.Action),
		Replayed: res.Replayed,
	}
}

func toCamera(req *CreateCameraRequest) *models.Camera {
	return &models.Camera{
		CameraID:        req.CameraID,
		Name:            req.Name,
		LocationAddress: req.LocationAddress,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Zone:            req.Zone,
		IsActive:        true,
	}
}

func toPoliceStation(req *CreatePoliceStationRequest) *models.PoliceStation {
	return &models.PoliceStation{
		StationID:    req.StationID,
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Jurisdiction: req.Jurisdiction,
		ContactPhone: req.ContactPhone,
		Endpoint:     req.Endpoint,
		IsActive:     true,
	}
}

func toAmbulanceProvider(req *CreateAmbulanceProviderRequest) *models.AmbulanceProvider {
	return &models.AmbulanceProvider{
		ProviderID:   req.ProviderID,
		Name:         req.Name,
		ServiceType:  req.ServiceType,
		ContactPhone: req.ContactPhone,
		Endpoint:     req.Endpoint,
		CoverageArea: req.CoverageArea,
		IsActive:     true,
	}
}

func toStatsResponse(stats *models.DashboardStats) *StatsResponse {
	return &StatsResponse{
		ActiveIncidents:      stats.ActiveIncidents,
		TodayIncidents:       stats.TodayIncidents,
		PendingVerification:  stats.PendingVerification,
		DispatchedAmbulances: stats.DispatchedAmbulances,
		PoliceReportsSent:    stats.PoliceReportsSent,
	}
}
