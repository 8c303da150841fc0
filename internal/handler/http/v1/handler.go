package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/accident_responder_system/internal/broadcast"
	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	dispatchService service.DispatchService
	registry        service.RegistryRepository
	hub             *broadcast.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	dispatchService service.DispatchService,
	registry service.RegistryRepository,
	hub *broadcast.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		dispatchService: dispatchService,
		registry:        registry,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// renderServiceError maps domain errors to HTTP status codes. Unrecognized
// errors become opaque 500s so repository details never leak to clients.
func (h *Handler) renderServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var invalidTransition *service.InvalidTransitionError
	var policyViolation *service.PolicyViolationError
	var notifierErr *service.NotifierError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found", "code": "not_found"})
	case errors.Is(err, service.ErrAlreadyInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "already_in_progress"})
	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": invalidTransition.Error(), "code": "invalid_transition"})
	case errors.As(err, &policyViolation):
		c.JSON(http.StatusBadRequest, gin.H{"error": policyViolation.Error(), "code": "policy_violation"})
	case errors.As(err, &notifierErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": notifierErr.Error(), "code": "notifier_failure", "retryable": true})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Ingest a detection event
// @Description Accepts a machine detection, classifies its severity and creates an incident in DETECTED state. Requires API key.
// @Tags Detections
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param detection body DetectionRequest true "Detection event"
// @Success 201 {object} DetectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown camera"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /detections [post]
func (h *Handler) ingestDetection(c *gin.Context) {
	var input DetectionRequest
	log := h.logger.WithField("method", "ingestDetection")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.IngestDetection(c.Request.Context(), toDetectionEvent(&input))
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, DetectionResponse{
		IncidentID: incident.ID,
		Severity:   string(incident.Severity),
		Score:      incident.SeverityScore,
		Status:     string(incident.Status),
	})
}

// @Summary Get a list of incidents
// @Description Get incidents filtered by status, severity or activity, newest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Lifecycle status filter"
// @Param severity query string false "Severity tier filter"
// @Param active query bool false "Only incidents in non-terminal states"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	filter := models.IncidentFilter{
		Status:     models.IncidentStatus(c.Query("status")),
		Severity:   models.SeverityLevel(c.Query("severity")),
		ActiveOnly: activeOnly,
		Limit:      limit,
		Offset:     offset,
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its identifier. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident")

	incident, err := h.incidentService.GetIncident(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Verify an incident
// @Description Operator confirms a detected incident is real. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body ActorRequest true "Operator identity"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or policy violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /incidents/{id}/verify [post]
func (h *Handler) verifyIncident(c *gin.Context) {
	h.applyActorTransition(c, "verifyIncident", h.incidentService.Verify)
}

// @Summary Mark an incident as a false alarm
// @Description Operator rejects a detected incident. The state is terminal. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body ActorRequest true "Operator identity"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or policy violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /incidents/{id}/false-alarm [post]
func (h *Handler) markFalseAlarm(c *gin.Context) {
	h.applyActorTransition(c, "markFalseAlarm", h.incidentService.MarkFalseAlarm)
}

func (h *Handler) applyActorTransition(
	c *gin.Context,
	method string,
	apply func(ctx context.Context, id, actor string) (*models.Incident, error),
) {
	var input ActorRequest
	log := h.logger.WithField("method", method)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := apply(c.Request.Context(), c.Param("id"), input.Actor)
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Close an incident
// @Description Administratively closes an incident from any non-closed state. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body CloseRequest true "Operator identity and closure notes"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or policy violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /incidents/{id}/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	var input CloseRequest
	log := h.logger.WithField("method", "closeIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.Close(c.Request.Context(), c.Param("id"), input.Actor, input.Notes)
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toIncidentResponse(incident))
}

// @Summary Send a police report for an incident
// @Description Sends a preliminary incident intimation to a police station and advances the incident to REPORTED. Idempotent: a repeat after success returns the prior record. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param request body PoliceReportRequest true "Report request"
// @Success 200 {object} DispatchResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or policy violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid transition or already in progress"
// @Failure 502 {object} map[string]string "Notifier failure, safe to retry"
// @Router /incidents/{id}/police-report [post]
func (h *Handler) sendPoliceReport(c *gin.Context) {
	var input PoliceReportRequest
	log := h.logger.WithField("method", "sendPoliceReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.SendPoliceReport(c.Request.Context(), &service.PoliceReportRequest{
		IncidentID:  c.Param("id"),
		StationID:   input.StationID,
		Notes:       input.Notes,
		RequestedBy: input.RequestedBy,
	})
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toDispatchResultResponse(result))
}

// @Summary Dispatch an ambulance
// @Description Notifies an ambulance provider for a HIGH or CRITICAL incident and advances it to DISPATCHED. Duplicate concurrent requests are rejected. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body AmbulanceDispatchRequest true "Dispatch request"
// @Success 200 {object} DispatchResultResponse
// @Failure 400 {object} map[string]string "Invalid request body or policy violation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Invalid transition or already in progress"
// @Failure 502 {object} map[string]string "Notifier failure, safe to retry"
// @Router /dispatch/ambulance [post]
func (h *Handler) dispatchAmbulance(c *gin.Context) {
	var input AmbulanceDispatchRequest
	log := h.logger.WithField("method", "dispatchAmbulance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.dispatchService.DispatchAmbulance(c.Request.Context(), &service.AmbulanceDispatchRequest{
		IncidentID:     input.IncidentID,
		ProviderID:     input.ProviderID,
		CallbackNumber: input.CallbackNumber,
		OperatorID:     input.OperatorID,
		Confirmed:      input.Confirmed,
	})
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toDispatchResultResponse(result))
}

// @Summary Get dispatch actions for an incident
// @Description Lists every external action attempt recorded for the incident, failures included. Requires API key.
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} DispatchActionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/actions [get]
func (h *Handler) listDispatchActions(c *gin.Context) {
	log := h.logger.WithField("method", "listDispatchActions")

	actions, err := h.incidentService.ListDispatchActions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toActionResponses(actions))
}

// @Summary Find the nearest police station to an incident
// @Description Resolves the closest active police station to the incident's camera location. Requires API key.
// @Tags Dispatch
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} models.PoliceStation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/nearest-station [get]
func (h *Handler) nearestStation(c *gin.Context) {
	log := h.logger.WithField("method", "nearestStation")

	station, err := h.dispatchService.NearestStation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, station)
}

// @Summary Get dashboard statistics
// @Description Returns aggregate counters for the operator dashboard. Requires API key.
// @Tags System
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}

// @Summary Register a camera
// @Description Registers a traffic camera as a detection source. Requires API key.
// @Tags Registry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param camera body CreateCameraRequest true "Camera registration"
// @Success 201 {object} models.Camera
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras [post]
func (h *Handler) createCamera(c *gin.Context) {
	var input CreateCameraRequest
	log := h.logger.WithField("method", "createCamera")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	camera := toCamera(&input)
	if err := h.registry.CreateCamera(c.Request.Context(), camera); err != nil {
		log.WithError(err).Error("Failed to create camera")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, camera)
}

// @Summary List cameras
// @Description Lists registered cameras, optionally only active ones within a zone. Requires API key.
// @Tags Registry
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "Only active cameras"
// @Param zone query string false "Zone filter"
// @Success 200 {array} models.Camera
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras [get]
func (h *Handler) listCameras(c *gin.Context) {
	log := h.logger.WithField("method", "listCameras")

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	cameras, err := h.registry.ListCameras(c.Request.Context(), activeOnly, c.Query("zone"))
	if err != nil {
		log.WithError(err).Error("Failed to list cameras")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, cameras)
}

// @Summary Get camera by ID
// @Description Returns a registered camera. Requires API key.
// @Tags Registry
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Camera ID"
// @Success 200 {object} models.Camera
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Camera not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cameras/{id} [get]
func (h *Handler) getCamera(c *gin.Context) {
	cameraID := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{
		"method":    "getCamera",
		"camera_id": cameraID,
	})

	camera, err := h.registry.GetCamera(c.Request.Context(), cameraID)
	if err != nil {
		h.renderServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, camera)
}

// @Summary Register a police station
// @Description Registers a police station as a report recipient. Requires API key.
// @Tags Registry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param station body CreatePoliceStationRequest true "Station registration"
// @Success 201 {object} models.PoliceStation
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations [post]
func (h *Handler) createPoliceStation(c *gin.Context) {
	var input CreatePoliceStationRequest
	log := h.logger.WithField("method", "createPoliceStation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	station := toPoliceStation(&input)
	if err := h.registry.CreatePoliceStation(c.Request.Context(), station); err != nil {
		log.WithError(err).Error("Failed to create police station")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, station)
}

// @Summary List police stations
// @Description Lists registered police stations. Requires API key.
// @Tags Registry
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "Only active stations"
// @Success 200 {array} models.PoliceStation
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /police-stations [get]
func (h *Handler) listPoliceStations(c *gin.Context) {
	log := h.logger.WithField("method", "listPoliceStations")

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	stations, err := h.registry.ListPoliceStations(c.Request.Context(), activeOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list police stations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stations)
}

// @Summary Register an ambulance provider
// @Description Registers an ambulance provider as a dispatch target. Requires API key.
// @Tags Registry
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param provider body CreateAmbulanceProviderRequest true "Provider registration"
// @Success 201 {object} models.AmbulanceProvider
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulance-providers [post]
func (h *Handler) createAmbulanceProvider(c *gin.Context) {
	var input CreateAmbulanceProviderRequest
	log := h.logger.WithField("method", "createAmbulanceProvider")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider := toAmbulanceProvider(&input)
	if err := h.registry.CreateAmbulanceProvider(c.Request.Context(), provider); err != nil {
		log.WithError(err).Error("Failed to create ambulance provider")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, provider)
}

// @Summary List ambulance providers
// @Description Lists registered ambulance providers. Requires API key.
// @Tags Registry
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "Only active providers"
// @Success 200 {array} models.AmbulanceProvider
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ambulance-providers [get]
func (h *Handler) listAmbulanceProviders(c *gin.Context) {
	log := h.logger.WithField("method", "listAmbulanceProviders")

	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))
	providers, err := h.registry.ListAmbulanceProviders(c.Request.Context(), activeOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list ambulance providers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, providers)
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
