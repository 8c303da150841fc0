package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all API v1 routes onto the group.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Detection intake from the ML pipeline
	api.POST("/detections", h.ingestDetection)

	// Incident lifecycle
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/verify", h.verifyIncident)
		incidents.POST("/:id/false-alarm", h.markFalseAlarm)
		incidents.POST("/:id/close", h.closeIncident)
		incidents.POST("/:id/police-report", h.sendPoliceReport)
		incidents.GET("/:id/actions", h.listDispatchActions)
		incidents.GET("/:id/nearest-station", h.nearestStation)
	}

	// Ambulance dispatch
	api.POST("/dispatch/ambulance", h.dispatchAmbulance)

	// Responder and source registries
	cameras := api.Group("/cameras")
	{
		cameras.POST("", h.createCamera)
		cameras.GET("", h.listCameras)
		cameras.GET("/:id", h.getCamera)
	}
	stations := api.Group("/police-stations")
	{
		stations.POST("", h.createPoliceStation)
		stations.GET("", h.listPoliceStations)
	}
	providers := api.Group("/ambulance-providers")
	{
		providers.POST("", h.createAmbulanceProvider)
		providers.GET("", h.listAmbulanceProviders)
	}

	// Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterObserverRoutes wires the WebSocket endpoint. It is registered
// outside the authenticated group so dashboards can attach directly.
func (h *Handler) RegisterObserverRoutes(root *gin.RouterGroup) {
	root.GET("/ws", h.serveWS)
}
