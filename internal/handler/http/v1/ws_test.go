package v1

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/accident_responder_system/internal/broadcast"
	"github.com/shenikar/accident_responder_system/internal/config"
	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/shenikar/accident_responder_system/internal/service/mocks"
	"github.com/shenikar/accident_responder_system/internal/service/svcmocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newWSTestServer starts a test server exposing only the observer endpoint.
func newWSTestServer(t *testing.T) (*broadcast.Hub, *httptest.Server) {
	ctrl := gomock.NewController(t)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		WSPingInterval: 100 * time.Millisecond,
		WSPongWait:     time.Second,
	}
	hub := broadcast.NewHub(8, logger)
	handler := NewHandler(
		svcmocks.NewMockIncidentService(ctrl),
		svcmocks.NewMockDispatchService(ctrl),
		mocks.NewMockRegistryRepository(ctrl),
		hub,
		logger,
		cfg,
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterObserverRoutes(router.Group("/api/v1"))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestServeWS_ReceivesBroadcasts(t *testing.T) {
	hub, srv := newWSTestServer(t)
	conn := dialWS(t, srv)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond, "observer never registered")

	hub.BroadcastNewIncident(&models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusDetected})
	hub.BroadcastStatusUpdate(&models.Incident{ID: "INC-2026-AB12CD", Status: models.StatusVerified}, "incident_verified")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var first broadcast.Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, broadcast.TypeNewIncident, first.Type)
	assert.Equal(t, uint64(1), first.Seq)

	var second broadcast.Message
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, broadcast.TypeStatusUpdate, second.Type)
	assert.Equal(t, "incident_verified", second.Event)
	assert.Greater(t, second.Seq, first.Seq)
}

func TestServeWS_ApplicationPingPong(t *testing.T) {
	hub, srv := newWSTestServer(t)
	conn := dialWS(t, srv)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg broadcast.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, broadcast.TypePong, msg.Type)
}

func TestServeWS_DisconnectUnsubscribes(t *testing.T) {
	hub, srv := newWSTestServer(t)
	conn := dialWS(t, srv)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 0 },
		time.Second, 10*time.Millisecond, "subscription should be torn down on disconnect")
}
