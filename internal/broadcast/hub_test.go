package broadcast

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufSize int) *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewHub(bufSize, logger)
}

func receive(t *testing.T, sub *Subscription) Message {
	t.Helper()
	select {
	case msg, ok := <-sub.C():
		require.True(t, ok, "subscription channel closed unexpectedly")
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast message")
		return Message{}
	}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	hub := newTestHub(8)
	sub1 := hub.Subscribe()
	sub2 := hub.Subscribe()
	defer sub1.Close()
	defer sub2.Close()

	incident := &models.Incident{ID: "INC-2026-AAAAAA", Status: models.StatusDetected}
	hub.BroadcastNewIncident(incident)

	for _, sub := range []*Subscription{sub1, sub2} {
		msg := receive(t, sub)
		assert.Equal(t, TypeNewIncident, msg.Type)
		assert.Equal(t, incident, msg.Data)
	}
}

func TestHub_SequenceIsMonotonic(t *testing.T) {
	hub := newTestHub(8)
	sub := hub.Subscribe()
	defer sub.Close()

	incident := &models.Incident{ID: "INC-2026-BBBBBB"}
	hub.BroadcastNewIncident(incident)
	hub.BroadcastStatusUpdate(incident, "incident_verified")
	hub.BroadcastStatusUpdate(incident, "incident_reported")

	var last uint64
	for i := 0; i < 3; i++ {
		msg := receive(t, sub)
		assert.Greater(t, msg.Seq, last)
		last = msg.Seq
	}
}

func TestHub_StatusUpdateCarriesEventName(t *testing.T) {
	hub := newTestHub(8)
	sub := hub.Subscribe()
	defer sub.Close()

	incident := &models.Incident{ID: "INC-2026-CCCCCC", Status: models.StatusVerified}
	hub.BroadcastStatusUpdate(incident, "incident_verified")

	msg := receive(t, sub)
	assert.Equal(t, TypeStatusUpdate, msg.Type)
	assert.Equal(t, "incident_verified", msg.Event)
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := newTestHub(1)
	slow := hub.Subscribe()
	healthy := hub.Subscribe()
	defer healthy.Close()

	incident := &models.Incident{ID: "INC-2026-DDDDDD"}

	// First message fills the slow subscriber's buffer.
	hub.BroadcastNewIncident(incident)
	assert.Equal(t, TypeNewIncident, receive(t, healthy).Type)

	// The second overflows it and tears the subscription down.
	hub.BroadcastStatusUpdate(incident, "incident_verified")
	assert.Equal(t, TypeStatusUpdate, receive(t, healthy).Type)
	assert.Equal(t, 1, hub.Count())

	// The slow subscriber still sees its buffered message, then the close.
	msg := receive(t, slow)
	assert.Equal(t, TypeNewIncident, msg.Type)
	_, ok := <-slow.C()
	assert.False(t, ok)
}

func TestHub_LateSubscriberGetsNoBacklog(t *testing.T) {
	hub := newTestHub(8)
	hub.BroadcastNewIncident(&models.Incident{ID: "INC-2026-EEEEEE"})

	late := hub.Subscribe()
	defer late.Close()

	select {
	case msg := <-late.C():
		t.Fatalf("late subscriber received backlog message %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_CloseAll(t *testing.T) {
	hub := newTestHub(8)
	sub1 := hub.Subscribe()
	sub2 := hub.Subscribe()

	hub.CloseAll()
	assert.Equal(t, 0, hub.Count())

	_, ok := <-sub1.C()
	assert.False(t, ok)
	_, ok = <-sub2.C()
	assert.False(t, ok)
}

func TestHub_BroadcastDuringSubscriberChurn(t *testing.T) {
	hub := newTestHub(1)
	incident := &models.Incident{ID: "INC-2026-FFFFFF"}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					hub.BroadcastNewIncident(incident)
				}
			}
		}()
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				sub := hub.Subscribe()
				sub.Close()
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		time.Sleep(200 * time.Millisecond)
		close(stop)
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("churn never settled")
	}
	assert.Equal(t, 0, hub.Count())
}

func TestHub_CloseAllDuringBroadcast(t *testing.T) {
	hub := newTestHub(1)
	for i := 0; i < 16; i++ {
		hub.Subscribe()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			hub.BroadcastNewIncident(&models.Incident{ID: "INC-2026-ABCDEF"})
		}
	}()

	hub.CloseAll()
	wg.Wait()
	assert.Equal(t, 0, hub.Count())
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := newTestHub(8)
	sub := hub.Subscribe()
	sub.Close()
	sub.Close()
	assert.Equal(t, 0, hub.Count())
}
