package notifier

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/shenikar/accident_responder_system/internal/models"
	"github.com/sirupsen/logrus"
)

// PoliceNotifier delivers an incident report to a police station endpoint.
// The call either fully succeeds or returns an error; there is no partial
// outcome the caller has to interpret.
type PoliceNotifier interface {
	NotifyPolice(ctx context.Context, station *models.PoliceStation, payload []byte) error
}

// AmbulanceNotifier delivers a dispatch request to an ambulance provider.
type AmbulanceNotifier interface {
	NotifyAmbulance(ctx context.Context, provider *models.AmbulanceProvider, payload []byte) error
}

// HTTPNotifier posts signed JSON payloads to the target's endpoint. The
// client timeout bounds every call; a timeout is a failure, never a success.
type HTTPNotifier struct {
	httpClient *http.Client
	secret     string
	logger     *logrus.Logger
}

func NewHTTPNotifier(client *http.Client, secret string, logger *logrus.Logger) *HTTPNotifier {
	return &HTTPNotifier{
		httpClient: client,
		secret:     secret,
		logger:     logger,
	}
}

func (n *HTTPNotifier) NotifyPolice(ctx context.Context, station *models.PoliceStation, payload []byte) error {
	if station.Endpoint == "" {
		return fmt.Errorf("police station %s has no endpoint configured", station.StationID)
	}
	return n.post(ctx, station.Endpoint, payload)
}

func (n *HTTPNotifier) NotifyAmbulance(ctx context.Context, provider *models.AmbulanceProvider, payload []byte) error {
	if provider.Endpoint == "" {
		return fmt.Errorf("ambulance provider %s has no endpoint configured", provider.ProviderID)
	}
	return n.post(ctx, provider.Endpoint, payload)
}

func (n *HTTPNotifier) post(ctx context.Context, url string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create notifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if n.secret != "" {
		req.Header.Set("X-Signature", signHMACSHA256(payload, n.secret))
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notifier endpoint returned status %d", resp.StatusCode)
	}

	n.logger.WithField("url", url).Debug("Notification delivered")
	return nil
}

// signHMACSHA256 signs the payload so the receiving system can authenticate it.
func signHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
