package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/config"
)

const (
	tokenURL     = "https://oauth2.googleapis.com/token"
	eventsURLFmt = "https://www.googleapis.com/calendar/v3/calendars/%s/events"
)

// Client creates events on a single Google calendar using an offline
// refresh token. All calls are best-effort from the caller's point of view.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger

	clientID     string
	clientSecret string
	refreshToken string
	calendarID   string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSecret,
		refreshToken: cfg.GoogleRefreshToken,
		calendarID:   cfg.GoogleCalendarID,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("refresh_token", c.refreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("token exchange failed: %d %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}

	c.accessToken = tr.AccessToken
	// refresh one minute early
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn-60) * time.Second)

	return c.accessToken, nil
}

// CreateEvent inserts the event and returns the remote event ID.
func (c *Client) CreateEvent(ctx context.Context, ev Event) (string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf(eventsURLFmt, url.PathEscape(c.calendarID))

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("event insert failed: %d %s", resp.StatusCode, string(body))
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}

	c.logger.Info("calendar event created",
		zap.String("event_id", created.ID),
		zap.String("summary", ev.Summary),
	)

	return created.ID, nil
}
