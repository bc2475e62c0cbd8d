package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// DefaultTimeout bounds one improvement call; nothing upstream sets one.
const DefaultTimeout = 30 * time.Second

// ImprovePath is the proxy endpoint served by cmd/server.
const ImprovePath = "/api/improve-text"

// Client calls the improvement service (the backend proxy) and returns the
// improved text. It never retries: every failure is reported once.
type Client struct {
	BaseURL string
	http    *resty.Client
}

func NewClient() *Client {
	base := os.Getenv("IMPROVE_SERVICE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return NewClientWithHTTP(base, &http.Client{Timeout: DefaultTimeout})
}

// NewClientWithHTTP lets callers supply their own transport.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	rc := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetLogger(slogLogger{slog.Default()})
	return &Client{BaseURL: baseURL, http: rc}
}

type improveRequest struct {
	Text      string    `json:"text"`
	FieldType FieldType `json:"fieldType"`
}

// Improve sends text and its field type to the service. Blank text fails with
// a *ValidationError without touching the network.
func (c *Client) Improve(ctx context.Context, text string, fieldType FieldType) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", &ValidationError{Field: "text", Message: "text required"}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(improveRequest{Text: text, FieldType: fieldType}).
		Post(ImprovePath)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		msg := gjson.GetBytes(body, "error").String()
		if msg == "" {
			msg = resp.Status()
		}
		if msg == "" {
			msg = fmt.Sprintf("%d %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
		}
		return "", &ServiceError{StatusCode: resp.StatusCode(), Message: msg}
	}

	improved := strings.TrimSpace(gjson.GetBytes(body, "improvedText").String())
	if improved == "" {
		return "", ErrNoUsableText
	}
	return improved, nil
}

// slogLogger routes resty's own diagnostics into slog.
type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Errorf(format string, v ...interface{}) {
	s.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "ai.client")
}

func (s slogLogger) Warnf(format string, v ...interface{}) {
	s.l.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "ai.client")
}

func (s slogLogger) Debugf(format string, v ...interface{}) {
	s.l.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), "component", "ai.client")
}
