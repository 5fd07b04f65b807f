package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"swiftaid/internal/domain"
	"swiftaid/pkg/e"
)

// Ack is the {success, message} envelope every mutating endpoint of the
// SwiftAid core API answers with. Success=false is a business failure:
// the message is surfaced to the operator verbatim, nothing is assumed
// about server state.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusError is a non-2xx answer. 409 unwraps to e.ErrConflict so the
// console can tell a lost race from an ordinary rejection.
type StatusError struct {
	Code    int
	Message string
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", s.Code, s.Message)
}

func (s *StatusError) Unwrap() error {
	switch s.Code {
	case http.StatusConflict:
		return e.ErrConflict
	case http.StatusNotFound:
		return e.ErrNotFound
	default:
		return e.ErrUpstream
	}
}

type Client struct {
	base   string
	hc     *http.Client
	logger *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (Ack, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"hospital_name": req.HospitalName,
		"phone":         req.Phone,
		"location":      req.Location,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return Ack{}, e.Wrap("upstream.UpdateProfile: write field", err)
		}
	}
	if err := mw.Close(); err != nil {
		return Ack{}, e.Wrap("upstream.UpdateProfile: close form", err)
	}
	return c.post(ctx, "/update_profile", mw.FormDataContentType(), &body)
}

func (c *Client) AddAmbulance(ctx context.Context, req domain.AddAmbulanceRequest) (Ack, error) {
	return c.postJSON(ctx, "/add_ambulance", req)
}

func (c *Client) Ambulances(ctx context.Context) ([]domain.Ambulance, error) {
	var out struct {
		Success    bool               `json:"success"`
		Message    string             `json:"message"`
		Ambulances []domain.Ambulance `json:"ambulances"`
	}
	if err := c.getJSON(ctx, "/ambulances", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, e.Wrap("upstream.Ambulances", &StatusError{Code: http.StatusOK, Message: out.Message})
	}
	return out.Ambulances, nil
}

func (c *Client) UpdateAmbulanceStatus(ctx context.Context, ambulanceID string, status domain.AmbulanceStatus) (Ack, error) {
	return c.postJSON(ctx, "/update_ambulance_status", map[string]any{
		"ambulance_id": ambulanceID,
		"status":       status,
	})
}

func (c *Client) UpdateCaseStatus(ctx context.Context, incidentID string, status domain.CaseStatus) (Ack, error) {
	return c.postJSON(ctx, "/update_case_status", map[string]any{
		"incident_id": incidentID,
		"status":      status,
	})
}

func (c *Client) DeleteCaseStatus(ctx context.Context, incidentID string) (Ack, error) {
	return c.postJSON(ctx, "/delete_case_status", map[string]any{"incident_id": incidentID})
}

func (c *Client) DeleteIncident(ctx context.Context, incidentID string) (Ack, error) {
	return c.postJSON(ctx, "/delete_incident", map[string]any{"incident_id": incidentID})
}

func (c *Client) AssignAmbulance(ctx context.Context, incidentID, ambulanceID string) (Ack, error) {
	return c.postJSON(ctx, "/assign_ambulance", map[string]any{
		"incident_id":  incidentID,
		"ambulance_id": ambulanceID,
	})
}

func (c *Client) ResolvedCases(ctx context.Context) ([]domain.ResolvedCase, error) {
	var out struct {
		Success       bool                  `json:"success"`
		Message       string                `json:"message"`
		ResolvedCases []domain.ResolvedCase `json:"resolved_cases"`
	}
	if err := c.getJSON(ctx, "/resolved_cases", &out); err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, e.Wrap("upstream.ResolvedCases", &StatusError{Code: http.StatusOK, Message: out.Message})
	}
	return out.ResolvedCases, nil
}

func (c *Client) DeleteResolvedCase(ctx context.Context, caseID string) (Ack, error) {
	return c.postJSON(ctx, "/delete_resolved_case", map[string]any{"case_id": caseID})
}

// DownloadResolvedCaseURL is a full browser navigation target, the
// document is never fetched through the console.
func (c *Client) DownloadResolvedCaseURL(caseID string) string {
	return c.base + "/download_resolved_case/" + url.PathEscape(caseID)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (Ack, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Ack{}, e.Wrap("upstream: marshal "+path, err)
	}
	return c.post(ctx, path, "application/json", bytes.NewReader(b))
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) (Ack, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, body)
	if err != nil {
		return Ack{}, e.Wrap("upstream: build request "+path, err)
	}
	req.Header.Set("Content-Type", contentType)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return Ack{}, c.transportErr(ctx, path, err)
	}
	defer resp.Body.Close()

	var ack Ack
	decodeErr := json.NewDecoder(resp.Body).Decode(&ack)

	c.logger.Debug("upstream call",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Ack{}, e.Wrap("upstream: "+path, &StatusError{Code: resp.StatusCode, Message: ack.Message})
	}
	if decodeErr != nil {
		return Ack{}, c.transportErr(ctx, path, decodeErr)
	}
	return ack, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return e.Wrap("upstream: build request "+path, err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return c.transportErr(ctx, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ack Ack
		_ = json.NewDecoder(resp.Body).Decode(&ack)
		return e.Wrap("upstream: "+path, &StatusError{Code: resp.StatusCode, Message: ack.Message})
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.transportErr(ctx, path, err)
	}
	return nil
}

func (c *Client) transportErr(ctx context.Context, path string, err error) error {
	c.logger.Warn("upstream transport failure",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
	if ctx.Err() != nil {
		return e.WrapError(ctx, "upstream: "+path, ctx.Err())
	}
	return fmt.Errorf("upstream: %s: %w: %v", path, e.ErrTransport, err)
}
