package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// EventType is the repository-dispatch event name the moderation workflow
// listens for.
const EventType = "new-testimonial"

// EventPayload is the client_payload of a moderation-trigger event.
// Optional fields are pointers so absent values serialize as JSON null,
// which is what the moderation workflow expects. AutoApprove is always
// false: submissions are never auto-trusted.
type EventPayload struct {
	Testimonial    string  `json:"testimonial"`
	Name           string  `json:"name"`
	Title          string  `json:"title"`
	Company        *string `json:"company"`
	Email          *string `json:"email"`
	SubmissionMode string  `json:"submission_mode"`
	Template       *string `json:"template"`
	AutoApprove    bool    `json:"auto_approve"`
}

// Event is the repository-dispatch request body.
type Event struct {
	EventType     string       `json:"event_type"`
	ClientPayload EventPayload `json:"client_payload"`
}

// NewEvent builds a moderation-trigger event from a validated submission,
// defaulting company/email/template to null and the mode to "Unknown".
func NewEvent(p testimonial.SubmissionPayload) Event {
	mode := p.SubmissionMode
	if mode == "" {
		mode = testimonial.ModeUnknown
	}

	return Event{
		EventType: EventType,
		ClientPayload: EventPayload{
			Testimonial:    p.Testimonial,
			Name:           p.Name,
			Title:          p.Title,
			Company:        nullable(p.Company),
			Email:          nullable(p.Email),
			SubmissionMode: mode,
			Template:       nullable(p.Template),
			AutoApprove:    false,
		},
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UpstreamError carries the status and body of a rejected dispatch call so
// the handler can log the detail while clients get a generic message.
type UpstreamError struct {
	Status string
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("dispatch rejected: %s: %s", e.Status, e.Body)
}

// Dispatcher posts moderation-trigger events to the repository-dispatch
// endpoint.
type Dispatcher struct {
	baseURL string
	token   string
	repo    string
	client  *http.Client
}

func NewDispatcher(baseURL, token, repo string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		baseURL: baseURL,
		token:   token,
		repo:    repo,
		client:  &http.Client{Timeout: timeout},
	}
}

// Configured reports whether both the credential and the target repository
// are present. Without them no forwarding is attempted.
func (d *Dispatcher) Configured() bool {
	return d.token != "" && d.repo != ""
}

// Send posts the event. Any non-2xx answer is returned as *UpstreamError
// with the response body attached.
func (d *Dispatcher) Send(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/dispatches", d.baseURL, d.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build dispatch request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{Status: resp.Status, Body: string(b)}
	}
	return nil
}
