// Package form posts a finished submission to the external form endpoint
// and notifies the intake relay so moderation gets triggered. The form
// endpoint is authoritative for success; the relay notification is
// best-effort.
package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/kudos/internal/logging"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// ErrSubmitFailed marks a rejected or unreachable form endpoint. The caller
// keeps the draft so the user can retry without losing input.
var ErrSubmitFailed = errors.New("submission failed")

// Sender posts submissions.
type Sender struct {
	formEndpoint  string
	relayEndpoint string
	client        *http.Client
	logger        logging.Logger
}

func NewSender(formEndpoint, relayEndpoint string, logger logging.Logger) *Sender {
	return &Sender{
		formEndpoint:  formEndpoint,
		relayEndpoint: relayEndpoint,
		client:        &http.Client{Timeout: 15 * time.Second},
		logger:        logger,
	}
}

// Submit posts the payload form-encoded to the form endpoint. On acceptance
// it additionally notifies the relay; a failed notification is logged and
// swallowed since the form endpoint already holds the submission.
func (s *Sender) Submit(ctx context.Context, p testimonial.SubmissionPayload) error {
	if err := s.postForm(ctx, p); err != nil {
		return err
	}

	if err := s.notifyRelay(ctx, p); err != nil {
		s.logger.Warn(ctx, "relay notification failed", "error", err.Error())
	}
	return nil
}

func (s *Sender) postForm(ctx context.Context, p testimonial.SubmissionPayload) error {
	values := url.Values{}
	values.Set("testimonial", p.Testimonial)
	values.Set("name", p.Name)
	values.Set("title", p.Title)
	if p.Company != "" {
		values.Set("company", p.Company)
	}
	if p.Email != "" {
		values.Set("email", p.Email)
	}
	values.Set("submission_mode", p.SubmissionMode)
	if p.Template != "" {
		values.Set("template", p.Template)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.formEndpoint,
		strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrSubmitFailed, endpointErrors(resp.Body))
	}
	return nil
}

// endpointErrors extracts the endpoint's field error messages when the
// response carries them, falling back to a generic phrase.
func endpointErrors(body io.Reader) string {
	var parsed struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(body).Decode(&parsed); err == nil && len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}
		return strings.Join(msgs, ", ")
	}
	return "the form endpoint rejected the submission"
}

func (s *Sender) notifyRelay(ctx context.Context, p testimonial.SubmissionPayload) error {
	if s.relayEndpoint == "" {
		return nil
	}

	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.relayEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("relay answered %s: %s", resp.Status, string(b))
	}
	return nil
}
