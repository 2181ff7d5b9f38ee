package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/kudos/internal/client/localdb"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// Submit validates the composed form, backs it up to the last-submission
// slot, and posts it. On acceptance the draft is cleared and the form reset;
// on rejection the draft stays so the user can fix and retry.
func (a *App) Submit(ctx context.Context) error {
	payload := a.buildPayload()

	if payload.MissingRequired() {
		fmt.Fprintln(a.out, "Testimonial, name, and title are required. Run 'fill' to complete them.")
		return fmt.Errorf("missing required fields")
	}

	a.backupLastSubmission(ctx, payload)

	if err := a.sender.Submit(ctx, payload); err != nil {
		fmt.Fprintf(a.out, "Submission failed: %v\n", err)
		fmt.Fprintln(a.out, "Your draft is saved. Fix the issue and run 'submit' again.")
		return err
	}

	if err := a.drafts.Clear(ctx); err != nil {
		a.logger.Warn(ctx, "could not clear draft", "error", err.Error())
	}

	a.mu.Lock()
	a.values = map[string]string{}
	a.mu.Unlock()

	fmt.Fprintln(a.out, "Thank you! Your testimonial was submitted for review.")
	return nil
}

func (a *App) buildPayload() testimonial.SubmissionPayload {
	a.mu.Lock()
	defer a.mu.Unlock()

	p := testimonial.SubmissionPayload{
		Testimonial: a.composeQuoteLocked(),
		Name:        a.values["name"],
		Title:       a.values["title"],
		Company:     a.values["company"],
		Email:       a.values["email"],
	}

	switch a.mode {
	case modeMadLibs:
		p.SubmissionMode = testimonial.ModeMadLibs
		p.Template = a.templateID
	default:
		p.SubmissionMode = testimonial.ModeFreeForm
	}
	return p
}

// backupLastSubmission keeps a copy of the outgoing payload in its own slot.
// Best-effort: a failed backup never blocks the submission itself.
func (a *App) backupLastSubmission(ctx context.Context, p testimonial.SubmissionPayload) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := a.slots.Put(ctx, localdb.LastSubmissionKey, raw); err != nil {
		a.logger.Warn(ctx, "could not back up submission", "error", err.Error())
	}
}
