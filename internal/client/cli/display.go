package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/kudos/internal/client/render"
)

// fallbackMessage stands in for the page's static fallback content: shown
// whenever the visible set cannot be loaded or is empty, so the wall never
// goes blank.
const fallbackMessage = "No testimonials to show right now. Check back soon!"

// List prints the published testimonials, newest first, with quotes cut to
// the card budget. The set is served from the display cache when fresh.
func (a *App) List(ctx context.Context) error {
	visible, err := a.cache.Visible(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not load testimonials", "error", err.Error())
		fmt.Fprintln(a.out, fallbackMessage)
		return err
	}

	a.mu.Lock()
	a.visible = visible
	a.mu.Unlock()

	if len(visible) == 0 {
		fmt.Fprintln(a.out, fallbackMessage)
		return nil
	}

	for i, r := range visible {
		fmt.Fprintf(a.out, "%2d. %q\n", i+1, render.TruncateQuote(r.Quote))
		fmt.Fprintf(a.out, "    %s, %s (%s)\n", r.Author, r.Role, render.FormatMonthYear(r.Timestamp))
	}
	return nil
}

// Show expands entry n from the last listing: the full quote, author and
// the month the testimonial was recorded.
func (a *App) Show(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: show <n>")
		return err
	}

	a.mu.Lock()
	visible := a.visible
	a.mu.Unlock()

	if visible == nil {
		if err := a.List(ctx); err != nil {
			return err
		}
		a.mu.Lock()
		visible = a.visible
		a.mu.Unlock()
	}

	if n < 1 || n > len(visible) {
		fmt.Fprintf(a.out, "No entry %d; run 'list' to see what is available.\n", n)
		return fmt.Errorf("entry %d out of range", n)
	}

	r := visible[n-1]
	fmt.Fprintf(a.out, "%q\n", r.Quote)
	fmt.Fprintf(a.out, "%s, %s\n", r.Author, r.Role)
	fmt.Fprintln(a.out, render.FormatMonthYear(r.Timestamp))
	return nil
}

// Render prints the page markup for the visible set: the card list plus the
// detail view of the first entry. An empty set prints nothing so the page's
// fallback markup stays in place.
func (a *App) Render(ctx context.Context) error {
	visible, err := a.cache.Visible(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not load testimonials", "error", err.Error())
		fmt.Fprintln(a.out, fallbackMessage)
		return err
	}

	markup, err := render.Cards(visible)
	if err != nil {
		return err
	}
	if markup == "" {
		fmt.Fprintln(a.out, fallbackMessage)
		return nil
	}

	fmt.Fprint(a.out, markup)
	return nil
}
