package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/kudos/internal/client/madlibs"
	"github.com/dmitrijs2005/kudos/internal/promptx"
	"github.com/dmitrijs2005/kudos/internal/testimonial"
)

// SetMode switches between free-form and fill-in-the-blank composition.
// Field values entered so far are kept, so switching back loses nothing.
func (a *App) SetMode(arg string) error {
	if arg != modeFreeForm && arg != modeMadLibs {
		fmt.Fprintln(a.out, "Usage: mode <freeform|madlibs>")
		return fmt.Errorf("unknown mode %q", arg)
	}

	a.mu.Lock()
	a.mode = arg
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Switched to %s mode.\n", arg)
	if arg == modeMadLibs {
		a.printTemplates()
	}
	return nil
}

// SetTemplate picks a fill-in-the-blank template and switches to madlibs
// mode if not there already.
func (a *App) SetTemplate(arg string) error {
	t, ok := madlibs.ByID(arg)
	if !ok {
		a.printTemplates()
		return fmt.Errorf("unknown template %q", arg)
	}

	a.mu.Lock()
	a.templateID = t.ID
	a.mode = modeMadLibs
	a.mu.Unlock()

	fmt.Fprintf(a.out, "Template %s selected. Run 'fill' to complete the blanks.\n", t.ID)
	return nil
}

func (a *App) printTemplates() {
	fmt.Fprintln(a.out, "Available templates:")
	for _, t := range madlibs.Templates() {
		fmt.Fprintf(a.out, "  %s: %s\n", t.ID, t.Generate(nil))
	}
}

// Fill prompts for the testimonial content (per the current mode) and the
// author fields, then saves a draft right away so nothing is lost before
// the next autosave tick.
func (a *App) Fill(ctx context.Context) error {
	a.mu.Lock()
	mode := a.mode
	templateID := a.templateID
	a.mu.Unlock()

	entered := map[string]string{}

	if mode == modeMadLibs {
		t, ok := madlibs.ByID(templateID)
		if !ok {
			fmt.Fprintln(a.out, "Pick a template first: template <id>")
			return fmt.Errorf("no template selected")
		}
		for _, f := range t.Fields {
			label := f.Label
			if label == "" {
				label = f.Name
			}
			v, err := promptx.GetSimpleText(a.reader, fmt.Sprintf("%s (%s)", label, f.Placeholder), a.out)
			if err != nil {
				return err
			}
			entered[f.Name] = v
		}
		fmt.Fprintf(a.out, "Preview: %q\n", t.Generate(entered))
	} else {
		text, err := promptx.GetMultiline(a.reader, "Your testimonial", a.out)
		if err != nil {
			return err
		}
		entered["testimonial"] = text
		n := len([]rune(text))
		fmt.Fprintf(a.out, "%d characters. %s\n", n, madlibs.Encouragement(n))
	}

	prompts := []struct{ key, text string }{
		{"name", "Your name"},
		{"title", "Your title"},
		{"company", "Company (optional)"},
		{"email", "Email (optional, never displayed)"},
	}
	for _, p := range prompts {
		v, err := promptx.GetSimpleText(a.reader, p.text, a.out)
		if err != nil {
			return err
		}
		entered[p.key] = v
	}

	a.mu.Lock()
	for k, v := range entered {
		a.values[k] = v
	}
	a.mu.Unlock()

	mode, data := a.snapshot()
	if err := a.drafts.Save(ctx, mode, data); err != nil {
		a.logger.Warn(ctx, "could not save draft", "error", err.Error())
	}

	fmt.Fprintln(a.out, "Got it. Run 'preview' to see the result, 'submit' to send it.")
	return nil
}

// Preview prints the testimonial as it would be submitted.
func (a *App) Preview(ctx context.Context) error {
	quote := a.composeQuote()
	if quote == "" {
		fmt.Fprintln(a.out, "Nothing to preview yet; run 'fill' first.")
		return nil
	}

	a.mu.Lock()
	name := a.values["name"]
	title := a.values["title"]
	company := a.values["company"]
	mode := a.mode
	a.mu.Unlock()

	fmt.Fprintf(a.out, "%q\n", quote)
	if name != "" {
		fmt.Fprintf(a.out, "%s, %s\n", name, testimonial.DeriveRole(title, company))
	}
	if mode == modeFreeForm {
		n := len([]rune(quote))
		fmt.Fprintf(a.out, "%d characters. %s\n", n, madlibs.Encouragement(n))
	}
	return nil
}

// composeQuote assembles the testimonial text for the current mode: the
// free-form text as typed, or the selected template with the blanks filled.
func (a *App) composeQuote() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.composeQuoteLocked()
}

// composeQuoteLocked is composeQuote for callers already holding a.mu.
func (a *App) composeQuoteLocked() string {
	if a.mode == modeMadLibs {
		t, ok := madlibs.ByID(a.templateID)
		if !ok {
			return ""
		}
		return t.Generate(a.values)
	}
	return a.values["testimonial"]
}
