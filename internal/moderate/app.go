// Package moderate implements the interactive moderation tool: a
// single-operator process that reads a new testimonial from the terminal
// and appends it to the store with an assigned id and moderation flags.
package moderate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/kudos/internal/moderate/config"
	"github.com/dmitrijs2005/kudos/internal/promptx"
	"github.com/dmitrijs2005/kudos/internal/store"
)

// ErrMissingFields is returned when the operator leaves testimonial, name
// or title empty. Nothing is written in that case.
var ErrMissingFields = errors.New("testimonial, name, and title are required")

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App runs one interactive append against the store.
type App struct {
	store  *store.FileStore
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		store:  store.NewFileStore(c.StorePath),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// NewAppWith builds an App over explicit store and streams; tests use it to
// drive the prompts without a terminal.
func NewAppWith(s *store.FileStore, in io.Reader, out io.Writer) *App {
	return &App{store: s, reader: bufio.NewReader(in), out: out}
}

// Run gathers the six fields, validates, appends and reports the result.
// It fails before touching the store on empty required fields and aborts
// without writing when the store is unparseable.
func (a *App) Run(ctx context.Context) error {
	if isTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(a.out, "Add New Testimonial")
		fmt.Fprintln(a.out)
	}

	quote, err := promptx.GetMultiline(a.reader, "Testimonial text:", a.out)
	if err != nil {
		return err
	}
	name, err := promptx.GetSimpleText(a.reader, "Author name:", a.out)
	if err != nil {
		return err
	}
	title, err := promptx.GetSimpleText(a.reader, "Author title:", a.out)
	if err != nil {
		return err
	}
	company, err := promptx.GetSimpleText(a.reader, "Company (optional, press Enter to skip):", a.out)
	if err != nil {
		return err
	}
	featured, err := promptx.GetYesNo(a.reader, "Feature on homepage?", a.out)
	if err != nil {
		return err
	}
	approved, err := promptx.GetYesNo(a.reader, "Approve and publish?", a.out)
	if err != nil {
		return err
	}

	if quote == "" || name == "" || title == "" {
		return ErrMissingFields
	}

	record, err := a.store.Append(ctx, quote, name, title, company, featured, approved)
	if err != nil {
		return err
	}

	status := "Pending"
	if record.Approved {
		status = "Approved"
	}
	featuredLabel := "No"
	if record.Featured {
		featuredLabel = "Yes"
	}

	fmt.Fprintf(a.out, "\nSuccessfully added testimonial #%d from %s\n", record.ID, record.Author)
	fmt.Fprintf(a.out, "   Status: %s\n", status)
	fmt.Fprintf(a.out, "   Featured: %s\n", featuredLabel)
	fmt.Fprintln(a.out, "\nNext steps:")
	fmt.Fprintln(a.out, "   1. Review the changes in the store file")
	fmt.Fprintln(a.out, "   2. git add the store file")
	fmt.Fprintf(a.out, "   3. git commit -m \"Add testimonial from %s\"\n", record.Author)
	fmt.Fprintln(a.out, "   4. git push")

	return nil
}
