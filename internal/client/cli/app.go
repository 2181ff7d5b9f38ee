package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"maps"
	"os"
	"sync"

	"github.com/dmitrijs2005/kudos/internal/client/cache"
	"github.com/dmitrijs2005/kudos/internal/client/config"
	"github.com/dmitrijs2005/kudos/internal/client/draft"
	"github.com/dmitrijs2005/kudos/internal/client/form"
	"github.com/dmitrijs2005/kudos/internal/client/localdb"
	"github.com/dmitrijs2005/kudos/internal/client/madlibs"
	"github.com/dmitrijs2005/kudos/internal/logging"
	"github.com/dmitrijs2005/kudos/internal/promptx"
	"github.com/dmitrijs2005/kudos/internal/testimonial"

	_ "modernc.org/sqlite"
)

// Composition modes as typed at the prompt.
const (
	modeFreeForm = "freeform"
	modeMadLibs  = "madlibs"
)

// templateSlotKey is where the selected template id rides inside the draft
// data, next to the field values.
const templateSlotKey = "template"

type App struct {
	config *config.Config
	db     *sql.DB
	slots  *localdb.Slots
	cache  *cache.Cache
	drafts *draft.Manager
	sender *form.Sender
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// mu guards the form state below; the autosave goroutine snapshots it
	// while the REPL mutates it.
	mu         sync.Mutex
	mode       string
	templateID string
	values     map[string]string

	// visible is the last listed set, so "show <n>" can index into it.
	visible []testimonial.Record
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := localdb.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	slots := localdb.NewSlots(db)
	logger := logging.NewJSONLogger()

	return &App{
		config:     c,
		db:         db,
		slots:      slots,
		cache:      cache.New(slots, c.StoreURL, c.CacheTTL),
		drafts:     draft.NewManager(slots),
		sender:     form.NewSender(c.FormEndpoint, c.RelayEndpoint, logger),
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		mode:       modeFreeForm,
		templateID: madlibs.DefaultID,
		values:     map[string]string{},
	}, nil
}

// Run restores any saved draft, starts the autosave watcher, and hands
// control to the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.restoreDraft(ctx)

	go a.drafts.StartAutosave(ctx, a.config.AutosaveInterval, a.snapshot)

	fmt.Fprintln(a.out, "Kudos client (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode == modeMadLibs {
		return fmt.Sprintf("(%s:%s)", a.mode, a.templateID)
	}
	return fmt.Sprintf("(%s)", a.mode)
}

// restoreDraft offers to bring back the last autosaved form. Declining keeps
// the draft in place; only a successful submission clears it.
func (a *App) restoreDraft(ctx context.Context) {
	d, err := a.drafts.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not load draft", "error", err.Error())
		return
	}
	if d == nil || len(d.Data) == 0 {
		return
	}

	restore, err := promptx.GetYesNo(a.reader, "You have a saved draft. Would you like to restore it?", a.out)
	if err != nil || !restore {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if d.Mode == modeFreeForm || d.Mode == modeMadLibs {
		a.mode = d.Mode
	}
	a.values = maps.Clone(d.Data)
	if id := a.values[templateSlotKey]; id != "" {
		if _, ok := madlibs.ByID(id); ok {
			a.templateID = id
		}
	}
	fmt.Fprintln(a.out, "Draft restored.")
}

// snapshot captures the current form state for the autosave watcher.
func (a *App) snapshot() (string, map[string]string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	data := maps.Clone(a.values)
	if data == nil {
		data = map[string]string{}
	}
	data[templateSlotKey] = a.templateID
	return a.mode, data
}
