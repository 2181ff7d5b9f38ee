// Package draft implements autosave and restore of in-progress form input.
// There is a single draft slot, overwritten on every save; only a
// successful submission clears it.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/dmitrijs2005/kudos/internal/client/localdb"
)

// DefaultInterval is the autosave cadence. Saves are wall-clock-driven, not
// change-triggered, so identical snapshots are written repeatedly.
const DefaultInterval = 5 * time.Second

// Draft is one autosaved snapshot of the form.
type Draft struct {
	Mode      string            `json:"mode"`
	Data      map[string]string `json:"data"`
	Timestamp time.Time         `json:"timestamp"`
}

// Manager owns the draft slot.
type Manager struct {
	slots *localdb.Slots
	now   func() time.Time
}

func NewManager(slots *localdb.Slots) *Manager {
	return &Manager{slots: slots, now: time.Now}
}

// Save overwrites the draft slot with the given mode and field values.
func (m *Manager) Save(ctx context.Context, mode string, data map[string]string) error {
	d := Draft{Mode: mode, Data: maps.Clone(data), Timestamp: m.now()}

	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return m.slots.Put(ctx, localdb.DraftKey, raw)
}

// Load returns the saved draft, or nil when no draft exists.
func (m *Manager) Load(ctx context.Context) (*Draft, error) {
	raw, err := m.slots.Get(ctx, localdb.DraftKey)
	if err != nil {
		if errors.Is(err, localdb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse draft: %w", err)
	}
	return &d, nil
}

// Clear deletes the draft slot. Called only after a successful submission;
// declining a restore keeps the draft for a future session.
func (m *Manager) Clear(ctx context.Context) error {
	return m.slots.Delete(ctx, localdb.DraftKey)
}

// StartAutosave snapshots the form every interval until ctx is done.
// snapshot is called on the caller's current state; a failed save is
// dropped, the next tick retries anyway.
//
// Patterned on the online-status watcher loop: ticker plus ctx.Done.
func (m *Manager) StartAutosave(ctx context.Context, interval time.Duration, snapshot func() (string, map[string]string)) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mode, data := snapshot()
			_ = m.Save(ctx, mode, data)
		case <-ctx.Done():
			return
		}
	}
}

// CheckboxChecked interprets a restored value for a checkbox-type field:
// checked iff the recorded value is the literal "on".
func CheckboxChecked(value string) bool {
	return value == "on"
}
