package state_manager

import (
	"context"
	"fmt"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/estimator"
	"servismotor-bot/internal/storage/redis"
)

// Dialog is the loaded state of one chat: the dialog step of the bot and the
// estimate session itself.
type Dialog struct {
	Step            string
	PendingPartName string
	Session         *estimator.Session
}

type SessionManager struct {
	storage Storage
	catalog *catalog.Catalog
}

func New(storage Storage, c *catalog.Catalog) *SessionManager {
	return &SessionManager{storage: storage, catalog: c}
}

// Load returns the chat's dialog. A chat without stored state gets a fresh
// session with the catalog defaults selected.
func (m *SessionManager) Load(ctx context.Context, chatID int64) (*Dialog, error) {
	state, err := m.storage.GetSessionState(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("storage.GetSessionState failed: %w", err)
	}

	d := &Dialog{Step: state.Step}
	if state.PendingPartName != nil {
		d.PendingPartName = *state.PendingPartName
	}
	if state.Estimate != nil {
		d.Session = estimator.Restore(m.catalog, *state.Estimate)
	} else {
		d.Session = estimator.New(m.catalog)
	}
	return d, nil
}

func (m *SessionManager) Save(ctx context.Context, chatID int64, d *Dialog) error {
	state := &redis.SessionState{Step: d.Step}
	if d.PendingPartName != "" {
		name := d.PendingPartName
		state.PendingPartName = &name
	}
	if d.Session != nil {
		snap := d.Session.Snapshot()
		state.Estimate = &snap
	}

	if err := m.storage.SetSessionState(ctx, chatID, state); err != nil {
		return fmt.Errorf("storage.SetSessionState failed: %w", err)
	}
	return nil
}

// Reset ends the chat's session. The next Load starts over.
func (m *SessionManager) Reset(ctx context.Context, chatID int64) error {
	if err := m.storage.DropSessionState(ctx, chatID); err != nil {
		return fmt.Errorf("storage.DropSessionState failed: %w", err)
	}
	return nil
}
