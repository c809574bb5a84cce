package state_manager

import (
	"context"
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/storage/redis"
)

func TestLoadFreshSession(t *testing.T) {
	c := qt.New(t)
	m := New(NewMemoryStorage(time.Hour), catalog.Default())

	d, err := m.Load(context.Background(), 1)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Step, qt.Equals, "")
	c.Assert(d.PendingPartName, qt.Equals, "")
	c.Assert(d.Session.Service().ID, qt.Equals, "ringan")
	c.Assert(d.Session.Parts(), qt.HasLen, 0)
}

func TestSaveAndLoad(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	m := New(NewMemoryStorage(time.Hour), catalog.Default())

	d, err := m.Load(ctx, 9)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Session.SelectService("injeksi"), qt.IsNil)
	_, err = d.Session.AddPart("Filter Udara", "65000")
	c.Assert(err, qt.IsNil)
	d.Step = "add_part_price"
	d.PendingPartName = "Busi"
	c.Assert(m.Save(ctx, 9, d), qt.IsNil)

	got, err := m.Load(ctx, 9)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Step, qt.Equals, "add_part_price")
	c.Assert(got.PendingPartName, qt.Equals, "Busi")
	c.Assert(got.Session.Snapshot(), qt.DeepEquals, d.Session.Snapshot())

	other, err := m.Load(ctx, 10)
	c.Assert(err, qt.IsNil)
	c.Assert(other.Session.Parts(), qt.HasLen, 0)
}

func TestReset(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	m := New(NewMemoryStorage(time.Hour), catalog.Default())

	d, _ := m.Load(ctx, 3)
	d.Session.AddPart("Oli", "55000")
	c.Assert(m.Save(ctx, 3, d), qt.IsNil)
	c.Assert(m.Reset(ctx, 3), qt.IsNil)

	d, err := m.Load(ctx, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Session.Parts(), qt.HasLen, 0)
}

func TestMemoryStorageExpires(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	s := NewMemoryStorage(time.Hour)
	s.now = func() time.Time { return now }
	c.Assert(s.SetSessionState(ctx, 1, &redis.SessionState{Step: "idle"}), qt.IsNil)

	now = now.Add(59 * time.Minute)
	got, err := s.GetSessionState(ctx, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Step, qt.Equals, "idle")

	now = now.Add(time.Minute)
	got, err = s.GetSessionState(ctx, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Step, qt.Equals, "")
}

func TestMemoryStorageDropsAbandonedChats(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	s := NewMemoryStorage(time.Hour)
	s.now = func() time.Time { return now }
	for chatID := int64(1); chatID <= 3; chatID++ {
		c.Assert(s.SetSessionState(ctx, chatID, &redis.SessionState{}), qt.IsNil)
	}
	c.Assert(s.entries, qt.HasLen, 3)

	now = now.Add(2 * time.Hour)
	c.Assert(s.SetSessionState(ctx, 4, &redis.SessionState{}), qt.IsNil)
	c.Assert(s.entries, qt.HasLen, 1)
	_, ok := s.entries[4]
	c.Assert(ok, qt.IsTrue)
}

type failingStorage struct{ err error }

func (f failingStorage) GetSessionState(context.Context, int64) (*redis.SessionState, error) {
	return nil, f.err
}

func (f failingStorage) SetSessionState(context.Context, int64, *redis.SessionState) error {
	return f.err
}

func (f failingStorage) DropSessionState(context.Context, int64) error {
	return f.err
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	boom := errors.New("connection refused")
	m := New(failingStorage{err: boom}, catalog.Default())

	_, err := m.Load(ctx, 1)
	c.Assert(err, qt.ErrorIs, boom)
	c.Assert(m.Save(ctx, 1, &Dialog{}), qt.ErrorIs, boom)
	c.Assert(m.Reset(ctx, 1), qt.ErrorIs, boom)
}
