package state_manager

import (
	"context"

	"servismotor-bot/internal/storage/redis"
)

type Storage interface {
	GetSessionState(ctx context.Context, chatID int64) (*redis.SessionState, error)
	SetSessionState(ctx context.Context, chatID int64, state *redis.SessionState) error
	DropSessionState(ctx context.Context, chatID int64) error
}

var (
	_ Storage = (*redis.Storage)(nil)
	_ Storage = (*MemoryStorage)(nil)
)
