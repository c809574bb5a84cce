package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redisclient "servismotor-bot/pkg/redis"
)

// Storage keeps session state as JSON. Every save refreshes the client TTL,
// so an idle session expires on its own.
type Storage struct {
	client *redisclient.Client
}

func New(client *redisclient.Client) *Storage {
	return &Storage{client: client}
}

func (s *Storage) SetSessionState(ctx context.Context, chatID int64, state *SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	return s.client.Set(ctx, buildStateKey(chatID), data, 0)
}

// GetSessionState returns an empty state when the chat has none.
func (s *Storage) GetSessionState(ctx context.Context, chatID int64) (*SessionState, error) {
	data, err := s.client.Get(ctx, buildStateKey(chatID))
	if errors.Is(err, redisclient.ErrNotFound) {
		return &SessionState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal failure: %w", err)
	}
	return &state, nil
}

func (s *Storage) DropSessionState(ctx context.Context, chatID int64) error {
	return s.client.Del(ctx, buildStateKey(chatID))
}

func buildStateKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}
