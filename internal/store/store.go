// Package store persists portal sessions across server restarts.
package store

import (
	"context"

	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// Store defines the persistence layer for portal sessions.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
