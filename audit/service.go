// audit/service.go
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventActionRecorded is published after a record is persisted.
const EventActionRecorded = "action.recorded"

type Service interface {
	RecordAction(ctx context.Context, userID, action string, data interface{}) error
	ListActionsHistory(ctx context.Context, query ActionHistoryQuery) ([]*ActionHistory, error)
	CountActionsHistory(ctx context.Context, searchText string) (int64, error)
}

// Publisher is satisfied by util.EventBus.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

type service struct {
	repo      Repository
	publisher Publisher
}

func NewService(repo Repository, publisher Publisher) Service {
	return &service{repo: repo, publisher: publisher}
}

func (s *service) RecordAction(ctx context.Context, userID, action string, data interface{}) error {
	record := ActionHistory{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordAction(ctx, record); err != nil {
		return err
	}
	if s.publisher != nil {
		s.publisher.Publish(context.WithoutCancel(ctx), EventActionRecorded, record)
	}
	return nil
}

func (s *service) ListActionsHistory(ctx context.Context, query ActionHistoryQuery) ([]*ActionHistory, error) {
	return s.repo.ListActionsHistory(ctx, query)
}

func (s *service) CountActionsHistory(ctx context.Context, searchText string) (int64, error) {
	return s.repo.CountActionsHistory(ctx, searchText)
}
