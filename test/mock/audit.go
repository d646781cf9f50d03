// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/backoffice/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) RecordAction(ctx context.Context, userID, action string, data interface{}) error {
	args := m.Called(ctx, userID, action, data)
	return args.Error(0)
}

func (m *MockAuditService) ListActionsHistory(ctx context.Context, query audit.ActionHistoryQuery) ([]*audit.ActionHistory, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.ActionHistory), args.Error(1)
}

func (m *MockAuditService) CountActionsHistory(ctx context.Context, searchText string) (int64, error) {
	args := m.Called(ctx, searchText)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditRepository is a mock implementation of audit.Repository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) RecordAction(ctx context.Context, record audit.ActionHistory) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepository) ListActionsHistory(ctx context.Context, query audit.ActionHistoryQuery) ([]*audit.ActionHistory, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.ActionHistory), args.Error(1)
}

func (m *MockAuditRepository) CountActionsHistory(ctx context.Context, searchText string) (int64, error) {
	args := m.Called(ctx, searchText)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	m.Called(ctx, eventType, payload)
}
