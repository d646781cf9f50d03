package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/service"
	test_mock "github.com/dev-mohitbeniwal/backoffice/test/mock"
)

func TestActionHistoryService_ListActionsHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by username and pages", func(t *testing.T) {
		auditSvc := new(test_mock.MockAuditService)
		auditSvc.On("CountActionsHistory", ctx, "ali").Return(int64(12), nil)
		auditSvc.On("ListActionsHistory", ctx, audit.ActionHistoryQuery{SearchText: "ali", Skip: 10, Limit: 10}).
			Return([]*audit.ActionHistory{{ID: "a11"}, {ID: "a12"}}, nil)

		page, err := service.NewActionHistoryService(auditSvc).ListActionsHistory(ctx, "ali", 10, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(12), page.Total)
		assert.Equal(t, 1, page.PageIndex)
		assert.Len(t, page.ActionsHistory, 2)
	})

	t.Run("empty history", func(t *testing.T) {
		auditSvc := new(test_mock.MockAuditService)
		auditSvc.On("CountActionsHistory", ctx, "").Return(int64(0), nil)
		auditSvc.On("ListActionsHistory", ctx, mock.AnythingOfType("audit.ActionHistoryQuery")).
			Return([]*audit.ActionHistory{}, nil)

		page, err := service.NewActionHistoryService(auditSvc).ListActionsHistory(ctx, "", 0, 3)

		require.NoError(t, err)
		assert.Equal(t, 0, page.PageIndex)
		assert.Empty(t, page.ActionsHistory)
	})

	t.Run("count failure", func(t *testing.T) {
		auditSvc := new(test_mock.MockAuditService)
		auditSvc.On("CountActionsHistory", ctx, "").Return(int64(0), echo_errors.ErrDatabaseOperation)

		_, err := service.NewActionHistoryService(auditSvc).ListActionsHistory(ctx, "", 10, 0)

		assert.ErrorIs(t, err, echo_errors.ErrDatabaseOperation)
	})
}
