// service/action_history_service.go
package service

import (
	"context"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	helper_util "github.com/dev-mohitbeniwal/backoffice/util/helper"
)

type IActionHistoryService interface {
	ListActionsHistory(ctx context.Context, username string, pageSize, pageIndex int) (*audit.ActionHistoryPage, error)
}

type ActionHistoryService struct {
	auditService audit.Service
}

var _ IActionHistoryService = &ActionHistoryService{}

func NewActionHistoryService(auditService audit.Service) *ActionHistoryService {
	return &ActionHistoryService{auditService: auditService}
}

// ListActionsHistory filters by the acting user's name and returns one clamped page.
func (s *ActionHistoryService) ListActionsHistory(ctx context.Context, username string, pageSize, pageIndex int) (*audit.ActionHistoryPage, error) {
	total, err := s.auditService.CountActionsHistory(ctx, username)
	if err != nil {
		return nil, err
	}

	page := helper_util.GetPageSizeAndPageIndex(int(total), pageSize, pageIndex)
	sl := helper_util.GetSkipAndLimit(page)

	records, err := s.auditService.ListActionsHistory(ctx, audit.ActionHistoryQuery{
		SearchText: username,
		Skip:       sl.Skip,
		Limit:      sl.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &audit.ActionHistoryPage{
		ActionsHistory: records,
		Total:          total,
		PageSize:       page.PageSize,
		PageIndex:      page.PageIndex,
	}, nil
}
