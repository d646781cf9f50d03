// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
)

type NotificationService struct {
	sender string
}

func NewNotificationService(sender string) *NotificationService {
	return &NotificationService{sender: sender}
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("missing recipient for %q", subject)
	}
	// No mail transport is configured; delivery is logged.
	logger.Info("Sending email",
		zap.String("from", n.sender),
		zap.String("recipient", recipient),
		zap.String("subject", subject))
	return nil
}

// SendVerificationCode mails the second sign-in factor.
func (n *NotificationService) SendVerificationCode(ctx context.Context, user model.User, code string) error {
	body := fmt.Sprintf("Hello %s,\n\nyour verification code is %s.", user.Username, code)
	return n.SendEmail(ctx, user.Email, "Verification code", body)
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	logger.Info("Notifying user change",
		zap.String("changeType", changeType),
		zap.String("userID", user.ID),
		zap.String("userName", user.Username))
	return nil
}

func (n *NotificationService) NotifyRoleChange(ctx context.Context, changeType string, role model.Role) error {
	logger.Info("Notifying role change",
		zap.String("changeType", changeType),
		zap.String("roleID", role.ID),
		zap.String("roleName", role.Name))
	return nil
}

func (n *NotificationService) NotifyGroupChange(ctx context.Context, changeType string, group model.Group) error {
	switch changeType {
	case "created", "updated":
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	logger.Info("Notifying group change",
		zap.String("changeType", changeType),
		zap.String("groupID", group.ID),
		zap.String("groupName", group.Name),
		zap.Strings("affectedUserIDs", group.UserIDs))
	return nil
}
