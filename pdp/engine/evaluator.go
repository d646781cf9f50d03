package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
)

// PermissionEvaluator decides whether a permission set satisfies a requirement.
type PermissionEvaluator struct {
	// rootPermission, when granted, satisfies every requirement. Empty disables it.
	rootPermission string
}

func NewPermissionEvaluator() *PermissionEvaluator {
	return &PermissionEvaluator{rootPermission: model.PermissionRoot}
}

func NewStrictPermissionEvaluator() *PermissionEvaluator {
	return &PermissionEvaluator{}
}

// Evaluate allows only when every required permission is granted.
func (pe *PermissionEvaluator) Evaluate(ctx context.Context, userID string, granted pdp_model.PermissionSet, required []string) *pdp_model.AccessDecision {
	if pe.rootPermission != "" && granted.Has(pe.rootPermission) {
		return &pdp_model.AccessDecision{
			Effect: pdp_model.EffectAllow,
			Reason: "Allowed by root permission",
		}
	}

	var missing []string
	for _, p := range required {
		if !granted.Has(p) {
			missing = append(missing, p)
		}
	}

	if len(missing) > 0 {
		logger.Debug("Permission check denied",
			zap.String("userID", userID),
			zap.Strings("missing", missing))
		return &pdp_model.AccessDecision{
			Effect:  pdp_model.EffectDeny,
			Reason:  "Missing permission " + strings.Join(missing, ", "),
			Missing: missing,
		}
	}

	return &pdp_model.AccessDecision{
		Effect: pdp_model.EffectAllow,
		Reason: "All required permissions granted",
	}
}
