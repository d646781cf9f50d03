package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	pdp_model "github.com/dev-mohitbeniwal/backoffice/pdp/model"
)

// UserIDKey is the context key holding the authenticated caller. gin.Context.Value
// resolves string keys against values stored with c.Set.
const UserIDKey = "userID"

// PermissionResolver returns the effective permission set of a user.
type PermissionResolver interface {
	GetUserPermissions(ctx context.Context, userID string) (pdp_model.PermissionSet, error)
}

// Handler is any request/response operation that can sit behind the gate.
type Handler[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Gate rejects callers whose permission set lacks a required permission.
type Gate struct {
	evaluator *PermissionEvaluator
	resolver  PermissionResolver
}

func NewGate(evaluator *PermissionEvaluator, resolver PermissionResolver) *Gate {
	return &Gate{evaluator: evaluator, resolver: resolver}
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID) //nolint:staticcheck
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

// Check resolves the caller and its permissions. It returns ErrUnauthenticated when no
// caller is attached to ctx and ErrForbidden when the evaluator denies.
func (g *Gate) Check(ctx context.Context, required ...string) (string, *pdp_model.AccessDecision, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", nil, echo_errors.ErrUnauthenticated
	}

	granted, err := g.resolver.GetUserPermissions(ctx, userID)
	if err != nil {
		logger.Error("Failed to resolve user permissions", zap.Error(err), zap.String("userID", userID))
		return userID, nil, fmt.Errorf("resolve permissions: %w", err)
	}

	decision := g.evaluator.Evaluate(ctx, userID, granted, required)
	if !decision.Allowed() {
		return userID, decision, echo_errors.ErrForbidden
	}
	return userID, decision, nil
}

// Authorize wraps next so that it only runs for callers holding every required permission.
// The wrapped handler's result and error are returned unchanged.
func Authorize[Req, Resp any](g *Gate, required []string, next Handler[Req, Resp]) Handler[Req, Resp] {
	return func(ctx context.Context, req Req) (Resp, error) {
		if _, _, err := g.Check(ctx, required...); err != nil {
			var zero Resp
			return zero, err
		}
		return next(ctx, req)
	}
}
