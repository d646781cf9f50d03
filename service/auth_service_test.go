package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/service"
	test_mock "github.com/dev-mohitbeniwal/backoffice/test/mock"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

type authFixture struct {
	users  *test_mock.MockUserStore
	cache  *test_mock.MockSessionCache
	mailer *test_mock.MockVerificationMailer
	audit  *test_mock.MockAuditService
}

func newAuthService(t *testing.T) (*service.AuthService, *authFixture) {
	t.Helper()
	f := &authFixture{
		users:  new(test_mock.MockUserStore),
		cache:  new(test_mock.MockSessionCache),
		mailer: new(test_mock.MockVerificationMailer),
		audit:  new(test_mock.MockAuditService),
	}
	cfg := service.AuthConfig{
		JWTSecret:       []byte("test-secret"),
		SessionTTL:      time.Hour,
		VerificationTTL: 5 * time.Minute,
	}
	return service.NewAuthService(f.users, f.cache, f.mailer, f.audit, util.NewValidationUtil(), cfg), f
}

func activeUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := service.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
		Status:   model.UserStatusActive,
		Services: model.UserServices{Password: model.PasswordService{Bcrypt: hash}},
	}
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		svc, f := newAuthService(t)
		f.users.On("GetUserByUsername", ctx, "alice").Return(activeUser(t, "correct-horse"), nil)

		_, err := svc.SignIn(ctx, model.SignInRequest{Username: "alice", Password: "wrong"})

		assert.ErrorIs(t, err, echo_errors.ErrInvalidCredentials)
		f.mailer.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user looks like a wrong password", func(t *testing.T) {
		svc, f := newAuthService(t)
		f.users.On("GetUserByUsername", ctx, "bob").Return(nil, echo_errors.ErrUserNotFound)

		_, err := svc.SignIn(ctx, model.SignInRequest{Username: "bob", Password: "whatever"})

		assert.ErrorIs(t, err, echo_errors.ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.SignIn(ctx, model.SignInRequest{Username: "alice"})

		assert.ErrorIs(t, err, echo_errors.ErrInvalidFormData)
	})
}

func TestAuthService_SignInVerifyAndResolveSession(t *testing.T) {
	ctx := context.Background()
	svc, f := newAuthService(t)

	var pending model.Verification
	var code string
	var sessionID string

	f.users.On("GetUserByUsername", ctx, "alice").Return(activeUser(t, "correct-horse"), nil)
	f.cache.On("SetVerification", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("model.Verification"), 5*time.Minute).
		Run(func(args mock.Arguments) { pending = args.Get(2).(model.Verification) }).
		Return(nil)
	f.mailer.On("SendVerificationCode", ctx, mock.AnythingOfType("model.User"), mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { code = args.String(2) }).
		Return(nil)

	token, err := svc.SignIn(ctx, model.SignInRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Len(t, code, 6)
	assert.Equal(t, code, pending.Code)
	assert.Equal(t, "u1", pending.UserID)

	f.cache.On("GetVerification", ctx, token).Return(&pending, nil)
	f.cache.On("DeleteVerification", ctx, token).Return(nil)
	f.cache.On("SetSession", ctx, mock.AnythingOfType("string"), "u1", time.Hour).
		Run(func(args mock.Arguments) { sessionID = args.String(1) }).
		Return(nil)
	f.audit.On("RecordAction", ctx, "u1", audit.ActionSignIn, nil).Return(nil)

	session, err := svc.VerifyCode(ctx, token, code)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	f.cache.On("GetSession", ctx, sessionID).Return("u1", nil)

	userID, err := svc.GetUserID(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	f.audit.AssertExpectations(t)
}

func TestAuthService_VerifyCode_WrongCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		attempts   int64
		countErr   error
		wantDelete bool
	}{
		{"first miss keeps the code", 1, nil, false},
		{"last allowed miss keeps the code", 4, nil, false},
		{"fifth miss burns the code", 5, nil, true},
		{"counter failure burns the code", 0, assert.AnError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, f := newAuthService(t)
			f.cache.On("GetVerification", ctx, "tok").Return(&model.Verification{UserID: "u1", Code: "123456"}, nil)
			f.cache.On("IncrementVerificationAttempts", ctx, "tok", 5*time.Minute).Return(tt.attempts, tt.countErr)
			if tt.wantDelete {
				f.cache.On("DeleteVerification", ctx, "tok").Return(nil)
			}

			_, err := svc.VerifyCode(ctx, "tok", "654321")

			assert.ErrorIs(t, err, echo_errors.ErrInvalidVerificationCode)
			f.cache.AssertNotCalled(t, "SetSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			if tt.wantDelete {
				f.cache.AssertCalled(t, "DeleteVerification", ctx, "tok")
			} else {
				f.cache.AssertNotCalled(t, "DeleteVerification", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAuthService_VerifyCode_LockedOut(t *testing.T) {
	ctx := context.Background()
	svc, f := newAuthService(t)
	f.cache.On("GetVerification", ctx, "tok").Return(&model.Verification{UserID: "u1", Code: "123456"}, nil).Times(5)
	f.cache.On("GetVerification", ctx, "tok").Return(nil, nil)
	for i := int64(1); i <= 5; i++ {
		f.cache.On("IncrementVerificationAttempts", ctx, "tok", 5*time.Minute).Return(i, nil).Once()
	}
	f.cache.On("DeleteVerification", ctx, "tok").Return(nil).Once()

	for i := 0; i < 5; i++ {
		_, err := svc.VerifyCode(ctx, "tok", "000000")
		require.ErrorIs(t, err, echo_errors.ErrInvalidVerificationCode)
	}

	// The right code no longer works once the token is burnt.
	_, err := svc.VerifyCode(ctx, "tok", "123456")

	assert.ErrorIs(t, err, echo_errors.ErrInvalidVerificationCode)
	f.cache.AssertNumberOfCalls(t, "IncrementVerificationAttempts", 5)
	f.cache.AssertNotCalled(t, "SetSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.cache.AssertExpectations(t)
}

func TestAuthService_GetUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.GetUserID(ctx, "not-a-jwt")

		assert.ErrorIs(t, err, echo_errors.ErrUnauthenticated)
	})

	t.Run("signed out session", func(t *testing.T) {
		svc, f := newAuthService(t)
		token := signedSession(t, svc, f)
		f.cache.On("GetSession", ctx, mock.AnythingOfType("string")).Return("", echo_errors.ErrSessionNotFound)

		_, err := svc.GetUserID(ctx, token)

		assert.ErrorIs(t, err, echo_errors.ErrUnauthenticated)
	})
}

// signedSession drives VerifyCode to obtain a token signed with the fixture's secret.
func signedSession(t *testing.T, svc *service.AuthService, f *authFixture) string {
	t.Helper()
	ctx := context.Background()
	f.cache.On("GetVerification", ctx, "tok").Return(&model.Verification{UserID: "u1", Code: "123456"}, nil)
	f.cache.On("DeleteVerification", ctx, "tok").Return(nil)
	f.cache.On("SetSession", ctx, mock.AnythingOfType("string"), "u1", time.Hour).Return(nil)
	f.audit.On("RecordAction", ctx, "u1", audit.ActionSignIn, nil).Return(nil)

	session, err := svc.VerifyCode(ctx, "tok", "123456")
	require.NoError(t, err)
	return session.Token
}
