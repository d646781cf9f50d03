// service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dev-mohitbeniwal/backoffice/audit"
	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	logger "github.com/dev-mohitbeniwal/backoffice/logging"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

const verificationCodeDigits = 6

// A token is burnt after this many wrong codes.
const maxVerificationAttempts = 5

// IAuthService covers the two-step sign-in and session lookup.
type IAuthService interface {
	SignIn(ctx context.Context, req model.SignInRequest) (string, error)
	VerifyCode(ctx context.Context, verificationToken, code string) (*model.Session, error)
	SignOut(ctx context.Context, token string) error
	GetUserID(ctx context.Context, token string) (string, error)
}

// SessionCache stores verification codes and live sessions.
type SessionCache interface {
	SetVerification(ctx context.Context, token string, verification model.Verification, ttl time.Duration) error
	GetVerification(ctx context.Context, token string) (*model.Verification, error)
	DeleteVerification(ctx context.Context, token string) error
	IncrementVerificationAttempts(ctx context.Context, token string, ttl time.Duration) (int64, error)
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type VerificationMailer interface {
	SendVerificationCode(ctx context.Context, user model.User, code string) error
}

type AuthConfig struct {
	JWTSecret       []byte
	SessionTTL      time.Duration
	VerificationTTL time.Duration
}

type AuthService struct {
	userStore      UserStore
	cache          SessionCache
	mailer         VerificationMailer
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	cfg            AuthConfig
}

var _ IAuthService = &AuthService{}

func NewAuthService(userStore UserStore, cache SessionCache, mailer VerificationMailer, auditService audit.Service, validationUtil *util.ValidationUtil, cfg AuthConfig) *AuthService {
	return &AuthService{
		userStore:      userStore,
		cache:          cache,
		mailer:         mailer,
		auditService:   auditService,
		validationUtil: validationUtil,
		cfg:            cfg,
	}
}

// HashPassword returns the bcrypt hash stored under services.password.bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}
	return string(hash), nil
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", verificationCodeDigits, n.Int64()), nil
}

// SignIn checks the password, then e-mails a one-time code. The returned token identifies
// the pending verification.
func (s *AuthService) SignIn(ctx context.Context, req model.SignInRequest) (string, error) {
	if err := s.validationUtil.ValidateSignIn(req); err != nil {
		return "", err
	}

	user, err := s.userStore.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			return "", echo_errors.ErrInvalidCredentials
		}
		return "", err
	}
	if user.Status == model.UserStatusDisabled || user.Services.Password.Bcrypt == "" {
		return "", echo_errors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Services.Password.Bcrypt), []byte(req.Password)); err != nil {
		logger.Info("Sign-in rejected", zap.String("username", req.Username))
		return "", echo_errors.ErrInvalidCredentials
	}

	code, err := generateVerificationCode()
	if err != nil {
		return "", fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}
	token := uuid.New().String()
	verification := model.Verification{UserID: user.ID, Code: code, CreatedAt: time.Now().UTC()}
	if err := s.cache.SetVerification(ctx, token, verification, s.cfg.VerificationTTL); err != nil {
		return "", fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}

	if err := s.mailer.SendVerificationCode(ctx, *user, code); err != nil {
		logger.Error("Failed to send verification code", zap.Error(err), zap.String("userID", user.ID))
		return "", fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}

	logger.Info("Verification code sent", zap.String("userID", user.ID))
	return token, nil
}

// VerifyCode consumes a pending verification and opens a session.
func (s *AuthService) VerifyCode(ctx context.Context, verificationToken, code string) (*model.Session, error) {
	if err := s.validationUtil.ValidateVerificationCode(model.VerificationCodeRequest{Code: code}); err != nil {
		return nil, err
	}

	verification, err := s.cache.GetVerification(ctx, verificationToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}
	if verification == nil {
		return nil, echo_errors.ErrInvalidVerificationCode
	}
	if subtle.ConstantTimeCompare([]byte(verification.Code), []byte(code)) != 1 {
		s.countWrongCode(ctx, verificationToken, verification.UserID)
		return nil, echo_errors.ErrInvalidVerificationCode
	}
	if err := s.cache.DeleteVerification(ctx, verificationToken); err != nil {
		logger.Warn("Failed to delete used verification code", zap.Error(err))
	}

	sessionID := uuid.New().String()
	if err := s.cache.SetSession(ctx, sessionID, verification.UserID, s.cfg.SessionTTL); err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.SessionTTL)
	claims := jwt.RegisteredClaims{
		Subject:   verification.UserID,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}

	if err := s.auditService.RecordAction(ctx, verification.UserID, audit.ActionSignIn, nil); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}

	return &model.Session{Token: signed, UserID: verification.UserID, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) countWrongCode(ctx context.Context, verificationToken, userID string) {
	attempts, err := s.cache.IncrementVerificationAttempts(ctx, verificationToken, s.cfg.VerificationTTL)
	if err != nil {
		// An uncounted miss burns the code.
		logger.Error("Failed to count verification attempt", zap.Error(err), zap.String("userID", userID))
		attempts = maxVerificationAttempts
	}
	if attempts < maxVerificationAttempts {
		return
	}

	logger.Warn("Verification code locked after repeated failures",
		zap.String("userID", userID),
		zap.Int64("attempts", attempts))
	if err := s.cache.DeleteVerification(ctx, verificationToken); err != nil {
		logger.Error("Failed to delete locked verification code", zap.Error(err))
	}
}

func (s *AuthService) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", echo_errors.ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.ID == "" {
		return nil, echo_errors.ErrUnauthenticated
	}
	return claims, nil
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return err
	}
	if err := s.cache.DeleteSession(ctx, claims.ID); err != nil {
		return fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}
	if err := s.auditService.RecordAction(ctx, claims.Subject, audit.ActionSignOut, nil); err != nil {
		logger.Error("Failed to record action history", zap.Error(err))
	}
	return nil
}

// GetUserID returns the session owner. The token must verify and its session must still exist.
func (s *AuthService) GetUserID(ctx context.Context, token string) (string, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return "", err
	}

	userID, err := s.cache.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, echo_errors.ErrSessionNotFound) {
			return "", echo_errors.ErrUnauthenticated
		}
		return "", fmt.Errorf("%w: %w", echo_errors.ErrInternalServer, err)
	}
	if userID != claims.Subject {
		return "", echo_errors.ErrUnauthenticated
	}
	return userID, nil
}
