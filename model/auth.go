package model

import "time"

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerificationCodeRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// Verification is the pending second step of a sign-in.
type Verification struct {
	UserID    string    `json:"userId"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
