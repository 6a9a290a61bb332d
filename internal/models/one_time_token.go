package models

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeKind — назначение одноразового токена.
type OneTimeKind string

const (
	KindEmailVerification OneTimeKind = "EMAIL_VERIFICATION"
	KindPasswordReset     OneTimeKind = "PASSWORD_RESET"
)

// OneTimeToken — одноразовый токен подтверждения email либо сброса пароля.
//
// Token — криптографически случайная непрозрачная строка (32 байта энтропии,
// base64url); на сторону пользователя уходит она целиком, сервер хранит
// запись по ней же как по ключу.
type OneTimeToken struct {
	Token     string
	Kind      OneTimeKind
	Email     string
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}
