package models

import "time"

// TokenPair — пара токенов, выдаваемая при логине и ротации.
//
// Оба токена — подписанные JWT без серверного состояния; сессия хранит
// только их текущие значения для отсечения stale-токенов.
type TokenPair struct {
	// AccessToken — короткоживущий JWT для авторизации запросов.
	AccessToken string
	// RefreshToken — долгоживущий JWT c claim typ="refresh".
	RefreshToken string
	// AccessExpiresAt — момент истечения access-токена (UTC).
	AccessExpiresAt time.Time
	// RefreshExpiresAt — момент истечения refresh-токена (UTC).
	RefreshExpiresAt time.Time
}
