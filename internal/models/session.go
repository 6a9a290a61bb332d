package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionMeta — непрозрачные атрибуты сессии, заполняемые при логине.
// Используются только для отображения «активных устройств» пользователю.
type SessionMeta struct {
	Device  string
	IP      string
	Locale  string
	LoginAt time.Time
}

// Session — запись сессии принципала.
//
// Модель single-session: одна запись на принципала, новый логин вытесняет
// предыдущую. Точка расширения до multi-device — карта токенов по устройствам
// вместо пары полей (см. store.Sessions.InvalidateAll).
type Session struct {
	PrincipalID uuid.UUID
	// AccessToken — текущий access-токен; предъявленный токен сверяется
	// с ним строго на равенство, stale-токены прошлых ротаций отвергаются.
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
	LastSeenAt   time.Time
	Meta         SessionMeta
}
