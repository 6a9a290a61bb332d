// service содержит бизнес-логику ядра аутентификации:
// логин и выпуск токенов, ротацию, logout с blacklist, проверку
// access-токена для middleware и одноразовые токены подтверждения
// email / сброса пароля.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при
//     условии, что переданные хранилище и справочник потокобезопасны.
//   - Ошибки возвращаются sentinel-переменными и далее маппятся
//     транспортом на HTTP-статусы (см. комментарии к переменным ниже).
package service

import (
	"errors"
	"time"

	"github.com/studyhive/auth-service/internal/config"
	"github.com/studyhive/auth-service/internal/directory"
	"github.com/studyhive/auth-service/internal/store"
	"github.com/studyhive/auth-service/internal/token"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна, пользователь
	// не найден либо деактивирован. Случаи намеренно не различаются.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — access/refresh-токен некорректен по подписи или
	// формату, истёк, отозван либо не совпадает с текущим токеном сессии.
	// Причина не различается. Транспорт: HTTP 401.
	ErrInvalidToken = errors.New("invalid token")

	// ErrOneTimeTokenInvalid — одноразовый токен не найден, истёк либо
	// уже потреблён; наружу уходит один неразличимый случай.
	// Транспорт: HTTP 400 с generic-сообщением.
	ErrOneTimeTokenInvalid = errors.New("one-time token invalid or expired")

	// ErrStoreUnavailable — хранилище недоступно на пути мутации;
	// вызывающая сторона может предложить повтор. Транспорт: HTTP 503.
	ErrStoreUnavailable = store.ErrUnavailable
)

// Service описывает бизнес-логику ядра аутентификации.
type Service struct {
	signer   *token.Signer
	sessions store.Sessions
	oneTime  store.OneTimeTokens
	dir      directory.Directory
	cfg      config.OneTimeConfig
	now      func() time.Time
}

// New создаёт новый экземпляр Service.
func New(signer *token.Signer, sessions store.Sessions, oneTime store.OneTimeTokens, dir directory.Directory, cfg config.OneTimeConfig) *Service {
	return &Service{
		signer:   signer,
		sessions: sessions,
		oneTime:  oneTime,
		dir:      dir,
		cfg:      cfg,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени (для тестов).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
