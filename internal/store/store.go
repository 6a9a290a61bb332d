// store задаёт контракты работы с хранилищем состояния аутентификации:
// сессии с blacklist отозванных access-токенов и одноразовые токены
// (подтверждение email, сброс пароля).
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/studyhive/auth-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена либо уже истекла (сессия/токен).
	ErrNotFound = errors.New("not found")
	// ErrTokenUsed — одноразовый токен уже был потреблён ранее.
	ErrTokenUsed = errors.New("token already used")
	// ErrUnavailable — хранилище недоступно (сеть/таймаут).
	// На путях чтения при валидации трактуется как fail-closed.
	ErrUnavailable = errors.New("store unavailable")
)

// Sessions выполняет операции над сессиями и blacklist.
type Sessions interface {
	// CreateSession создаёт сессию принципала, перезаписывая предыдущую.
	CreateSession(ctx context.Context, s *models.Session) error
	// SessionByPrincipal возвращает текущую сессию принципала.
	SessionByPrincipal(ctx context.Context, principalID uuid.UUID) (*models.Session, error)
	// IsValid проверяет предъявленный access-токен: не в blacklist,
	// сессия существует и токен совпадает с текущим. Успех сдвигает
	// скользящее окно жизни сессии вперёд.
	IsValid(ctx context.Context, principalID uuid.UUID, accessToken string) (bool, error)
	// Refresh заменяет оба токена существующей сессии и сдвигает окно.
	// Возвращает ErrNotFound, если сессии нет; новая не создаётся.
	Refresh(ctx context.Context, principalID uuid.UUID, accessToken, refreshToken string) error
	// Invalidate заносит access-токен в blacklist и удаляет сессию.
	Invalidate(ctx context.Context, principalID uuid.UUID, accessToken string) error
	// InvalidateAll отзывает текущий access-токен сессии и удаляет её.
	// NB: при расширении до multi-device здесь должны отзываться
	// все живые токены принципала, а не только последний.
	InvalidateAll(ctx context.Context, principalID uuid.UUID) error
	// HasActiveSession сообщает о наличии живой сессии.
	HasActiveSession(ctx context.Context, principalID uuid.UUID) (bool, error)
}

// OneTimeTokens выполняет операции над одноразовыми токенами.
type OneTimeTokens interface {
	// SaveOneTimeToken сохраняет токен с TTL до ExpiresAt.
	// Для KindPasswordReset дополнительно поддерживается инвариант
	// «не более одного живого токена на пользователя»: новая запись,
	// перевод индекса и удаление предыдущей — одна атомарная операция,
	// новая запись появляется раньше, чем исчезает предыдущая.
	SaveOneTimeToken(ctx context.Context, t *models.OneTimeToken) error
	// ConsumeOneTimeToken атомарно изымает токен: поиск, удаление и
	// отметка used — одна неделимая операция хранилища, никаких
	// check-then-act последовательностей. Возвращает ErrNotFound для
	// отсутствующего/истёкшего токена и ErrTokenUsed для потреблённого.
	ConsumeOneTimeToken(ctx context.Context, kind models.OneTimeKind, token string) (*models.OneTimeToken, error)
	// HasLiveResetToken — O(1) проверка живого reset-токена пользователя.
	HasLiveResetToken(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Store объединяет контракты хранилища состояния аутентификации.
type Store interface {
	Sessions
	OneTimeTokens
	Close() error
}
