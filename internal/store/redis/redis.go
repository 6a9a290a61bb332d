// redis реализует store.Store поверх Redis.
//
// Вся мутация состояния — одноключевые атомарные операции (SET с TTL,
// DEL, HSET в pipeline) либо Lua-скрипты там, где спецификация операции
// требует неделимости (валидация сессии, потребление одноразового токена).
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studyhive/auth-service/internal/config"
	"github.com/studyhive/auth-service/internal/store"
)

// Store — Redis-хранилище сессий, blacklist и одноразовых токенов.
type Store struct {
	rdb      *redis.Client
	prefix   string
	sessions config.SessionConfig
	oneTime  config.OneTimeConfig
	// opTimeout — дедлайн одного обращения к Redis; 0 отключает обёртку.
	opTimeout time.Duration
}

// Проверка на соответствие интерфейсу Store.
var _ store.Store = (*Store)(nil)

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "auth:". opTimeout ограничивает каждое
// обращение к Redis независимо от дедлайна входящего запроса.
func New(redisURL, prefix string, sessions config.SessionConfig, oneTime config.OneTimeConfig, opTimeout time.Duration) (*Store, error) {
	const op = "store.redis.New"

	if prefix == "" {
		prefix = "auth:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Store{
		rdb:       rdb,
		prefix:    prefix,
		sessions:  sessions,
		oneTime:   oneTime,
		opTimeout: opTimeout,
	}, nil
}

// opCtx ограничивает одно обращение к Redis сконфигурированным дедлайном.
// Более ранний дедлайн вызывающей стороны сохраняется.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.opTimeout)
}

// Close закрывает клиент Redis.
func (s *Store) Close() error { return s.rdb.Close() }

func (s *Store) sessionKey(principalID string) string { return s.prefix + "sess:" + principalID }
func (s *Store) blacklistKey(token string) string     { return s.prefix + "bl:" + token }
func (s *Store) resetIndexKey(userID string) string   { return s.prefix + "rst:" + userID }
func (s *Store) usedKey(token string) string          { return s.prefix + "used:" + token }

func (s *Store) blacklistPrefix() string  { return s.prefix + "bl:" }
func (s *Store) resetIndexPrefix() string { return s.prefix + "rst:" }

// unavailable оборачивает ошибку клиента в store.ErrUnavailable,
// сохраняя исходную причину в тексте.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, store.ErrUnavailable, err)
}
