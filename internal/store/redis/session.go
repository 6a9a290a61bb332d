package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/store"
)

// Сессия хранится как Redis Hash с полями:
// access, refresh, created_at (unix), last_seen (unix), device, ip, locale, login_at (unix).
// TTL ключа — скользящее окно неактивности; каждый успешный IsValid сдвигает его вперёд.

// isValidScript — проверка предъявленного access-токена одним скриптом:
// blacklist → наличие сессии → точное совпадение токена → сдвиг окна.
// KEYS[1] — blacklist-ключ предъявленного токена, KEYS[2] — ключ сессии.
// ARGV[1] — токен, ARGV[2] — idle TTL (сек), ARGV[3] — unix now.
var isValidScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
local cur = redis.call('HGET', KEYS[2], 'access')
if not cur or cur ~= ARGV[1] then
	return 0
end
redis.call('HSET', KEYS[2], 'last_seen', ARGV[3])
redis.call('EXPIRE', KEYS[2], ARGV[2])
return 1
`)

// refreshScript — ротация токенов только при существующей сессии.
// KEYS[1] — ключ сессии. ARGV: access, refresh, idle TTL (сек), unix now.
var refreshScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], 'access', ARGV[1], 'refresh', ARGV[2], 'last_seen', ARGV[4])
redis.call('EXPIRE', KEYS[1], ARGV[3])
return 1
`)

// invalidateAllScript — читает текущий access-токен, заносит его в blacklist
// и удаляет сессию. KEYS[1] — ключ сессии. ARGV: blacklist-префикс, TTL (сек).
var invalidateAllScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'access')
if cur then
	redis.call('SET', ARGV[1] .. cur, '1', 'EX', ARGV[2])
end
redis.call('DEL', KEYS[1])
if cur then
	return 1
end
return 0
`)

// CreateSession создаёт сессию принципала, перезаписывая предыдущую.
func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	const op = "store.redis.CreateSession"

	key := s.sessionKey(sess.PrincipalID.String())
	kv := map[string]string{
		"access":     sess.AccessToken,
		"refresh":    sess.RefreshToken,
		"created_at": strconv.FormatInt(sess.CreatedAt.Unix(), 10),
		"last_seen":  strconv.FormatInt(sess.LastSeenAt.Unix(), 10),
		"device":     sess.Meta.Device,
		"ip":         sess.Meta.IP,
		"locale":     sess.Meta.Locale,
		"login_at":   strconv.FormatInt(sess.Meta.LoginAt.Unix(), 10),
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	// DEL перед HSET: от прошлой сессии не должно остаться полей.
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, kv)
	pipe.Expire(ctx, key, s.sessions.IdleTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(op, err)
	}

	return nil
}

// SessionByPrincipal возвращает текущую сессию принципала.
func (s *Store) SessionByPrincipal(ctx context.Context, principalID uuid.UUID) (*models.Session, error) {
	const op = "store.redis.SessionByPrincipal"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	m, err := s.rdb.HGetAll(ctx, s.sessionKey(principalID.String())).Result()
	if err != nil {
		return nil, unavailable(op, err)
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}

	sess := &models.Session{
		PrincipalID:  principalID,
		AccessToken:  m["access"],
		RefreshToken: m["refresh"],
		CreatedAt:    unixField(m, "created_at"),
		LastSeenAt:   unixField(m, "last_seen"),
		Meta: models.SessionMeta{
			Device:  m["device"],
			IP:      m["ip"],
			Locale:  m["locale"],
			LoginAt: unixField(m, "login_at"),
		},
	}

	return sess, nil
}

// IsValid проверяет предъявленный access-токен и сдвигает окно сессии.
// Ошибка хранилища возвращается вместе с false: вызывающая сторона
// обязана трактовать её как отказ (fail-closed).
func (s *Store) IsValid(ctx context.Context, principalID uuid.UUID, accessToken string) (bool, error) {
	const op = "store.redis.IsValid"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	keys := []string{s.blacklistKey(accessToken), s.sessionKey(principalID.String())}
	argv := []interface{}{
		accessToken,
		int64(s.sessions.IdleTTL.Seconds()),
		time.Now().UTC().Unix(),
	}

	res, err := isValidScript.Run(ctx, s.rdb, keys, argv...).Int64()
	if err != nil {
		return false, unavailable(op, err)
	}

	return res == 1, nil
}

// Refresh заменяет оба токена существующей сессии и сдвигает окно.
func (s *Store) Refresh(ctx context.Context, principalID uuid.UUID, accessToken, refreshToken string) error {
	const op = "store.redis.Refresh"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	keys := []string{s.sessionKey(principalID.String())}
	argv := []interface{}{
		accessToken,
		refreshToken,
		int64(s.sessions.IdleTTL.Seconds()),
		time.Now().UTC().Unix(),
	}

	res, err := refreshScript.Run(ctx, s.rdb, keys, argv...).Int64()
	if err != nil {
		return unavailable(op, err)
	}

	if res == 0 {
		return fmt.Errorf("%s: %w", op, store.ErrNotFound)
	}

	return nil
}

// Invalidate заносит access-токен в blacklist и удаляет сессию.
func (s *Store) Invalidate(ctx context.Context, principalID uuid.UUID, accessToken string) error {
	const op = "store.redis.Invalidate"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, s.blacklistKey(accessToken), "1", s.sessions.BlacklistTTL)
	pipe.Del(ctx, s.sessionKey(principalID.String()))

	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(op, err)
	}

	return nil
}

// InvalidateAll отзывает текущий access-токен сессии и удаляет её.
func (s *Store) InvalidateAll(ctx context.Context, principalID uuid.UUID) error {
	const op = "store.redis.InvalidateAll"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	keys := []string{s.sessionKey(principalID.String())}
	argv := []interface{}{
		s.blacklistPrefix(),
		int64(s.sessions.BlacklistTTL.Seconds()),
	}

	if err := invalidateAllScript.Run(ctx, s.rdb, keys, argv...).Err(); err != nil {
		return unavailable(op, err)
	}

	return nil
}

// HasActiveSession сообщает о наличии живой сессии.
func (s *Store) HasActiveSession(ctx context.Context, principalID uuid.UUID) (bool, error) {
	const op = "store.redis.HasActiveSession"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	n, err := s.rdb.Exists(ctx, s.sessionKey(principalID.String())).Result()
	if err != nil {
		return false, unavailable(op, err)
	}

	return n == 1, nil
}

// unixField парсит unix-секунды из поля hash; битое значение — нулевое время.
func unixField(m map[string]string, field string) time.Time {
	v, err := strconv.ParseInt(m[field], 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(v, 0).UTC()
}

// errIsNil сообщает, что ответ Redis — отсутствие значения, а не сбой.
func errIsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
