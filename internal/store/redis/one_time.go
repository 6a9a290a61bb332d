package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/store"
)

// Одноразовый токен хранится как Redis Hash с полями:
// email, uid, kind, created_at (unix), expires_at (unix); TTL до expires_at.
// Для KindPasswordReset поддерживается reverse index uid → токен,
// обеспечивающий инвариант «не более одного живого reset-токена».

// consumeScript — атомарное потребление одноразового токена.
// Поиск, удаление и установка used-маркера — одна неделимая операция:
// два конкурентных вызова на одном токене не могут оба увидеть его живым.
// KEYS[1] — ключ записи, KEYS[2] — used-маркер.
// ARGV[1] — retention used-маркера (сек), ARGV[2] — префикс reverse index
// (пустая строка, если индекс чистить не нужно), ARGV[3] — сам токен.
var consumeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 'USED'
end
local v = redis.call('HGETALL', KEYS[1])
if #v == 0 then
	return false
end
redis.call('DEL', KEYS[1])
redis.call('SET', KEYS[2], '1', 'EX', ARGV[1])
if ARGV[2] ~= '' then
	local uid = ''
	for i = 1, #v, 2 do
		if v[i] == 'uid' then
			uid = v[i+1]
		end
	end
	if uid ~= '' then
		local idx = ARGV[2] .. uid
		if redis.call('GET', idx) == ARGV[3] then
			redis.call('DEL', idx)
		end
	end
end
return v
`)

// saveResetScript — атомарная выдача reset-токена: чтение предыдущего
// через reverse index, запись новой записи, перевод индекса и удаление
// предыдущей — одна неделимая операция. Две конкурентные выдачи
// сериализуются Redis: живым остаётся ровно один токен, на который
// указывает индекс.
// KEYS[1] — ключ новой записи, KEYS[2] — reverse index пользователя.
// ARGV: ttl (сек), email, uid, kind, created_at, expires_at, токен,
// префикс записей reset-токенов.
var saveResetScript = redis.NewScript(`
local prior = redis.call('GET', KEYS[2])
redis.call('HSET', KEYS[1],
	'email', ARGV[2], 'uid', ARGV[3], 'kind', ARGV[4],
	'created_at', ARGV[5], 'expires_at', ARGV[6])
redis.call('EXPIRE', KEYS[1], ARGV[1])
redis.call('SET', KEYS[2], ARGV[7], 'EX', ARGV[1])
if prior and prior ~= ARGV[7] then
	redis.call('DEL', ARGV[8] .. prior)
end
return 1
`)

func (s *Store) oneTimeKey(kind models.OneTimeKind, token string) string {
	return s.prefix + "ott:" + kindSegment(kind) + ":" + token
}

func (s *Store) oneTimePrefix(kind models.OneTimeKind) string {
	return s.prefix + "ott:" + kindSegment(kind) + ":"
}

func kindSegment(kind models.OneTimeKind) string {
	if kind == models.KindPasswordReset {
		return "reset"
	}

	return "verify"
}

// SaveOneTimeToken сохраняет токен с TTL до ExpiresAt.
//
// Для reset-токена выдача атомарна (saveResetScript): новая запись, перевод
// reverse index и удаление предыдущей записи происходят неделимо, порядок —
// новая раньше старой, без окна «ноль живых токенов» и без гонки двух
// конкурентных выдач на общем прочитанном prior.
func (s *Store) SaveOneTimeToken(ctx context.Context, t *models.OneTimeToken) error {
	const op = "store.redis.SaveOneTimeToken"

	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("%s: token already expired", op)
	}

	ttlSec := int64(ttl / time.Second)
	if ttlSec < 1 {
		ttlSec = 1
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if t.Kind == models.KindPasswordReset {
		keys := []string{
			s.oneTimeKey(t.Kind, t.Token),
			s.resetIndexKey(t.UserID.String()),
		}
		argv := []interface{}{
			ttlSec,
			t.Email,
			t.UserID.String(),
			string(t.Kind),
			strconv.FormatInt(t.CreatedAt.Unix(), 10),
			strconv.FormatInt(t.ExpiresAt.Unix(), 10),
			t.Token,
			s.oneTimePrefix(t.Kind),
		}

		if err := saveResetScript.Run(ctx, s.rdb, keys, argv...).Err(); err != nil {
			return unavailable(op, err)
		}

		return nil
	}

	kv := map[string]string{
		"email":      t.Email,
		"uid":        t.UserID.String(),
		"kind":       string(t.Kind),
		"created_at": strconv.FormatInt(t.CreatedAt.Unix(), 10),
		"expires_at": strconv.FormatInt(t.ExpiresAt.Unix(), 10),
	}

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, s.oneTimeKey(t.Kind, t.Token), kv)
	pipe.Expire(ctx, s.oneTimeKey(t.Kind, t.Token), ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(op, err)
	}

	return nil
}

// ConsumeOneTimeToken атомарно изымает токен.
func (s *Store) ConsumeOneTimeToken(ctx context.Context, kind models.OneTimeKind, token string) (*models.OneTimeToken, error) {
	const op = "store.redis.ConsumeOneTimeToken"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	resetPrefix := ""
	if kind == models.KindPasswordReset {
		resetPrefix = s.resetIndexPrefix()
	}

	keys := []string{s.oneTimeKey(kind, token), s.usedKey(token)}
	argv := []interface{}{
		int64(s.oneTime.UsedRetention.Seconds()),
		resetPrefix,
		token,
	}

	res, err := consumeScript.Run(ctx, s.rdb, keys, argv...).Result()
	if err != nil {
		if errIsNil(err) {
			return nil, fmt.Errorf("%s: %w", op, store.ErrNotFound)
		}

		return nil, unavailable(op, err)
	}

	if v, ok := res.(string); ok && v == "USED" {
		return nil, fmt.Errorf("%s: %w", op, store.ErrTokenUsed)
	}

	fields, ok := res.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: unexpected script reply %T", op, res)
	}

	m := make(map[string]string, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		k, _ := fields[i].(string)
		v, _ := fields[i+1].(string)
		m[k] = v
	}

	uid, err := uuid.Parse(m["uid"])
	if err != nil {
		return nil, fmt.Errorf("%s: corrupt record: %w", op, err)
	}

	return &models.OneTimeToken{
		Token:     token,
		Kind:      kind,
		Email:     m["email"],
		UserID:    uid,
		CreatedAt: unixField(m, "created_at"),
		ExpiresAt: unixField(m, "expires_at"),
	}, nil
}

// HasLiveResetToken — O(1) проверка живого reset-токена по reverse index.
func (s *Store) HasLiveResetToken(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "store.redis.HasLiveResetToken"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	n, err := s.rdb.Exists(ctx, s.resetIndexKey(userID.String())).Result()
	if err != nil {
		return false, unavailable(op, err)
	}

	return n == 1, nil
}
