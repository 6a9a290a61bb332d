package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/studyhive/auth-service/internal/config"
	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/store"
)

// Файл интеграционных тестов для пакета redis (sессии, session.go):
// - поднимает реальный Redis через testcontainers-go (образ redis:7-alpine);
// - проверяет жизненный цикл сессии: создание, вытеснение предыдущей, валидацию,
//   ротацию токенов, отзыв (blacklist) и скользящее окно неактивности.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/store/redis -v -race -count=1

// startRedis — поднимает временный Redis через testcontainers-go и возвращает
// инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startRedis(t *testing.T, sessions config.SessionConfig, oneTime config.OneTimeConfig) (*Store, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")
	url := fmt.Sprintf("redis://%s:%s/0", host, port.Port())

	st, err := New(url, "test:", sessions, oneTime, 2*time.Second)
	require.NoError(t, err)

	cleanup := func() {
		_ = st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func defaultSessionCfg() config.SessionConfig {
	return config.SessionConfig{
		IdleTTL:      24 * time.Hour,
		BlacklistTTL: 48 * time.Hour,
	}
}

func defaultOneTimeCfg() config.OneTimeConfig {
	return config.OneTimeConfig{
		VerificationTTL: 48 * time.Hour,
		ResetTTL:        24 * time.Hour,
		UsedRetention:   72 * time.Hour,
	}
}

func newSession(uid uuid.UUID, access, refresh string) *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		PrincipalID:  uid,
		AccessToken:  access,
		RefreshToken: refresh,
		CreatedAt:    now,
		LastSeenAt:   now,
		Meta: models.SessionMeta{
			Device:  "firefox",
			IP:      "10.0.0.1",
			Locale:  "ru",
			LoginAt: now,
		},
	}
}

// TestIntegration_CreateSession_And_SessionByPrincipal_OK — happy-path:
// создание сессии и последующее чтение всех полей, включая метаданные.
func TestIntegration_CreateSession_And_SessionByPrincipal_OK(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	sess := newSession(uid, "access-1", "refresh-1")
	require.NoError(t, st.CreateSession(context.Background(), sess))

	got, err := st.SessionByPrincipal(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, uid, got.PrincipalID)
	require.Equal(t, "access-1", got.AccessToken)
	require.Equal(t, "refresh-1", got.RefreshToken)
	require.Equal(t, "firefox", got.Meta.Device)
	require.Equal(t, "10.0.0.1", got.Meta.IP)
	require.WithinDuration(t, sess.CreatedAt, got.CreatedAt, time.Second)
	require.WithinDuration(t, sess.Meta.LoginAt, got.Meta.LoginAt, time.Second)
}

// TestIntegration_SessionByPrincipal_NotFound — чтение отсутствующей сессии.
func TestIntegration_SessionByPrincipal_NotFound(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	_, err := st.SessionByPrincipal(context.Background(), uuid.New())
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestIntegration_CreateSession_EvictsPrevious — модель «одна сессия на
// принципала»: повторный вход перезаписывает предыдущую сессию целиком,
// и старый access-токен перестаёт проходить валидацию.
func TestIntegration_CreateSession_EvictsPrevious(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-old", "refresh-old")))
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-new", "refresh-new")))

	got, err := st.SessionByPrincipal(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, "access-new", got.AccessToken)

	ok, err := st.IsValid(context.Background(), uid, "access-old")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.IsValid(context.Background(), uid, "access-new")
	require.NoError(t, err)
	require.True(t, ok)
}

// TestIntegration_IsValid_SlidingWindow — успешная валидация сдвигает TTL
// сессии вперёд и обновляет last_seen.
func TestIntegration_IsValid_SlidingWindow(t *testing.T) {
	st, cleanup := startRedis(t, config.SessionConfig{IdleTTL: time.Hour, BlacklistTTL: 2 * time.Hour}, defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))

	// Искусственно ужимаем TTL, затем валидируем: окно должно вернуться к IdleTTL.
	require.NoError(t, st.rdb.Expire(context.Background(), st.sessionKey(uid.String()), time.Minute).Err())

	ok, err := st.IsValid(context.Background(), uid, "access-1")
	require.NoError(t, err)
	require.True(t, ok)

	ttl, err := st.rdb.TTL(context.Background(), st.sessionKey(uid.String())).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, 30*time.Minute)
}

// TestIntegration_Refresh_RotatesTokens — ротация заменяет оба токена;
// предыдущий access после ротации невалиден.
func TestIntegration_Refresh_RotatesTokens(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))
	require.NoError(t, st.Refresh(context.Background(), uid, "access-2", "refresh-2"))

	got, err := st.SessionByPrincipal(context.Background(), uid)
	require.NoError(t, err)
	require.Equal(t, "access-2", got.AccessToken)
	require.Equal(t, "refresh-2", got.RefreshToken)

	ok, err := st.IsValid(context.Background(), uid, "access-1")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIntegration_Refresh_MissingSession — ротация без сессии не создаёт её.
func TestIntegration_Refresh_MissingSession(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	err := st.Refresh(context.Background(), uid, "access-x", "refresh-x")
	require.ErrorIs(t, err, store.ErrNotFound)

	ok, err := st.HasActiveSession(context.Background(), uid)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIntegration_Invalidate_BlacklistsToken — отзыв удаляет сессию и заносит
// access-токен в blacklist: токен отвергается даже после нового входа.
func TestIntegration_Invalidate_BlacklistsToken(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))
	require.NoError(t, st.Invalidate(context.Background(), uid, "access-1"))

	ok, err := st.HasActiveSession(context.Background(), uid)
	require.NoError(t, err)
	require.False(t, ok)

	// Даже если сессия с тем же токеном появится вновь, blacklist сильнее.
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))
	ok, err = st.IsValid(context.Background(), uid, "access-1")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIntegration_InvalidateAll — отзыв по принципалу: текущий access уходит
// в blacklist, сессия удаляется.
func TestIntegration_InvalidateAll(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))
	require.NoError(t, st.InvalidateAll(context.Background(), uid))

	ok, err := st.HasActiveSession(context.Background(), uid)
	require.NoError(t, err)
	require.False(t, ok)

	n, err := st.rdb.Exists(context.Background(), st.blacklistKey("access-1")).Result()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

// TestIntegration_InvalidateAll_NoSession — отзыв несуществующей сессии — no-op.
func TestIntegration_InvalidateAll_NoSession(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	require.NoError(t, st.InvalidateAll(context.Background(), uuid.New()))
}

// TestIntegration_IsValid_ContextCanceled — отменённый контекст даёт ошибку
// хранилища, а не ложный «валиден».
func TestIntegration_IsValid_ContextCanceled(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.CreateSession(context.Background(), newSession(uid, "access-1", "refresh-1")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := st.IsValid(ctx, uid, "access-1")
	require.Error(t, err)
	require.ErrorIs(t, err, store.ErrUnavailable)
	require.False(t, ok)
}
