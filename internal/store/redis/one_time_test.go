package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/store"
)

// Файл интеграционных тестов для пакета redis (одноразовые токены, one_time.go):
// - проверяет атомарное потребление, повторное потребление (used-маркер),
//   инвариант одного живого reset-токена и конкурентное потребление
//   одного токена из множества горутин.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/store/redis -v -race -count=1

func newOneTime(kind models.OneTimeKind, token string, uid uuid.UUID, ttl time.Duration) *models.OneTimeToken {
	now := time.Now().UTC()
	return &models.OneTimeToken{
		Token:     token,
		Kind:      kind,
		Email:     "student@uni.example",
		UserID:    uid,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// TestIntegration_SaveAndConsume_Verification_OK — happy-path: сохранение
// verification-токена и его атомарное потребление с полным набором полей.
func TestIntegration_SaveAndConsume_Verification_OK(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	rec := newOneTime(models.KindEmailVerification, "verify-token-1", uid, time.Hour)
	require.NoError(t, st.SaveOneTimeToken(context.Background(), rec))

	got, err := st.ConsumeOneTimeToken(context.Background(), models.KindEmailVerification, "verify-token-1")
	require.NoError(t, err)
	require.Equal(t, uid, got.UserID)
	require.Equal(t, "student@uni.example", got.Email)
	require.Equal(t, models.KindEmailVerification, got.Kind)
	require.WithinDuration(t, rec.ExpiresAt, got.ExpiresAt, time.Second)
}

// TestIntegration_Consume_Twice — второе потребление того же токена
// отвергается used-маркером, не «не найдено».
func TestIntegration_Consume_Twice(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-token-1", uid, time.Hour)))

	_, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-token-1")
	require.NoError(t, err)

	_, err = st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-token-1")
	require.ErrorIs(t, err, store.ErrTokenUsed)
}

// TestIntegration_Consume_Unknown — неизвестный токен.
func TestIntegration_Consume_Unknown(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	_, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "no-such-token")
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestIntegration_Consume_Expired — истёкший токен неотличим от отсутствующего:
// ключ умирает по TTL, запись исчезает целиком.
func TestIntegration_Consume_Expired(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindEmailVerification, "short-lived", uid, time.Second)))

	time.Sleep(1500 * time.Millisecond)

	_, err := st.ConsumeOneTimeToken(context.Background(), models.KindEmailVerification, "short-lived")
	require.ErrorIs(t, err, store.ErrNotFound)
}

// TestIntegration_Concurrent_Consume — N конкурентных попыток потребить один
// токен: ровно одна успешна, остальные получают ErrTokenUsed или ErrNotFound.
func TestIntegration_Concurrent_Consume(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "contested-token", uid, time.Hour)))

	const workers = 16

	var wg sync.WaitGroup
	results := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "contested-token")
			results[i] = err
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		require.True(t,
			errorsIsAny(err, store.ErrTokenUsed, store.ErrNotFound),
			"unexpected error: %v", err)
	}
	require.Equal(t, 1, successes)
}

// TestIntegration_ResetReissue_InvalidatesPrior — повторная выдача reset-токена
// гасит предыдущий: старый перестаёт потребляться, живым остаётся новый.
func TestIntegration_ResetReissue_InvalidatesPrior(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-old", uid, time.Hour)))
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-new", uid, time.Hour)))

	_, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-old")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-new")
	require.NoError(t, err)
	require.Equal(t, uid, got.UserID)
}

// TestIntegration_ConcurrentResetIssue_SingleLive — N конкурентных выдач
// reset-токена одному пользователю: выдачи сериализуются хранилищем,
// потребляемым остаётся ровно один токен (тот, на который указывает index).
func TestIntegration_ConcurrentResetIssue_SingleLive(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()

	const workers = 8
	tokens := make([]string, workers)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("reset-race-%d", i)
	}

	var wg sync.WaitGroup
	saveErrs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			saveErrs[i] = st.SaveOneTimeToken(context.Background(),
				newOneTime(models.KindPasswordReset, tokens[i], uid, time.Hour))
		}(i)
	}
	wg.Wait()

	for _, err := range saveErrs {
		require.NoError(t, err)
	}

	live := 0
	for _, token := range tokens {
		if _, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, token); err == nil {
			live++
			continue
		}
	}
	require.Equal(t, 1, live)
}

// TestIntegration_ResetReissue_DoesNotAffectOtherUsers — reset-токены разных
// пользователей независимы.
func TestIntegration_ResetReissue_DoesNotAffectOtherUsers(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uidA, uidB := uuid.New(), uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-a", uidA, time.Hour)))
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-b", uidB, time.Hour)))

	got, err := st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-a")
	require.NoError(t, err)
	require.Equal(t, uidA, got.UserID)
}

// TestIntegration_HasLiveResetToken — reverse index отражает жизненный цикл:
// появляется при выдаче, исчезает при потреблении.
func TestIntegration_HasLiveResetToken(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()

	ok, err := st.HasLiveResetToken(context.Background(), uid)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindPasswordReset, "reset-live", uid, time.Hour)))

	ok, err = st.HasLiveResetToken(context.Background(), uid)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = st.ConsumeOneTimeToken(context.Background(), models.KindPasswordReset, "reset-live")
	require.NoError(t, err)

	ok, err = st.HasLiveResetToken(context.Background(), uid)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestIntegration_MultipleVerificationTokens_Coexist — несколько живых
// verification-токенов одного пользователя допустимы.
func TestIntegration_MultipleVerificationTokens_Coexist(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	uid := uuid.New()
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindEmailVerification, "verify-1", uid, time.Hour)))
	require.NoError(t, st.SaveOneTimeToken(context.Background(),
		newOneTime(models.KindEmailVerification, "verify-2", uid, time.Hour)))

	_, err := st.ConsumeOneTimeToken(context.Background(), models.KindEmailVerification, "verify-1")
	require.NoError(t, err)

	_, err = st.ConsumeOneTimeToken(context.Background(), models.KindEmailVerification, "verify-2")
	require.NoError(t, err)
}

// TestIntegration_SaveOneTimeToken_AlreadyExpired — запись с истёкшим сроком
// отвергается до обращения к Redis.
func TestIntegration_SaveOneTimeToken_AlreadyExpired(t *testing.T) {
	st, cleanup := startRedis(t, defaultSessionCfg(), defaultOneTimeCfg())
	defer cleanup()

	rec := newOneTime(models.KindEmailVerification, "stale", uuid.New(), -time.Minute)
	require.Error(t, st.SaveOneTimeToken(context.Background(), rec))
}

// errorsIsAny сообщает, совпадает ли ошибка хотя бы с одной из целевых.
func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
