package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/studyhive/auth-service/internal/config"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:               "unit-test-secret-0123456789abcdef-0123",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTL:         168 * time.Hour,
		ExtendedRefreshTokenTTL: 720 * time.Hour,
		Issuer:                  "auth-service",
		Audience:                []string{"studyhive-backend"},
	}
}

func newSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := New(testAuthCfg())
	require.NoError(t, err)
	return s
}

func TestNew_RejectsWeakSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthCfg()
	cfg.JWTSecret = "short"

	_, err := New(cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrWeakSecret)

	cfg.JWTSecret = ""
	_, err = New(cfg)
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrWeakSecret)
}

func TestIssueAccessToken_AndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()

	at, exp, err := s.IssueAccessToken(uid)
	require.NoError(t, err)
	require.NotEmpty(t, at)
	require.WithinDuration(t, time.Now().Add(testAuthCfg().AccessTokenTTL), exp, 2*time.Second)

	claims, err := s.Verify(at)
	require.NoError(t, err)
	require.Equal(t, uid, claims.PrincipalID)
	require.False(t, claims.IsRefresh)
	require.False(t, claims.RememberMe)
	require.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
}

func TestVerify_ExpiredToken_InvalidUniformly(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()

	at, _, err := s.IssueAccessToken(uid)
	require.NoError(t, err)

	// Сдвигаем часы за срок токена (с запасом на leeway).
	s.WithClock(func() time.Time {
		return time.Now().Add(testAuthCfg().AccessTokenTTL + time.Minute)
	})

	_, err = s.Verify(at)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_MalformedAndExpired_Indistinguishable(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()

	at, _, err := s.IssueAccessToken(uid)
	require.NoError(t, err)

	s.WithClock(func() time.Time {
		return time.Now().Add(testAuthCfg().AccessTokenTTL + time.Minute)
	})

	_, expiredErr := s.Verify(at)
	_, malformedErr := s.Verify("not-a-jwt-at-all")

	// Оба случая — один и тот же sentinel, без различимых деталей.
	require.ErrorIs(t, expiredErr, ErrInvalidToken)
	require.ErrorIs(t, malformedErr, ErrInvalidToken)
}

func TestVerify_WrongAlg_WrongSecret_Rejected(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()
	now := time.Now().UTC()
	cfg := testAuthCfg()

	mk := func(method jwt.SigningMethod, secret string) string {
		claims := jwt.MapClaims{
			"iss": cfg.Issuer,
			"sub": uid.String(),
			"aud": cfg.Audience,
			"exp": now.Add(cfg.AccessTokenTTL).Unix(),
			"iat": now.Unix(),
		}
		signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return signed
	}

	_, err := s.Verify(mk(jwt.SigningMethodHS512, cfg.JWTSecret))
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(mk(jwt.SigningMethodHS256, "another-secret-that-is-long-enough-000"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRefreshToken_RememberMe_ExtendsTTL(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()
	cfg := testAuthCfg()

	_, exp, err := s.IssueRefreshToken(uid, false)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(cfg.RefreshTokenTTL), exp, 2*time.Second)

	rt, extExp, err := s.IssueRefreshToken(uid, true)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(cfg.ExtendedRefreshTokenTTL), extExp, 2*time.Second)

	claims, err := s.Verify(rt)
	require.NoError(t, err)
	require.True(t, claims.IsRefresh)
	require.True(t, claims.RememberMe)
}

func TestIsRefreshToken(t *testing.T) {
	t.Parallel()

	s := newSigner(t)
	uid := uuid.New()

	at, _, err := s.IssueAccessToken(uid)
	require.NoError(t, err)
	rt, _, err := s.IssueRefreshToken(uid, false)
	require.NoError(t, err)

	require.False(t, s.IsRefreshToken(at))
	require.True(t, s.IsRefreshToken(rt))

	// Ошибка проверки трактуется как false.
	require.False(t, s.IsRefreshToken("garbage"))
}
