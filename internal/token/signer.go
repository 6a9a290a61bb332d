// token реализует выпуск и проверку подписанных токенов (HS256).
//
// Подписант не имеет состояния: валидность токена — чистая функция секрета,
// самого токена и текущего времени. Blacklist и сессии живут уровнем выше.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/studyhive/auth-service/internal/config"
)

// typeRefresh — значение claim typ у refresh-токенов.
const typeRefresh = "refresh"

// ErrInvalidToken — токен не прошёл проверку.
// Причина (битая подпись, формат, истёкший срок) намеренно не различается:
// различимый ответ — это оракул для перебора. Транспорт: HTTP 401.
var ErrInvalidToken = errors.New("invalid token")

// Claims — результат успешной проверки токена.
type Claims struct {
	PrincipalID uuid.UUID
	IssuedAt    time.Time
	ExpiresAt   time.Time
	IsRefresh   bool
	RememberMe  bool
}

type signedClaims struct {
	// Type — "refresh" у refresh-токенов, пусто у access.
	Type       string `json:"typ,omitempty"`
	RememberMe bool   `json:"rmb,omitempty"`
	jwt.RegisteredClaims
}

// Signer выпускает и проверяет токены одним process-wide секретом.
// Экземпляр безопасен для конкурентного использования.
type Signer struct {
	cfg config.AuthConfig
	now func() time.Time
}

// New создаёт Signer. Секрет короче допустимого отклоняется на старте —
// та же проверка, что в config.Validate, продублирована здесь, чтобы
// Signer нельзя было собрать в обход загрузчика конфигурации.
func New(cfg config.AuthConfig) (*Signer, error) {
	const op = "token.New"

	if err := config.ValidateSecret(cfg.JWTSecret); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Signer{cfg: cfg, now: time.Now}, nil
}

// WithClock подменяет источник времени (для тестов).
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

// IssueAccessToken выпускает access-токен для принципала.
func (s *Signer) IssueAccessToken(principalID uuid.UUID) (string, time.Time, error) {
	const op = "token.IssueAccessToken"

	now := s.now().UTC()
	expiresAt := now.Add(s.cfg.AccessTokenTTL)

	signed, err := s.sign(signedClaims{
		RegisteredClaims: s.registered(principalID, now, expiresAt),
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// IssueRefreshToken выпускает refresh-токен; rememberMe продлевает срок
// до ExtendedRefreshTokenTTL.
func (s *Signer) IssueRefreshToken(principalID uuid.UUID, rememberMe bool) (string, time.Time, error) {
	const op = "token.IssueRefreshToken"

	ttl := s.cfg.RefreshTokenTTL
	if rememberMe {
		ttl = s.cfg.ExtendedRefreshTokenTTL
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)

	signed, err := s.sign(signedClaims{
		Type:             typeRefresh,
		RememberMe:       rememberMe,
		RegisteredClaims: s.registered(principalID, now, expiresAt),
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// Verify проверяет подпись и срок действия токена.
// Любая неуспешная проверка возвращает ErrInvalidToken без деталей.
func (s *Signer) Verify(tokenStr string) (*Claims, error) {
	const op = "token.Verify"

	parsed, err := jwt.ParseWithClaims(tokenStr, &signedClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := parsed.Claims.(*signedClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	out := &Claims{
		PrincipalID: uid,
		IsRefresh:   claims.Type == typeRefresh,
		RememberMe:  claims.RememberMe,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// IsRefreshToken сообщает, является ли токен refresh-токеном.
// Ошибка проверки трактуется как false.
func (s *Signer) IsRefreshToken(tokenStr string) bool {
	claims, err := s.Verify(tokenStr)
	if err != nil {
		return false
	}

	return claims.IsRefresh
}

func (s *Signer) registered(principalID uuid.UUID, now, expiresAt time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		// Уникальный jti: два токена, выпущенные в одну секунду,
		// не совпадают байт в байт, ротация всегда меняет строку.
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    s.cfg.Issuer,
		Subject:   principalID.String(),
		Audience:  jwt.ClaimStrings(s.cfg.Audience),
	}
}

func (s *Signer) sign(claims signedClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}
