package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/studyhive/auth-service/internal/directory"
	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/pkg/log"
	"github.com/studyhive/auth-service/internal/pkg/redact"
	"github.com/studyhive/auth-service/internal/store"
)

// LoginUser выполняет вход по email+пароль и создаёт сессию.
// Неверные креды, неизвестный email и деактивированная учётка
// неразличимы для вызывающей стороны.
func (s *Service) LoginUser(ctx context.Context, email, password string, rememberMe bool, meta models.SessionMeta) (*models.TokenPair, *models.Principal, error) {
	const op = "service.auth.LoginUser"

	lg := log.From(ctx)

	normEmail := strings.ToLower(strings.TrimSpace(email))
	if normEmail == "" || password == "" {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	principal, err := s.dir.PrincipalByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if !principal.Active {
		lg.Warn("login_inactive_principal",
			slog.String("op", op),
			slog.String("email", redact.Email(normEmail)),
		)
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if !checkPassword(principal.PasswordHash, password) {
		return nil, nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	pair, err := s.IssueLoginTokens(ctx, principal, rememberMe, meta)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, principal, nil
}

// IssueLoginTokens выпускает пару токенов и создаёт сессию принципала,
// вытесняя предыдущую (single-session model). Ошибка хранилища на этом
// пути мутации уходит наружу — вызывающая сторона предложит повтор.
func (s *Service) IssueLoginTokens(ctx context.Context, principal *models.Principal, rememberMe bool, meta models.SessionMeta) (*models.TokenPair, error) {
	const op = "service.auth.IssueLoginTokens"

	lg := log.From(ctx)

	accessToken, accessExp, err := s.signer.IssueAccessToken(principal.ID)
	if err != nil {
		lg.Error("access_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, refreshExp, err := s.signer.IssueRefreshToken(principal.ID, rememberMe)
	if err != nil {
		lg.Error("refresh_token_sign_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	if meta.LoginAt.IsZero() {
		meta.LoginAt = now
	}

	sess := &models.Session{
		PrincipalID:  principal.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		LastSeenAt:   now,
		Meta:         meta,
	}

	if err := s.sessions.CreateSession(ctx, sess); err != nil {
		lg.Error("session_create_failed",
			slog.String("op", op),
			slog.String("principal_id", principal.ID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// RefreshTokens обновляет пару токенов по refresh-токену.
//
// Предъявленный refresh сверяется с текущим refresh сессии строго на
// равенство: stale-токен прошлой ротации отвергается, даже если его
// подпись и срок всё ещё валидны.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, uuid.UUID, error) {
	const op = "service.auth.RefreshTokens"

	lg := log.From(ctx)

	claims, err := s.signer.Verify(refreshToken)
	if err != nil || !claims.IsRefresh {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	sess, err := s.sessions.SessionByPrincipal(ctx, claims.PrincipalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			lg.Warn("refresh_no_session",
				slog.String("op", op),
				slog.String("principal_id", claims.PrincipalID.String()),
			)
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if sess.RefreshToken != refreshToken {
		lg.Warn("refresh_stale_token",
			slog.String("op", op),
			slog.String("principal_id", claims.PrincipalID.String()),
			slog.String("token", redact.Token()),
		)
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	newAccess, accessExp, err := s.signer.IssueAccessToken(claims.PrincipalID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	newRefresh, refreshExp, err := s.signer.IssueRefreshToken(claims.PrincipalID, claims.RememberMe)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.Refresh(ctx, claims.PrincipalID, newAccess, newRefresh); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Сессия исчезла между чтением и ротацией (logout на другом
			// устройстве). Ротация разлогиненного принципала — no-op:
			// сессию не создаём и существование её не раскрываем.
			lg.Warn("refresh_session_gone",
				slog.String("op", op),
				slog.String("principal_id", claims.PrincipalID.String()),
			)
		} else {
			return nil, uuid.Nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &models.TokenPair{
		AccessToken:      newAccess,
		RefreshToken:     newRefresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, claims.PrincipalID, nil
}

// Logout отзывает access-токен (blacklist) и удаляет сессию устройства.
func (s *Service) Logout(ctx context.Context, principalID uuid.UUID, accessToken string) error {
	const op = "service.auth.Logout"

	if err := s.sessions.Invalidate(ctx, principalID, accessToken); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LogoutAll отзывает текущий access-токен сессии принципала и удаляет её.
func (s *Service) LogoutAll(ctx context.Context, principalID uuid.UUID) error {
	const op = "service.auth.LogoutAll"

	if err := s.sessions.InvalidateAll(ctx, principalID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AuthenticatePrincipal проверяет access-токен и возвращает принципала.
//
// Путь чтения работает fail-closed: недоступность хранилища и любой сбой
// проверки превращаются в ErrInvalidToken — для аутентификации безопасный
// ответ по умолчанию это отказ.
func (s *Service) AuthenticatePrincipal(ctx context.Context, accessToken string) (*models.Principal, error) {
	const op = "service.auth.AuthenticatePrincipal"

	lg := log.From(ctx)

	claims, err := s.signer.Verify(accessToken)
	if err != nil || claims.IsRefresh {
		// Refresh-токен в заголовке Authorization не принимается.
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	ok, err := s.sessions.IsValid(ctx, claims.PrincipalID, accessToken)
	if err != nil {
		lg.Error("session_check_failed",
			slog.String("op", op),
			slog.String("principal_id", claims.PrincipalID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	principal, err := s.dir.PrincipalByID(ctx, claims.PrincipalID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}

		lg.Error("directory_lookup_failed",
			slog.String("op", op),
			slog.String("principal_id", claims.PrincipalID.String()),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if !principal.Active {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return principal, nil
}

// HasActiveSession сообщает о наличии живой сессии принципала.
func (s *Service) HasActiveSession(ctx context.Context, principalID uuid.UUID) (bool, error) {
	const op = "service.auth.HasActiveSession"

	ok, err := s.sessions.HasActiveSession(ctx, principalID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
