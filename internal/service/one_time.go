package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/studyhive/auth-service/internal/models"
	"github.com/studyhive/auth-service/internal/pkg/log"
	"github.com/studyhive/auth-service/internal/pkg/redact"
	"github.com/studyhive/auth-service/internal/store"
)

// IssueVerificationToken выпускает токен подтверждения email.
// Несколько одновременно живых verification-токенов допустимы:
// пользователь мог запросить повторное письмо.
func (s *Service) IssueVerificationToken(ctx context.Context, email string, userID uuid.UUID) (string, error) {
	const op = "service.one_time.IssueVerificationToken"

	return s.issueOneTime(ctx, op, models.KindEmailVerification, email, userID, s.cfg.VerificationTTL)
}

// IssueResetToken выпускает токен сброса пароля.
// Предыдущий живой reset-токен пользователя гасится хранилищем
// (инвариант одного живого токена).
func (s *Service) IssueResetToken(ctx context.Context, email string, userID uuid.UUID) (string, error) {
	const op = "service.one_time.IssueResetToken"

	return s.issueOneTime(ctx, op, models.KindPasswordReset, email, userID, s.cfg.ResetTTL)
}

// ConsumeVerificationToken атомарно потребляет verification-токен.
func (s *Service) ConsumeVerificationToken(ctx context.Context, tokenStr string) (*models.OneTimeToken, error) {
	const op = "service.one_time.ConsumeVerificationToken"

	return s.consumeOneTime(ctx, op, models.KindEmailVerification, tokenStr)
}

// ConsumeResetToken атомарно потребляет reset-токен.
func (s *Service) ConsumeResetToken(ctx context.Context, tokenStr string) (*models.OneTimeToken, error) {
	const op = "service.one_time.ConsumeResetToken"

	return s.consumeOneTime(ctx, op, models.KindPasswordReset, tokenStr)
}

// HasLiveResetToken сообщает о живом reset-токене пользователя.
func (s *Service) HasLiveResetToken(ctx context.Context, userID uuid.UUID) (bool, error) {
	const op = "service.one_time.HasLiveResetToken"

	ok, err := s.oneTime.HasLiveResetToken(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

func (s *Service) issueOneTime(ctx context.Context, op string, kind models.OneTimeKind, email string, userID uuid.UUID, ttl time.Duration) (string, error) {
	lg := log.From(ctx)

	plain, err := generateOpaqueToken()
	if err != nil {
		lg.Error("one_time_rand_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	rec := &models.OneTimeToken{
		Token:     plain,
		Kind:      kind,
		Email:     email,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.oneTime.SaveOneTimeToken(ctx, rec); err != nil {
		lg.Error("one_time_save_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return plain, nil
}

func (s *Service) consumeOneTime(ctx context.Context, op string, kind models.OneTimeKind, tokenStr string) (*models.OneTimeToken, error) {
	lg := log.From(ctx)

	rec, err := s.oneTime.ConsumeOneTimeToken(ctx, kind, tokenStr)
	if err != nil {
		// Отсутствующий, истёкший и уже потреблённый токен наружу
		// неразличимы: generic-ответ не подсказывает, что именно случилось.
		if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrTokenUsed) {
			lg.Warn("one_time_consume_rejected",
				slog.String("op", op),
				slog.String("kind", string(kind)),
				slog.String("token", redact.Token()),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrOneTimeTokenInvalid)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rec, nil
}

// generateOpaqueToken возвращает криптографически случайную непрозрачную
// строку: 32 байта энтропии в base64url.
func generateOpaqueToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
