package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/studyhive/auth-service/internal/models"
	logctx "github.com/studyhive/auth-service/internal/pkg/log"
	"github.com/studyhive/auth-service/internal/tenant"
)

// Authenticator — контракт проверки access-токена.
// Реализуется service.Service; вынесен в интерфейс ради подмены в тестах.
type Authenticator interface {
	AuthenticatePrincipal(ctx context.Context, accessToken string) (*models.Principal, error)
}

type ctxPrincipalKey struct{}

// PrincipalFrom достаёт аутентифицированного принципала из контекста.
// Отсутствие принципала — анонимный запрос, не ошибка.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	if p, ok := ctx.Value(ctxPrincipalKey{}).(*models.Principal); ok && p != nil {
		return p, true
	}

	return nil, false
}

// Authenticate — пайплайн аутентификации запроса.
//
// Терминальные состояния: Authenticated (принципал и tenant в контексте)
// либо Anonymous (запрос идёт дальше без них — публичные эндпоинты
// пропускаются, решение о доступе принимают обработчики).
//
// Шаги: извлечение Bearer-токена → проверка подписи → проверка сессии и
// blacklist → загрузка принципала из справочника → публикация principal
// и tenant в request-контекст. Любой сбой, включая панику внутри
// зависимостей, даёт Anonymous: отказ аутентификации никогда не роняет
// обработку запроса.
//
// Tenant живёт только в контексте этого запроса и исчезает вместе с ним;
// ошибочные ветки дополнительно проходят через tenant.Clear, чтобы
// частично собранный контекст не ушёл дальше по цепочке.
func Authenticate(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, ok := authenticate(r.Context(), auth, bearerToken(r))
			if !ok {
				// Anonymous: исходный контекст, без principal/tenant.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticate выполняет шаги пайплайна и собирает контекст запроса.
// Возвращает ok=false для анонимного исхода.
func authenticate(ctx context.Context, auth Authenticator, token string) (out context.Context, ok bool) {
	if token == "" {
		return ctx, false
	}

	// Паника в зависимостях (сторедж, справочник) не должна уронить
	// запрос: восстанавливаемся в Anonymous с чистым контекстом.
	defer func() {
		if rec := recover(); rec != nil {
			logctx.From(ctx).LogAttrs(ctx, slog.LevelError, "auth_panic_recovered",
				slog.Any("reason", rec),
			)
			out = tenant.Clear(ctx)
			ok = false
		}
	}()

	principal, err := auth.AuthenticatePrincipal(ctx, token)
	if err != nil {
		return tenant.Clear(ctx), false
	}

	ctx = context.WithValue(ctx, ctxPrincipalKey{}, principal)
	ctx = tenant.Into(ctx, principal.UniversityID)

	return ctx, true
}

// bearerToken извлекает Bearer-токен из Authorization ("" — если его нет).
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
