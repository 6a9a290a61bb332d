// tenant реализует request-scoped распространение идентификатора тенанта
// (университета) аутентифицированного принципала. По нему нижние слои
// строят row-level-фильтрацию данных.
//
// Носитель — context.Context запроса, поэтому значение живёт ровно столько,
// сколько сам запрос, и не может утечь между переиспользуемыми горутинами.
// Clear нужен ошибочным веткам середины пайплайна аутентификации: частично
// установленный tenant не должен пережить отказ.
package tenant

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// Into кладёт идентификатор тенанта в контекст.
func Into(ctx context.Context, universityID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, universityID)
}

// From достаёт идентификатор тенанта из контекста.
func From(ctx context.Context) (uuid.UUID, bool) {
	if v := ctx.Value(ctxKey{}); v != nil {
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, true
		}
	}

	return uuid.Nil, false
}

// Clear возвращает контекст без идентификатора тенанта.
func Clear(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, uuid.Nil)
}
