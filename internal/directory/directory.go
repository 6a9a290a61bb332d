// directory задаёт контракт справочника пользователей университета.
// Ядро аутентификации потребляет его только через этот интерфейс;
// схема и жизненный цикл учётных записей — зона ответственности
// остального бэкенда.
package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/studyhive/auth-service/internal/models"
)

var (
	// ErrNotFound — принципал не найден.
	ErrNotFound = errors.New("principal not found")
	// ErrAlreadyExists — нарушение уникальности email.
	ErrAlreadyExists = errors.New("principal already exists")
)

// Directory выполняет чтение учётных записей.
// Обе операции возвращают принципала вместе с флагом Active:
// решение о допуске неактивного принципала принимает вызывающая сторона.
type Directory interface {
	// PrincipalByEmail находит принципала по email (регистронезависимо).
	PrincipalByEmail(ctx context.Context, email string) (*models.Principal, error)
	// PrincipalByID находит принципала по ID.
	PrincipalByID(ctx context.Context, id uuid.UUID) (*models.Principal, error)
}
