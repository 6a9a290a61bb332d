package models

import (
	"time"

	"github.com/google/uuid"
)

// Role — роль принципала в рамках университета.
type Role string

const (
	RoleStudent    Role = "STUDENT"
	RoleSupervisor Role = "SUPERVISOR"
	RoleAdmin      Role = "ADMIN"
)

// Scope — набор прав, выводимый из роли.
type Scope struct {
	// ManageProjects — создание/изменение проектов и задач.
	ManageProjects bool
	// ManageDepartments — администрирование кафедр и участников.
	ManageDepartments bool
	// ReviewDeliverables — проверка и оценка сдаваемых работ.
	ReviewDeliverables bool
}

// Scope отображает роль в набор прав.
// Чистая функция без иерархий ролей: роль — это данные, а не тип.
func (r Role) Scope() Scope {
	switch r {
	case RoleAdmin:
		return Scope{ManageProjects: true, ManageDepartments: true, ReviewDeliverables: true}
	case RoleSupervisor:
		return Scope{ManageProjects: true, ReviewDeliverables: true}
	case RoleStudent:
		return Scope{ManageProjects: true}
	default:
		return Scope{}
	}
}

// Principal — учётная запись пользователя из справочника.
//
// UniversityID — идентификатор тенанта (университета); по нему строится
// row-level-фильтрация данных на нижних слоях.
type Principal struct {
	ID           uuid.UUID
	UniversityID uuid.UUID
	Email        string
	Role         Role
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
