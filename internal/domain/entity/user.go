package entity

import "time"

// Roles válidos para User.
const (
	RoleTechnician = "technician"
	RoleOffice     = "office"
)

// User representa un usuario del sistema: técnico de campo u oficina.
type User struct {
	ID           string
	Name         string
	Email        string // único
	Role         string // technician, office
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario tiene alguno de los roles dados.
func (u *User) HasRole(roles ...string) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleTechnician || role == RoleOffice
}
