package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "Admin"
	RolePastor Role = "Pastor"
	RoleUsher  Role = "Usher"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RolePastor, RoleUsher:
		return true
	}
	return false
}

func (r Role) CanManageEvents() bool {
	return r == RoleAdmin || r == RolePastor
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Username string
	Role     Role
}
