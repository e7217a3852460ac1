package employee

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type Employee struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        *string    `json:"email"`
	PasswordHash *string    `json:"-"`
	Role         Role       `json:"role"`
	Position     *string    `json:"position"`
	IsActive     bool       `json:"is_active"`
	Gender       *string    `json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Phone        *string    `json:"phone"`
}
