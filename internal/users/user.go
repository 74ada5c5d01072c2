package users

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/gymweeks/internal/auth"
	"github.com/2beens/gymweeks/internal/workouts/assignments"
	"github.com/2beens/gymweeks/pkg"
)

const MinPasswordLength = 8

var (
	ErrUserNotFound = fmt.Errorf("user %w", pkg.ErrNotFound)
	ErrEmailTaken   = fmt.Errorf("user with that email already exists: %w", pkg.ErrConflict)
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         auth.Role `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	PasswordHash string    `json:"-"`
}

type UserWithAssignment struct {
	User
	CurrentAssignment *assignments.Assignment `json:"currentAssignment"`
}

type Stats struct {
	TotalUsers             int `json:"totalUsers"`
	UsersWithAssignment    int `json:"usersWithAssignment"`
	UsersWithoutAssignment int `json:"usersWithoutAssignment"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Username = strings.TrimSpace(r.Username)
}

func (r RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return pkg.NewValidationError("invalid email [%s]", r.Email)
	}
	if r.Username == "" {
		return pkg.NewValidationError("username empty")
	}
	if len(r.Password) < MinPasswordLength {
		return pkg.NewValidationError("password must have at least %d characters", MinPasswordLength)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
