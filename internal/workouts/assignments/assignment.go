package assignments

import (
	"fmt"
	"time"

	"github.com/2beens/gymweeks/pkg"
)

var (
	ErrNoActiveAssignment = fmt.Errorf("active week assignment %w", pkg.ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", pkg.ErrNotFound)
)

// Assignment binds a user to a week template starting on a given date.
type Assignment struct {
	ID               int       `json:"id"`
	UserID           int       `json:"userId"`
	WeekTemplateID   int       `json:"weekTemplateId"`
	WeekTemplateName string    `json:"weekTemplateName"`
	StartDate        pkg.Date  `json:"startDate"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AssignWeekRequest struct {
	WeekTemplateID int       `json:"weekTemplateId"`
	StartDate      *pkg.Date `json:"startDate,omitempty"`
}

type RenewRequest struct {
	StartDate *pkg.Date `json:"startDate,omitempty"`
}
