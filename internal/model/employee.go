package model

import "time"

// Roles for employees. Role resolution itself happens outside the service;
// the field only drives what the API lets a caller touch.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee is a team member with a weekly hour fund.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Email      string    `json:"email,omitempty"`
	WeeklyFund float64   `json:"weekly_fund"` // contracted hours per week
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsAdmin reports whether the employee has the admin role.
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// DailyFund is the average credited duration of one leave day.
func (e *Employee) DailyFund() float64 {
	return e.WeeklyFund / 5
}
