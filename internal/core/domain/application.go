package domain

import "time"

// ApplicationStatus is the completion state of a customer application.
type ApplicationStatus string

const (
	ApplicationCompleted  ApplicationStatus = "completed"
	ApplicationIncomplete ApplicationStatus = "incomplete"
)

// Application is a customer application submitted by a sales agent.
type Application struct {
	ID                int               `json:"id"`
	SalesAgentID      int               `json:"sales_agent_id"`
	SalesAgentName    string            `json:"sales_agent_name,omitempty"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Mobile            string            `json:"mobile"`
	CPR               string            `json:"cpr"`
	ApplicationStatus ApplicationStatus `json:"application_status"`
	DateSubmitted     string            `json:"date_submitted"`
	IsDeleted         bool              `json:"is_deleted"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// NewApplication is the create/update payload for an application.
type NewApplication struct {
	FirstName         string            `json:"first_name" validate:"required"`
	LastName          string            `json:"last_name" validate:"required"`
	Mobile            string            `json:"mobile" validate:"required"`
	CPR               string            `json:"cpr" validate:"required"`
	ApplicationStatus ApplicationStatus `json:"application_status" validate:"required,oneof=completed incomplete"`
	DateSubmitted     string            `json:"date_submitted" validate:"required"`
}
