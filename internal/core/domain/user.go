package domain

import "time"

// Role identifies what an authenticated user is allowed to see and do.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSalesAgent Role = "sales_agent"
	RoleSalesCoach Role = "sales_coach"
)

// Valid reports whether the role is one of the recognised values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSalesAgent, RoleSalesCoach:
		return true
	}
	return false
}

// User models an account in the sales organisation. The remote API owns
// the record; the console only ever holds the last fetched copy.
type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	IsDeleted bool      `json:"is_deleted"`
	CoachName string    `json:"coach_name,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name for display and select options.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// NewUser is the create/update payload for coaches and agents.
// Password is only set on create; CoachID only applies to agents.
type NewUser struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required"`
	Password  string `json:"password,omitempty"`
	IsActive  bool   `json:"is_active"`
	CoachID   int    `json:"coach_id,omitempty"`
	Role      Role   `json:"role,omitempty"`
}

// BankDetails is part of the profile form.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban"`
}

// Profile is the editable subset of the authenticated user's own record.
type Profile struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Mobile      string      `json:"mobile"`
	BankDetails BankDetails `json:"bank_details"`
}
