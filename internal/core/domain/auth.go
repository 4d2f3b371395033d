package domain

import "errors"

var ErrUnauthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")
var ErrUnavailable = errors.New("service unavailable")
var ErrValidation = errors.New("validation failed")

// Message is a user-facing notification returned by the auth endpoints.
type Message struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LoginResult carries the outcome of a login attempt. Token is empty when
// the credentials were rejected; Message explains either way.
type LoginResult struct {
	Token   string  `json:"token"`
	Message Message `json:"message"`
}

// Dashboard is the admin landing-page summary assembled server-side.
type Dashboard struct {
	TotalSalesCoaches              int           `json:"totalSalesCoaches"`
	TotalSalesAgents               int           `json:"totalSalesAgents"`
	TotalApplications              int           `json:"totalApplications"`
	IncompleteApplicationsThisWeek []Application `json:"incompleteApplicationsThisWeek"`
}
