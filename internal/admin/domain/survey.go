package domain

import "time"

// Survey is the admin-facing view of a stored submission.
type Survey struct {
	ID          string
	Name        string
	Gender      string
	Nationality string
	Email       string
	Phone       string
	Address     string
	Message     string
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}
