package domain

import "time"

// Survey represents one accepted survey submission. Records are append-only:
// nothing in the application updates or deletes them once stored.
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
