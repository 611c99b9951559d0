package domain

import "time"

type Organisation struct {
	ID          string
	Name        string
	Description string // optional, defaults to ""
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Membership marks a user as belonging to an organisation. The pair is the
// whole identity; there is no role or weight attached.
type Membership struct {
	UserID    string
	OrgID     string
	CreatedAt time.Time
}
