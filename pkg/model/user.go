package model

import (
	"strings"
	"time"
)

const RoleUser = "user"

// DefaultUsername is used when a user registers without supplying a name.
const DefaultUsername = "Anonymous"

// User domain object defining a registered platform user. Users are created on
// first registration and never updated afterwards.
// swagger:model
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `json:"username"`
	Email     string    `gorm:"index;unique" json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	LastLogIn time.Time `json:"last_log_in"`
}

// NormalizeEmail returns the canonical form of an email address used as a
// lookup and comparison key: lowercased and stripped of surrounding
// whitespace. All emails are stored normalized.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
