package entities

import (
	"time"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWorkshop Role = "WORKSHOP"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleWorkshop, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Session is the signed-in actor. It is created when the SPA hands over the bearer
// token obtained at sign-in and cleared on logout or on a 401 from the backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - TTL attribute: ttl (epoch seconds, equal to ExpiresAt)
type Session struct {
	ID          string    `json:"id"`
	Token       string    `json:"-"`
	Role        Role      `json:"role"`
	ActorID     string    `json:"actor_id"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
