package response

import (
	"time"

	"verkstad_portal/internal/domain/entities"
)

type SessionResponse struct {
	SessionID   string    `json:"session_id"`
	Role        string    `json:"role"`
	ActorID     string    `json:"actor_id"`
	DisplayName string    `json:"display_name,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionID:   s.ID,
		Role:        string(s.Role),
		ActorID:     s.ActorID,
		DisplayName: s.DisplayName,
		ExpiresAt:   s.ExpiresAt,
	}
}
