package request

import "strings"

// OpenSessionRequest carries the bearer token the SPA obtained at sign-in.
type OpenSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

func (r OpenSessionRequest) ResolveToken() string {
	return strings.TrimPrefix(strings.TrimSpace(r.Token), "Bearer ")
}
