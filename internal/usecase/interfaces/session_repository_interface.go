package interfaces

import (
	"context"

	"verkstad_portal/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for Session.
//
// GetByID returns a zero Session (empty ID) when nothing is stored under id.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
