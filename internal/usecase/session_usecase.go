package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"verkstad_portal/internal/domain/entities"
	"verkstad_portal/internal/infrastructure/metrics"
	"verkstad_portal/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionExpired   = errors.New("session expired")
	ErrRoleNotAllowed   = errors.New("role not allowed for this operation")
)

const (
	SessionClearLogout       = "logout"
	SessionClearUnauthorized = "unauthorized"
	SessionClearExpired      = "expired"
)

// ISessionUseCase manages the explicit session object handed to every other use case.
//
//   - Open: sign-in hand-over of the bearer token (init)
//   - Resolve: per-request lookup
//   - Clear: logout, backend 401 or expiry
type ISessionUseCase interface {
	Open(ctx context.Context, token string) (entities.Session, error)
	Decode(token string) (entities.Session, error)
	Resolve(ctx context.Context, id string) (entities.Session, error)
	Clear(ctx context.Context, id string, reason string) error
}

type SessionUseCase struct {
	repo    interfaces.ISessionRepository
	ttl     time.Duration
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(repo interfaces.ISessionRepository, ttl time.Duration, m *metrics.Metrics) *SessionUseCase {
	return &SessionUseCase{repo: repo, ttl: ttl, metrics: m, now: time.Now}
}

// tokenClaims are the claims the marketplace puts in its bearer tokens.
type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
	Name string `json:"name,omitempty"`
}

// Decode reads the actor out of a bearer token without persisting anything.
//
// The signature is not verified here: the marketplace backend verifies the token on
// every call, this service only needs the actor identity to route and classify.
func (u *SessionUseCase) Decode(token string) (entities.Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return entities.Session{}, ErrInvalidToken
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		log.Printf("[session][usecase] token parse failed err=%v", err)
		return entities.Session{}, ErrInvalidToken
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return entities.Session{}, ErrInvalidToken
	}
	role, ok := entities.ParseRole(strings.ToUpper(strings.TrimSpace(claims.Role)))
	if !ok {
		return entities.Session{}, ErrInvalidRole
	}

	now := u.now().UTC()
	expiresAt := now.Add(u.ttl)
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time.UTC()
		if !exp.After(now) {
			return entities.Session{}, ErrTokenExpired
		}
		if u.ttl <= 0 || exp.Before(expiresAt) {
			expiresAt = exp
		}
	}

	return entities.Session{
		Token:       token,
		Role:        role,
		ActorID:     subject,
		DisplayName: claims.Name,
		CreatedAt:   now,
		ExpiresAt:   expiresAt,
	}, nil
}

func (u *SessionUseCase) Open(ctx context.Context, token string) (entities.Session, error) {
	s, err := u.Decode(token)
	if err != nil {
		return entities.Session{}, err
	}
	s.ID = uuid.NewString()

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] create failed actor_id=%s err=%v", s.ActorID, err)
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] opened session_id=%s role=%s actor_id=%s", created.ID, created.Role, created.ActorID)
	return created, nil
}

func (u *SessionUseCase) Resolve(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	if s.IsExpired(u.now()) {
		// DynamoDB TTL deletion is lazy; drop it ourselves.
		if err := u.Clear(ctx, id, SessionClearExpired); err != nil {
			log.Printf("[session][usecase] expired session cleanup failed session_id=%s err=%v", id, err)
		}
		return entities.Session{}, ErrSessionExpired
	}
	return s, nil
}

func (u *SessionUseCase) Clear(ctx context.Context, id string, reason string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[session][usecase] clear failed session_id=%s reason=%s err=%v", id, reason, err)
		return err
	}
	u.metrics.SessionCleared(reason)
	log.Printf("[session][usecase] cleared session_id=%s reason=%s", id, reason)
	return nil
}

func requireRole(sess entities.Session, role entities.Role) error {
	if sess.Role != role || strings.TrimSpace(sess.ActorID) == "" {
		return ErrRoleNotAllowed
	}
	return nil
}
