package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/advent/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
	Culture  string `validate:"omitempty,culture"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type DailyChallengeServiceI interface {
	// Returns today's assignment, creating one via mood-based selection when
	// the user has none yet. Idempotent per calendar day
	GetOrAssign(ctx context.Context, uid uuid.UUID, mood entity.Mood) (*entity.Assignment, error)
	// Shows the challenge that Confirm would assign, without persisting
	Preview(ctx context.Context, uid uuid.UUID, mood entity.Mood) (*entity.Challenge, error)
	// Persists the previewed challenge. Fails with ErrPreviewMismatch when
	// challengeID isn't the most recently previewed one for that mood
	Confirm(ctx context.Context, uid, challengeID uuid.UUID, mood entity.Mood) (*entity.Assignment, error)
	// User-chosen challenge, bypasses selection. Idempotent per user+challenge+day
	Start(ctx context.Context, uid, challengeID uuid.UUID, mood entity.Mood) (*entity.Assignment, error)
	// Deletes all ASSIGNED rows of the user, returns deleted count
	ClearPending(ctx context.Context, uid uuid.UUID) (int, error)
	// ASSIGNED -> COMPLETED transition for an assignment owned by uid
	Complete(ctx context.Context, id, uid uuid.UUID) (*entity.Assignment, error)
	// Lists the user's assignments, newest first
	GetUserAssignments(ctx context.Context, uid uuid.UUID) ([]entity.Assignment, error)
	// Same filtered by status
	GetUserAssignmentsByStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) ([]entity.Assignment, error)
	// Assigned/completed totals with completion percentage
	Progress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error)
}

type BadgeServiceI interface {
	// Recomputes streak, points and badge set from completion history,
	// persists the user when something changed, returns newly unlocked badges
	EvaluateBadges(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error)
	// Badge catalog ordered by title
	Catalog(ctx context.Context) ([]entity.Badge, error)
	// Seeds the static badge catalog on startup
	EnsureCatalog(ctx context.Context) error
}
