package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/advent/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Writes back the derived fields only: streak, points, badges, theme
	UpdateDerived(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists every active challenge. The selector does its tier filtering
	// in memory over this pool
	GetActive(ctx context.Context) ([]entity.Challenge, error)
}

type AssignmentsRepositoryI interface {
	// Creates new assignment row. Returns ErrAssignmentExists on the
	// daily-per-day unique index
	Create(ctx context.Context, a *entity.Assignment) (uuid.UUID, error)
	// Searches assignment with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)
	// Lists user's DAILY rows starting at or after since, any status.
	// Backs the "already assigned today" check, which must see a row the
	// user has completed as well as a pending one
	GetDailyByUserSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.Assignment, error)
	// Finds the row for an exact user+challenge started at or after since
	GetByUserAndChallengeSince(ctx context.Context, uid, challengeID uuid.UUID, since time.Time) (*entity.Assignment, error)
	// Lists all assignments of a user
	GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.Assignment, error)
	// Lists user's assignments filtered by status
	GetByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) ([]entity.Assignment, error)
	// Category of the most recent assignment started strictly before the
	// given instant. Empty category when the user has no earlier assignment
	GetLatestCategoryBefore(ctx context.Context, uid uuid.UUID, before time.Time) (entity.ChallengeCategory, error)
	// Total assignment count for a user (drives the cross-cultural rotation)
	CountByUser(ctx context.Context, uid uuid.UUID) (int, error)
	// Count of user's assignments with given status
	CountByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) (int, error)
	// Completion timestamps of COMPLETED assignments, newest first
	GetCompletionTimesDesc(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Updates the mood snapshot on an existing row
	UpdateMood(ctx context.Context, id uuid.UUID, mood entity.Mood) error
	// ASSIGNED -> COMPLETED transition with completion timestamp
	Complete(ctx context.Context, id uuid.UUID, at time.Time) error
	// Bulk-deletes user's rows with given status, returns deleted count
	DeleteByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) (int, error)
}

type BadgesRepositoryI interface {
	// Lists the whole catalog ordered by title
	GetAllOrderedByTitle(ctx context.Context) ([]entity.Badge, error)
	// Inspects if badge with id is already seeded
	Exists(ctx context.Context, id string) (bool, error)
	// Inserts catalog badge
	Create(ctx context.Context, badge *entity.Badge) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
