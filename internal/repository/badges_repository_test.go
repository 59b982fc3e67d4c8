package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/advent/internal/repository"
	"github.com/limbo/advent/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetAllBadgesOrderedByTitle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	badges := []entity.Badge{
		{ID: "CHALLENGES_10_COMPLETED", Title: "10 Challenges Completed", Description: "d", Icon: "trophy", Criteria: "COMPLETED_CHALLENGES:10"},
		{ID: "STREAK_3_DAYS", Title: "3 Day Streak", Description: "d", Icon: "flame", Criteria: "STREAK_DAYS:3"},
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, title, description, icon, criteria FROM badges ORDER BY title ASC;`)
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "title", "description", "icon", "criteria"})
		for _, b := range badges {
			rows.AddRow(b.ID, b.Title, b.Description, b.Icon, b.Criteria)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.GetAllOrderedByTitle(ctx)
		assert.NoError(t, err)
		assert.Equal(t, badges, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.GetAllOrderedByTitle(ctx)
		assert.Error(t, err)
	})
}

func TestBadgeExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM badges WHERE id = $1);`)
	t.Run("exists", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("STREAK_3_DAYS").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		exists, err := repo.Exists(ctx, "STREAK_3_DAYS")
		assert.NoError(t, err)
		assert.True(t, exists)
	})
	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("UNKNOWN").
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		exists, err := repo.Exists(ctx, "UNKNOWN")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCreateBadge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewBadgesRepoWithConn(mock)
	badge := entity.Badge{
		ID:          "STREAK_3_DAYS",
		Title:       "3 Day Streak",
		Description: "Complete challenges for 3 consecutive days.",
		Icon:        "flame",
		Criteria:    "STREAK_DAYS:3",
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO badges (id, title, description, icon, criteria) VALUES ($1, $2, $3, $4, $5);`)
	args := []any{badge.ID, badge.Title, badge.Description, badge.Icon, badge.Criteria}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &badge)
		assert.NoError(t, err)
	})
	t.Run("concurrent seed is tolerated", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Create(ctx, &badge)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &badge)
		assert.Error(t, err)
	})
}
