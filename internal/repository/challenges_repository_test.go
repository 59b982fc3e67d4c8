package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/internal/repository"
	"github.com/limbo/advent/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var challengeColumns = []string{"id", "title", "description", "category", "energy_level", "culture", "active"}

func TestGetChallengeByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewChallengesRepoWithConn(mock)
	challenge := entity.Challenge{
		ID:          uuid.New(),
		Title:       "test_challenge",
		Description: "test_description",
		Category:    entity.CategoryFood,
		EnergyLevel: entity.EnergyMedium,
		Culture:     entity.CultureIndia,
		Active:      true,
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, title, description, category, energy_level, culture, active FROM challenges WHERE id = $1;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(challenge.ID).
			WillReturnRows(pgxmock.NewRows(challengeColumns).
				AddRow(challenge.ID, challenge.Title, challenge.Description,
					challenge.Category, challenge.EnergyLevel, challenge.Culture, challenge.Active),
			)
		result, err := repo.GetByID(ctx, challenge.ID)
		assert.NoError(t, err)
		assert.Equal(t, challenge, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(challenge.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, challenge.ID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(challenge.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, challenge.ID)
		assert.Error(t, err)
	})
}

func TestGetActiveChallenges(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewChallengesRepoWithConn(mock)
	challenges := []entity.Challenge{
		{ID: uuid.New(), Title: "first", Description: "d1", Category: entity.CategoryFood, EnergyLevel: entity.EnergyLow, Culture: entity.CultureGlobal, Active: true},
		{ID: uuid.New(), Title: "second", Description: "d2", Category: entity.CategoryFitness, EnergyLevel: entity.EnergyHigh, Culture: entity.CultureRussia, Active: true},
	}
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, title, description, category, energy_level, culture, active FROM challenges WHERE active = TRUE;`)
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(challengeColumns)
		for _, c := range challenges {
			rows.AddRow(c.ID, c.Title, c.Description, c.Category, c.EnergyLevel, c.Culture, c.Active)
		}
		mock.ExpectQuery(query).WillReturnRows(rows)
		result, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Equal(t, challenges, result)
	})
	t.Run("empty catalog", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(challengeColumns))
		result, err := repo.GetActive(ctx)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("db error"))
		_, err := repo.GetActive(ctx)
		assert.Error(t, err)
	})
}
