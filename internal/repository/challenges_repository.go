package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/pkg/cleanup"
	"github.com/limbo/advent/pkg/entity"
)

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register("closing challengesRepo pgxpool", func() error {
		pool.Close()
		return nil
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var c entity.Challenge
	row := cr.conn.QueryRow(
		ctx,
		`SELECT id, title, description, category, energy_level, culture, active FROM challenges WHERE id = $1;`,
		id,
	)
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.EnergyLevel, &c.Culture, &c.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &c, nil
}

func (cr *ChallengesRepository) GetActive(ctx context.Context) ([]entity.Challenge, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, title, description, category, energy_level, culture, active FROM challenges WHERE active = TRUE;`,
	)
	if err != nil {
		return nil, errors.New("getting active challenges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Challenge, 0)
	for rows.Next() {
		var c entity.Challenge
		err = rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.EnergyLevel, &c.Culture, &c.Active)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected challenge rows error: " + rows.Err().Error())
	}
	return result, nil
}
