package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/advent/pkg/cleanup"
	"github.com/limbo/advent/pkg/entity"
)

type BadgesRepository struct {
	conn PgConnection
}

func NewBadgesRepo(cfg DBConfig) *BadgesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for badgesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	cleanup.Register("closing badgesRepo pgxpool", func() error {
		pool.Close()
		return nil
	})
	return &BadgesRepository{
		conn: pool,
	}
}

func NewBadgesRepoWithConn(conn PgConnection) *BadgesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for badgesRepo: " + err.Error())
	}
	return &BadgesRepository{
		conn: conn,
	}
}

func (br *BadgesRepository) GetAllOrderedByTitle(ctx context.Context) ([]entity.Badge, error) {
	rows, err := br.conn.Query(
		ctx,
		`SELECT id, title, description, icon, criteria FROM badges ORDER BY title ASC;`,
	)
	if err != nil {
		return nil, errors.New("getting badges error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Badge, 0)
	for rows.Next() {
		var b entity.Badge
		err = rows.Scan(&b.ID, &b.Title, &b.Description, &b.Icon, &b.Criteria)
		if err != nil {
			return nil, errors.New("badge row parsing error: " + err.Error())
		}
		result = append(result, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected badge rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (br *BadgesRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	row := br.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM badges WHERE id = $1);`, id)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting if badge exists error: " + err.Error())
	}
	return exists, nil
}

func (br *BadgesRepository) Create(ctx context.Context, badge *entity.Badge) error {
	_, err := br.conn.Exec(
		ctx,
		`INSERT INTO badges (id, title, description, icon, criteria) VALUES ($1, $2, $3, $4, $5);`,
		badge.ID,
		badge.Title,
		badge.Description,
		badge.Icon,
		badge.Criteria,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// Unique violation: seeded concurrently, nothing to do
			if pgErr.Code == "23505" {
				return nil
			}
		}
		return errors.New("creating badge error: " + err.Error())
	}
	return nil
}
