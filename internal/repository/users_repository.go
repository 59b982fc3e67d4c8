package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/pkg/cleanup"
	"github.com/limbo/advent/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register("closing usersRepo pgxpool", func() error {
		pool.Close()
		return nil
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(
		ctx,
		`INSERT INTO users (name, password_hash, culture, theme_preference) VALUES ($1, $2, $3, $4);`,
		user.Name,
		user.PasswordHash,
		nullableEnum(string(user.Culture)),
		nullableEnum(string(user.ThemePreference)),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	row := ur.conn.QueryRow(
		ctx,
		`SELECT id, name, password_hash, culture, streak, total_points, badges, theme_preference FROM users WHERE name = $1;`,
		name,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by name error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(
		ctx,
		`SELECT id, name, password_hash, culture, streak, total_points, badges, theme_preference FROM users WHERE id = $1;`,
		uid,
	)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return user, nil
}

func (ur *UsersRepository) UpdateDerived(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(
		ctx,
		`UPDATE users SET streak = $1, total_points = $2, badges = $3, theme_preference = $4 WHERE id = $5;`,
		user.Streak,
		user.TotalPoints,
		user.Badges,
		nullableEnum(string(user.ThemePreference)),
		user.ID,
	)
	if err != nil {
		return errors.New("updating user derived fields error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := ur.conn.Exec(ctx, `DELETE FROM users WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		user    entity.User
		culture *string
		theme   *string
	)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&culture,
		&user.Streak,
		&user.TotalPoints,
		&user.Badges,
		&theme,
	)
	if err != nil {
		return nil, err
	}
	if culture != nil {
		user.Culture = entity.Culture(*culture)
	}
	if theme != nil {
		user.ThemePreference = entity.ThemePreference(*theme)
	}
	return &user, nil
}

func nullableEnum(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
