package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/pkg/cleanup"
	"github.com/limbo/advent/pkg/entity"
)

type AssignmentsRepository struct {
	conn PgConnection
}

func NewAssignmentsRepo(cfg DBConfig) *AssignmentsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for assignmentsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for assignmentsRepo: " + err.Error())
	}
	cleanup.Register("closing assignmentsRepo pgxpool", func() error {
		pool.Close()
		return nil
	})
	return &AssignmentsRepository{
		conn: pool,
	}
}

func NewAssignmentsRepoWithConn(conn PgConnection) *AssignmentsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for assignmentsRepo: " + err.Error())
	}
	return &AssignmentsRepository{
		conn: conn,
	}
}

func (ar *AssignmentsRepository) Create(ctx context.Context, a *entity.Assignment) (uuid.UUID, error) {
	var id uuid.UUID
	row := ar.conn.QueryRow(
		ctx,
		`INSERT INTO assignments (user_id, challenge_id, status, source, start_time, assigned_day, mood)
		VALUES ($1, $2, $3, $4, $5, $5::date, $6) RETURNING id;`,
		a.UserID,
		a.ChallengeID,
		a.Status,
		a.Source,
		a.StartTime,
		a.Mood,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: a row for this user and day already exists
			case "23505":
				return uuid.UUID{}, errorvalues.ErrAssignmentExists
			// FK violation: the constraint name tells which side dangles
			case "23503":
				if strings.Contains(pgErr.ConstraintName, "challenge") {
					return uuid.UUID{}, errorvalues.ErrChallengeNotFound
				}
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating assignment error: " + err.Error())
	}
	return id, nil
}

func (ar *AssignmentsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT id, user_id, challenge_id, status, source, start_time, completion_time, mood
		FROM assignments WHERE id = $1;`,
		id,
	)
	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAssignmentNotFound
		}
		return nil, errors.New("getting assignment by id error: " + err.Error())
	}
	return a, nil
}

func (ar *AssignmentsRepository) GetDailyByUserSince(ctx context.Context, uid uuid.UUID, since time.Time) ([]entity.Assignment, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, challenge_id, status, source, start_time, completion_time, mood
		FROM assignments WHERE user_id = $1 AND source = $2 AND start_time >= $3;`,
		uid,
		entity.SourceDaily,
		since,
	)
	if err != nil {
		return nil, errors.New("getting daily assignments since error: " + err.Error())
	}
	return collectAssignments(rows)
}

func (ar *AssignmentsRepository) GetByUserAndChallengeSince(ctx context.Context, uid, challengeID uuid.UUID, since time.Time) (*entity.Assignment, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT id, user_id, challenge_id, status, source, start_time, completion_time, mood
		FROM assignments WHERE user_id = $1 AND challenge_id = $2 AND start_time >= $3 LIMIT 1;`,
		uid,
		challengeID,
		since,
	)
	a, err := scanAssignment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrAssignmentNotFound
		}
		return nil, errors.New("getting assignment by user and challenge error: " + err.Error())
	}
	return a, nil
}

func (ar *AssignmentsRepository) GetByUser(ctx context.Context, uid uuid.UUID) ([]entity.Assignment, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, challenge_id, status, source, start_time, completion_time, mood
		FROM assignments WHERE user_id = $1 ORDER BY start_time DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting assignments by uid error: " + err.Error())
	}
	return collectAssignments(rows)
}

func (ar *AssignmentsRepository) GetByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) ([]entity.Assignment, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, challenge_id, status, source, start_time, completion_time, mood
		FROM assignments WHERE user_id = $1 AND status = $2 ORDER BY start_time DESC;`,
		uid,
		status,
	)
	if err != nil {
		return nil, errors.New("getting assignments by status error: " + err.Error())
	}
	return collectAssignments(rows)
}

func (ar *AssignmentsRepository) GetLatestCategoryBefore(ctx context.Context, uid uuid.UUID, before time.Time) (entity.ChallengeCategory, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT c.category FROM assignments a JOIN challenges c ON c.id = a.challenge_id
		WHERE a.user_id = $1 AND a.start_time < $2 ORDER BY a.start_time DESC LIMIT 1;`,
		uid,
		before,
	)
	var category entity.ChallengeCategory
	if err := row.Scan(&category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", errors.New("getting latest category error: " + err.Error())
	}
	return category, nil
}

func (ar *AssignmentsRepository) CountByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM assignments WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting assignments: " + err.Error())
	}
	return count, nil
}

func (ar *AssignmentsRepository) CountByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) (int, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM assignments WHERE user_id = $1 AND status = $2;`,
		uid,
		status,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting assignments by status: " + err.Error())
	}
	return count, nil
}

func (ar *AssignmentsRepository) GetCompletionTimesDesc(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT completion_time FROM assignments
		WHERE user_id = $1 AND status = 'COMPLETED' AND completion_time IS NOT NULL
		ORDER BY completion_time DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting completion times error: " + err.Error())
	}
	defer rows.Close()
	result := make([]time.Time, 0)
	for rows.Next() {
		var at time.Time
		if err = rows.Scan(&at); err != nil {
			return nil, errors.New("completion time row parsing error: " + err.Error())
		}
		result = append(result, at)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion time rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *AssignmentsRepository) UpdateMood(ctx context.Context, id uuid.UUID, mood entity.Mood) error {
	ct, err := ar.conn.Exec(ctx, `UPDATE assignments SET mood = $1 WHERE id = $2;`, mood, id)
	if err != nil {
		return errors.New("updating assignment mood error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAssignmentNotFound
	}
	return nil
}

func (ar *AssignmentsRepository) Complete(ctx context.Context, id uuid.UUID, at time.Time) error {
	ct, err := ar.conn.Exec(
		ctx,
		`UPDATE assignments SET status = 'COMPLETED', completion_time = $1 WHERE id = $2 AND status = 'ASSIGNED';`,
		at,
		id,
	)
	if err != nil {
		return errors.New("completing assignment error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAssignmentNotFound
	}
	return nil
}

func (ar *AssignmentsRepository) DeleteByUserAndStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) (int, error) {
	ct, err := ar.conn.Exec(
		ctx,
		`DELETE FROM assignments WHERE user_id = $1 AND status = $2;`,
		uid,
		status,
	)
	if err != nil {
		return 0, errors.New("deleting assignments error: " + err.Error())
	}
	return int(ct.RowsAffected()), nil
}

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ChallengeID,
		&a.Status,
		&a.Source,
		&a.StartTime,
		&a.CompletionTime,
		&a.Mood,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAssignments(rows pgx.Rows) ([]entity.Assignment, error) {
	defer rows.Close()
	result := make([]entity.Assignment, 0)
	for rows.Next() {
		var a entity.Assignment
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.ChallengeID,
			&a.Status,
			&a.Source,
			&a.StartTime,
			&a.CompletionTime,
			&a.Mood,
		)
		if err != nil {
			return nil, errors.New("assignment row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected assignment rows error: " + rows.Err().Error())
	}
	return result, nil
}
