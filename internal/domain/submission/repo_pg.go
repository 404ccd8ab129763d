package submission

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const cols = `id, name, age, gender, sleep_hours, bmi, heart_rate,
	systolic, diastolic, prediction, tips, diet, exercise, submission_time`

func scan(row pgx.Row) (*Submission, error) {
	var s Submission
	err := row.Scan(&s.ID, &s.Name, &s.Age, &s.Gender, &s.SleepHours, &s.BMI,
		&s.HeartRate, &s.Systolic, &s.Diastolic, &s.Prediction,
		&s.Tips, &s.Diet, &s.Exercise, &s.SubmissionTime)
	return &s, err
}

func (r *repoPG) Insert(ctx context.Context, s *Submission) error {
	// Each insert runs in its own implicit transaction; RETURNING hands back
	// the sequence-assigned id and the server-side timestamp.
	err := r.pool.QueryRow(ctx, `
		INSERT INTO submissions (name, age, gender, sleep_hours, bmi, heart_rate,
			systolic, diastolic, prediction, tips, diet, exercise)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING id, submission_time`,
		s.Name, s.Age, s.Gender, s.SleepHours, s.BMI, s.HeartRate,
		s.Systolic, s.Diastolic, s.Prediction, s.Tips, s.Diet, s.Exercise,
	).Scan(&s.ID, &s.SubmissionTime)
	if err != nil {
		return fmt.Errorf("%w: insert: %v", ErrStorageUnavailable, err)
	}
	return nil
}

func (r *repoPG) SearchByName(ctx context.Context, substring string) ([]*Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM submissions WHERE name ILIKE '%' || $1 || '%' ORDER BY id`,
		substring)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM submissions ORDER BY submission_time DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collect(rows)
}

func (r *repoPG) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM submissions WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: delete: %v", ErrStorageUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

func collect(rows pgx.Rows) ([]*Submission, error) {
	var items []*Submission
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %v", ErrStorageUnavailable, err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate: %v", ErrStorageUnavailable, err)
	}
	return items, nil
}
