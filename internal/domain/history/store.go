package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) InsertRun(ctx context.Context, run Run) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO optimizer_runs (canton, commune, profit, minimum_salary, step, best_salary, best_dividend, net_to_owner)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    RETURNING id
  `, run.Canton, run.Commune, run.Profit, run.MinimumSalary, run.Step, run.BestSalary, run.BestDividend, run.NetToOwner).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListRuns(ctx context.Context, limit, offset int) ([]Run, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, canton, commune, profit, minimum_salary, step, best_salary, best_dividend, net_to_owner, created_at
    FROM optimizer_runs
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Canton, &run.Commune, &run.Profit, &run.MinimumSalary, &run.Step, &run.BestSalary, &run.BestDividend, &run.NetToOwner, &run.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}
