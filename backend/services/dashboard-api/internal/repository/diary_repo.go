package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"traillog/backend/services/dashboard-api/internal/models"
)

// DiaryRepository handles persistence of diary entries.
type DiaryRepository struct {
	db *sql.DB
}

// NewDiaryRepository returns repository.
func NewDiaryRepository(db *sql.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

// Create inserts a new diary entry and returns it with its assigned id.
func (r *DiaryRepository) Create(ctx context.Context, date, content string) (*models.DiaryEntry, error) {
	const query = `
		INSERT INTO diary_entries (date, content, created_at)
		VALUES ($1::date, $2, NOW())
		RETURNING id, date::text, content, created_at
	`
	var entry models.DiaryEntry
	if err := r.db.QueryRowContext(ctx, query, date, content).Scan(
		&entry.ID, &entry.Date, &entry.Content, &entry.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByRange returns entries within the inclusive date range, newest first.
// Empty bounds are open-ended.
func (r *DiaryRepository) ListByRange(ctx context.Context, from, to string) ([]models.DiaryEntry, error) {
	var conds []string
	var args []interface{}

	if from != "" {
		args = append(args, from)
		conds = append(conds, fmt.Sprintf("date >= $%d::date", len(args)))
	}
	if to != "" {
		args = append(args, to)
		conds = append(conds, fmt.Sprintf("date <= $%d::date", len(args)))
	}

	query := `SELECT id, date::text, content, created_at FROM diary_entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DiaryEntry
	for rows.Next() {
		var entry models.DiaryEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Content, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
