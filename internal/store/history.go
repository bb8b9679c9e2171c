package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record is one persisted classification outcome.
type Record struct {
	ID         string
	Text       string
	Principles []string
	Verdict    string
	Threshold  float64
	CreatedAt  time.Time
}

// Append inserts a classification record. A nil Principles slice is
// stored as an empty set.
func (s *Store) Append(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Principles == nil {
		rec.Principles = []string{}
	}

	principles, err := json.Marshal(rec.Principles)
	if err != nil {
		return fmt.Errorf("encode principles: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO classifications (id, text, principles, verdict, threshold, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Text,
		string(principles),
		rec.Verdict,
		rec.Threshold,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert classification: %w", err)
	}
	return nil
}

// Recent returns the most recent records, newest first. limit <= 0
// means no limit.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, text, principles, verdict, threshold, created_at
		FROM classifications ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query classifications: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var principles, createdAt string
		if err := rows.Scan(&rec.ID, &rec.Text, &principles, &rec.Verdict, &rec.Threshold, &createdAt); err != nil {
			return nil, fmt.Errorf("scan classification: %w", err)
		}
		if err := json.Unmarshal([]byte(principles), &rec.Principles); err != nil {
			return nil, fmt.Errorf("decode principles: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the total number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM classifications").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count classifications: %w", err)
	}
	return n, nil
}
