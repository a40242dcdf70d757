// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Answer status values.
const (
	AnswerOK            = "ok"
	AnswerUnimplemented = "unimplemented"
	AnswerFailed        = "failed"
)

// Run is one invocation of the runner.
type Run struct {
	ID        int64
	Version   string
	StartedAt time.Time
}

// Answer is the outcome of solving one part of one day.
type Answer struct {
	ID        int64
	RunID     int64
	Day       int
	Part      int
	Status    string
	Value     int    // valid when Status is AnswerOK
	ErrorCode string // set when Status is AnswerFailed
	ErrorMsg  string
	Elapsed   time.Duration
}

// InsertRun inserts a Run and returns its assigned ID.
func (s *SQLiteStore) InsertRun(ctx context.Context, run *Run) (int64, error) {
	const query = `
		INSERT INTO runs (version, started_at)
		VALUES (?, ?)
	`
	result, err := s.db.ExecContext(ctx, query,
		run.Version,
		run.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	run.ID, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get run id: %w", err)
	}
	return run.ID, nil
}

// LatestRun returns the most recent run.
// Returns nil if no run has been recorded.
func (s *SQLiteStore) LatestRun(ctx context.Context) (*Run, error) {
	const query = `
		SELECT id, version, started_at
		FROM runs
		ORDER BY id DESC
		LIMIT 1
	`
	var run Run
	var startedAt string
	err := s.db.QueryRowContext(ctx, query).Scan(&run.ID, &run.Version, &startedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get latest run: %w", err)
	}
	if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
		run.StartedAt = t
	}
	return &run, nil
}

// InsertAnswer inserts an Answer and returns its assigned ID.
func (s *SQLiteStore) InsertAnswer(ctx context.Context, answer *Answer) (int64, error) {
	const query = `
		INSERT INTO answers (run_id, day, part, status, answer, error_code, error_msg, elapsed_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	var value sql.NullInt64
	if answer.Status == AnswerOK {
		value = sql.NullInt64{Int64: int64(answer.Value), Valid: true}
	}
	result, err := s.db.ExecContext(ctx, query,
		answer.RunID,
		answer.Day,
		answer.Part,
		answer.Status,
		value,
		nullString(answer.ErrorCode),
		nullString(answer.ErrorMsg),
		answer.Elapsed.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert answer: %w", err)
	}
	answer.ID, err = result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get answer id: %w", err)
	}
	return answer.ID, nil
}

// ListAnswers returns the answers for a run ordered by day and part.
func (s *SQLiteStore) ListAnswers(ctx context.Context, runID int64) ([]Answer, error) {
	const query = `
		SELECT id, run_id, day, part, status, answer, error_code, error_msg, elapsed_us
		FROM answers
		WHERE run_id = ?
		ORDER BY day, part
	`
	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		var value sql.NullInt64
		var errorCode, errorMsg sql.NullString
		var elapsed int64
		if err := rows.Scan(&a.ID, &a.RunID, &a.Day, &a.Part, &a.Status, &value, &errorCode, &errorMsg, &elapsed); err != nil {
			return nil, err
		}
		a.Value = int(value.Int64)
		a.ErrorCode, a.ErrorMsg = errorCode.String, errorMsg.String
		a.Elapsed = time.Duration(elapsed) * time.Microsecond
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
