// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package runner loads puzzle inputs, runs the registered solvers and
// records their answers.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mdhender/aoc2020"
	"github.com/mdhender/aoc2020/days"
	"github.com/mdhender/aoc2020/inputs"
	"github.com/mdhender/aoc2020/store"
	"github.com/spf13/afero"
)

// Service runs days against the input files in a directory.
type Service struct {
	store   RunnerStore
	dir     string
	fs      afero.Fs
	logger  *slog.Logger
	options []inputs.Option
	target  string
}

// RunnerStore defines the store operations needed by Service.
type RunnerStore interface {
	InsertRun(ctx context.Context, run *store.Run) (int64, error)
	InsertAnswer(ctx context.Context, answer *store.Answer) (int64, error)
}

// Targeted is implemented by solvers that answer questions about a
// configurable subject, like the bag color for day 7.
type Targeted interface {
	SetTarget(target string)
}

// NewService creates a new Service. A nil store disables recording
// and a nil logger discards log messages.
func NewService(store RunnerStore, dir string, logger *slog.Logger, options ...inputs.Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:   store,
		dir:     dir,
		fs:      afero.NewOsFs(),
		logger:  logger,
		options: options,
	}
}

// SetFS sets the filesystem for testing.
func (s *Service) SetFS(fs afero.Fs) {
	s.fs = fs
}

// SetTarget overrides the target of solvers that have one.
func (s *Service) SetTarget(target string) {
	s.target = target
}

// Part is the outcome of one part of a day.
type Part struct {
	No      int
	Status  string // one of the store.Answer status values
	Value   int
	Err     error
	Elapsed time.Duration
}

// Result is the outcome of running one day.
type Result struct {
	Day   int
	Name  string
	Parse time.Duration
	Parts [2]Part
}

// RunDay loads the day's input, parses it, and solves both parts.
// Days that are not registered are reported as unimplemented without
// reading any input. Solver failures are reported in the parts, not
// returned as errors.
func (s *Service) RunDay(ctx context.Context, no int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &Result{
		Day: no,
		Parts: [2]Part{
			{No: 1, Status: store.AnswerUnimplemented},
			{No: 2, Status: store.AnswerUnimplemented},
		},
	}

	day, ok := days.Lookup(no)
	if !ok {
		s.logger.Debug("runner: day is not registered", "day", no)
		return result, nil
	}
	result.Name = day.Name

	path := filepath.Join(s.dir, inputs.FileName(no))
	input, err := inputs.Load(s.fs, path, s.options...)
	if err != nil {
		return nil, &ErrReadInput{Day: no, Path: path, Err: err}
	}

	solver := day.New()
	if t, ok := solver.(Targeted); ok && s.target != "" {
		t.SetTarget(s.target)
	}

	started := time.Now()
	solver.Parse(input)
	result.Parse = time.Since(started)

	for i, solve := range []func() (int, error){solver.Part1, solver.Part2} {
		part := &result.Parts[i]
		started := time.Now()
		value, err := solve()
		part.Elapsed = time.Since(started)
		switch {
		case errors.Is(err, days.ErrUnimplemented):
			part.Status = store.AnswerUnimplemented
		case err != nil:
			part.Status = store.AnswerFailed
			part.Err = &ErrSolve{Day: no, Part: part.No, Err: err}
		default:
			part.Status, part.Value = store.AnswerOK, value
		}
		s.logger.Debug("runner: solved", "day", no, "part", part.No, "status", part.Status, "elapsed", part.Elapsed)
	}

	return result, nil
}

// Run runs the given days in order. With no days, it runs every day
// that has an input file. When the service has a store, the run and
// every answer are recorded.
//
// A day whose input can't be read fails both of its parts; the
// remaining days still run.
func (s *Service) Run(ctx context.Context, nos ...int) ([]*Result, error) {
	if len(nos) == 0 {
		files, err := inputs.CollectInputs(s.fs, s.dir, s.logger)
		if err != nil {
			return nil, &ErrReadInput{Path: s.dir, Err: err}
		}
		for _, file := range files {
			nos = append(nos, file.Day)
		}
		s.logger.Info("runner: found inputs", "dir", s.dir, "count", len(nos))
	}

	var runID int64
	if s.store != nil {
		var err error
		runID, err = s.store.InsertRun(ctx, &store.Run{
			Version:   aoc2020.Version().String(),
			StartedAt: time.Now().UTC(),
		})
		if err != nil {
			return nil, &ErrDatabase{Op: "insert run", Err: err}
		}
	}

	var results []*Result
	for _, no := range nos {
		result, err := s.RunDay(ctx, no)
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		if err != nil {
			s.logger.Error("runner: day failed", "day", no, "error", err)
			result = &Result{Day: no}
			if day, ok := days.Lookup(no); ok {
				result.Name = day.Name
			}
			for i := range result.Parts {
				result.Parts[i] = Part{No: i + 1, Status: store.AnswerFailed, Err: err}
			}
		}
		results = append(results, result)

		if s.store == nil {
			continue
		}
		for _, part := range result.Parts {
			answer := &store.Answer{
				RunID:   runID,
				Day:     result.Day,
				Part:    part.No,
				Status:  part.Status,
				Value:   part.Value,
				Elapsed: part.Elapsed,
			}
			if part.Err != nil {
				answer.ErrorCode, answer.ErrorMsg = ErrorCode(part.Err), part.Err.Error()
			}
			if _, err := s.store.InsertAnswer(ctx, answer); err != nil {
				return results, &ErrDatabase{Op: fmt.Sprintf("insert answer day %d part %d", result.Day, part.No), Err: err}
			}
		}
	}

	return results, nil
}
