// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runner

import (
	"errors"
	"fmt"
)

// ErrReadInput is returned when a day's input can't be read.
type ErrReadInput struct {
	Day  int
	Path string
	Err  error
}

func (e *ErrReadInput) Error() string {
	return fmt.Sprintf("day %d: read %s: %v", e.Day, e.Path, e.Err)
}

func (e *ErrReadInput) Unwrap() error {
	return e.Err
}

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// ErrSolve is returned when a solver can't answer a part.
type ErrSolve struct {
	Day  int
	Part int
	Err  error
}

func (e *ErrSolve) Error() string {
	return fmt.Sprintf("day %d: part %d: %v", e.Day, e.Part, e.Err)
}

func (e *ErrSolve) Unwrap() error {
	return e.Err
}

// Error code constants for database storage.
const (
	ErrCodeReadInput = "READ_INPUT"
	ErrCodeDatabase  = "DATABASE"
	ErrCodeSolve     = "SOLVE"
	ErrCodeUnknown   = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var readInput *ErrReadInput
	var database *ErrDatabase
	var solve *ErrSolve
	switch {
	case errors.As(err, &readInput):
		return ErrCodeReadInput
	case errors.As(err, &database):
		return ErrCodeDatabase
	case errors.As(err, &solve):
		return ErrCodeSolve
	default:
		return ErrCodeUnknown
	}
}
