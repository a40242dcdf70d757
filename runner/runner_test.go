// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runner_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdhender/aoc2020/bags"
	"github.com/mdhender/aoc2020/inputs"
	"github.com/mdhender/aoc2020/runner"
	"github.com/mdhender/aoc2020/store"
	"github.com/spf13/afero"
)

// mockStore implements runner.RunnerStore for testing.
type mockStore struct {
	runs      []*store.Run
	answers   []*store.Answer
	failAfter int // fail InsertAnswer after this many inserts; 0 never fails
}

func (m *mockStore) InsertRun(_ context.Context, run *store.Run) (int64, error) {
	m.runs = append(m.runs, run)
	run.ID = int64(len(m.runs))
	return run.ID, nil
}

func (m *mockStore) InsertAnswer(_ context.Context, answer *store.Answer) (int64, error) {
	if m.failAfter != 0 && len(m.answers) >= m.failAfter {
		return 0, errors.New("disk full")
	}
	m.answers = append(m.answers, answer)
	answer.ID = int64(len(m.answers))
	return answer.ID, nil
}

const (
	expenses = "1721\r\n979\r\n366\r\n299\r\n675\r\n1456\r\n"
	rules    = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`
)

func newService(t *testing.T, st runner.RunnerStore, files map[int]string) *runner.Service {
	t.Helper()
	mfs := afero.NewMemMapFs()
	for day, text := range files {
		if err := afero.WriteFile(mfs, filepath.Join("inputs", inputs.FileName(day)), []byte(text), 0644); err != nil {
			t.Fatalf("write day %d: %v", day, err)
		}
	}
	if err := mfs.MkdirAll("inputs", 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s := runner.NewService(st, "inputs", nil, inputs.WithAutoEOL(true))
	s.SetFS(mfs)
	return s
}

func TestService_RunDay(t *testing.T) {
	s := newService(t, nil, map[int]string{1: expenses})
	result, err := s.RunDay(context.Background(), 1)
	if err != nil {
		t.Fatalf("RunDay: %v", err)
	}
	if result.Name != "Report Repair" {
		t.Errorf("name = %q, want %q", result.Name, "Report Repair")
	}
	for i, want := range []int{514579, 241861950} {
		part := result.Parts[i]
		if part.Status != store.AnswerOK || part.Value != want || part.Err != nil {
			t.Errorf("part %d = %+v, want ok %d", part.No, part, want)
		}
	}
}

func TestService_RunDay_MissingInput(t *testing.T) {
	s := newService(t, nil, nil)
	_, err := s.RunDay(context.Background(), 1)
	var readErr *runner.ErrReadInput
	if !errors.As(err, &readErr) {
		t.Fatalf("error = %v, want ErrReadInput", err)
	}
	if readErr.Day != 1 || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %+v, want day 1 not found", readErr)
	}
	if got := runner.ErrorCode(err); got != runner.ErrCodeReadInput {
		t.Errorf("ErrorCode = %q, want %q", got, runner.ErrCodeReadInput)
	}
}

func TestService_RunDay_Unregistered(t *testing.T) {
	s := newService(t, nil, nil)
	result, err := s.RunDay(context.Background(), 25)
	if err != nil {
		t.Fatalf("RunDay: %v", err)
	}
	for _, part := range result.Parts {
		if part.Status != store.AnswerUnimplemented {
			t.Errorf("part %d status = %q, want %q", part.No, part.Status, store.AnswerUnimplemented)
		}
	}
}

func TestService_RunDay_Target(t *testing.T) {
	s := newService(t, nil, map[int]string{7: rules})
	s.SetTarget("dark olive")
	result, err := s.RunDay(context.Background(), 7)
	if err != nil {
		t.Fatalf("RunDay: %v", err)
	}
	// dark olive is inside shiny gold and everything that holds it
	if got := result.Parts[0].Value; got != 5 {
		t.Errorf("part 1 = %d, want 5", got)
	}
	if got := result.Parts[1].Value; got != 7 {
		t.Errorf("part 2 = %d, want 7", got)
	}

	s.SetTarget("plaid")
	result, err = s.RunDay(context.Background(), 7)
	if err != nil {
		t.Fatalf("RunDay: %v", err)
	}
	part := result.Parts[0]
	if part.Status != store.AnswerFailed || !errors.Is(part.Err, bags.ErrUnknownColor) {
		t.Errorf("part 1 = %+v, want failed with ErrUnknownColor", part)
	}
	if got := runner.ErrorCode(part.Err); got != runner.ErrCodeSolve {
		t.Errorf("ErrorCode = %q, want %q", got, runner.ErrCodeSolve)
	}
}

func TestService_Run_RecordsAnswers(t *testing.T) {
	st := &mockStore{}
	s := newService(t, st, map[int]string{1: expenses, 7: rules, 25: "x\n"})

	results, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(st.runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(st.runs))
	}

	type row struct {
		Day, Part int
		Status    string
		Value     int
	}
	var got []row
	for _, a := range st.answers {
		if a.RunID != st.runs[0].ID {
			t.Errorf("answer run id = %d, want %d", a.RunID, st.runs[0].ID)
		}
		got = append(got, row{a.Day, a.Part, a.Status, a.Value})
	}
	want := []row{
		{1, 1, store.AnswerOK, 514579},
		{1, 2, store.AnswerOK, 241861950},
		{7, 1, store.AnswerOK, 4},
		{7, 2, store.AnswerOK, 32},
		{25, 1, store.AnswerUnimplemented, 0},
		{25, 2, store.AnswerUnimplemented, 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
	if len(results) != 3 {
		t.Errorf("got %d results, want 3", len(results))
	}
}

func TestService_Run_MissingInputContinues(t *testing.T) {
	st := &mockStore{}
	s := newService(t, st, map[int]string{1: expenses})

	results, err := s.Run(context.Background(), 2, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, part := range results[0].Parts {
		if part.Status != store.AnswerFailed {
			t.Errorf("day 2 part %d status = %q, want %q", part.No, part.Status, store.AnswerFailed)
		}
	}
	if st.answers[0].ErrorCode != runner.ErrCodeReadInput {
		t.Errorf("error code = %q, want %q", st.answers[0].ErrorCode, runner.ErrCodeReadInput)
	}
	if results[1].Parts[0].Value != 514579 {
		t.Errorf("day 1 part 1 = %d, want 514579", results[1].Parts[0].Value)
	}
}

func TestService_Run_DatabaseError(t *testing.T) {
	st := &mockStore{failAfter: 1}
	s := newService(t, st, map[int]string{1: expenses})

	_, err := s.Run(context.Background(), 1)
	var dbErr *runner.ErrDatabase
	if !errors.As(err, &dbErr) {
		t.Fatalf("error = %v, want ErrDatabase", err)
	}
	if got := runner.ErrorCode(err); got != runner.ErrCodeDatabase {
		t.Errorf("ErrorCode = %q, want %q", got, runner.ErrCodeDatabase)
	}
}

func TestService_Run_SQLiteStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.NewSQLiteStore()
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer st.Close()

	s := newService(t, st, map[int]string{7: rules})
	if _, err := s.Run(ctx, 7); err != nil {
		t.Fatalf("Run: %v", err)
	}
	run, err := st.LatestRun(ctx)
	if err != nil || run == nil {
		t.Fatalf("LatestRun = %v, %v", run, err)
	}
	answers, err := st.ListAnswers(ctx, run.ID)
	if err != nil {
		t.Fatalf("ListAnswers: %v", err)
	}
	var got []string
	for _, a := range answers {
		got = append(got, fmt.Sprintf("%d.%d=%d", a.Day, a.Part, a.Value))
	}
	if diff := cmp.Diff([]string{"7.1=4", "7.2=32"}, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestService_Run_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newService(t, nil, map[int]string{1: expenses})
	if _, err := s.Run(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestPrint(t *testing.T) {
	results := []*runner.Result{
		{Day: 1, Parts: [2]runner.Part{
			{No: 1, Status: store.AnswerOK, Value: 514579},
			{No: 2, Status: store.AnswerUnimplemented},
		}},
		{Day: 7, Parts: [2]runner.Part{
			{No: 1, Status: store.AnswerFailed, Err: errors.New("boom")},
			{No: 2, Status: store.AnswerOK, Value: 32},
		}},
	}
	var buf bytes.Buffer
	if err := runner.Print(&buf, results, false); err != nil {
		t.Fatalf("Print: %v", err)
	}
	want := "day_01\n\t1. 514579\n\t2. UNIMPLEMENTED\nday_07\n\t1. FAILED: boom\n\t2. 32\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
