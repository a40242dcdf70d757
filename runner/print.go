// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/mdhender/aoc2020/store"
)

// Print writes the results as
//
//	day_07
//		1. 4
//		2. UNIMPLEMENTED
//
// With showTiming, each line also gets the time spent on it.
func Print(w io.Writer, results []*Result, showTiming bool) error {
	timing := func(d time.Duration) string {
		if !showTiming {
			return ""
		}
		return fmt.Sprintf(" (%v)", d)
	}
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "day_%02d%s\n", result.Day, timing(result.Parse)); err != nil {
			return err
		}
		for _, part := range result.Parts {
			var answer string
			switch part.Status {
			case store.AnswerOK:
				answer = fmt.Sprintf("%d", part.Value)
			case store.AnswerFailed:
				answer = fmt.Sprintf("FAILED: %v", part.Err)
			default:
				answer = "UNIMPLEMENTED"
			}
			if _, err := fmt.Fprintf(w, "\t%d. %s%s\n", part.No, answer, timing(part.Elapsed)); err != nil {
				return err
			}
		}
	}
	return nil
}
