// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package store

import (
	"context"
	"fmt"

	"github.com/mdhender/aoc2020/bags"
)

// ReplaceBagRules deletes the stored bag rules and inserts rules in a
// single transaction.
func (s *SQLiteStore) ReplaceBagRules(ctx context.Context, rules bags.Rules) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"bag_contents", "bag_rules"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}

	for _, color := range rules.Colors() {
		if _, err := tx.ExecContext(ctx, `INSERT INTO bag_rules (color) VALUES (?)`, color); err != nil {
			return fmt.Errorf("insert bag_rule %q: %w", color, err)
		}
		for seq, child := range rules[color] {
			const query = `
				INSERT INTO bag_contents (container, seq, count, color)
				VALUES (?, ?, ?, ?)
			`
			if _, err := tx.ExecContext(ctx, query, color, seq+1, child.Count, child.Color); err != nil {
				return fmt.Errorf("insert bag_content %q: %w", color, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// BagRules loads the stored bag rules.
func (s *SQLiteStore) BagRules(ctx context.Context) (bags.Rules, error) {
	const query = `
		SELECT r.color, c.count, c.color
		FROM bag_rules r
		LEFT JOIN bag_contents c ON c.container = r.color
		ORDER BY r.color, c.seq
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query bag_rules: %w", err)
	}
	defer rows.Close()

	rules := bags.Rules{}
	for rows.Next() {
		var container string
		var count *int64
		var color *string
		if err := rows.Scan(&container, &count, &color); err != nil {
			return nil, err
		}
		if _, ok := rules[container]; !ok {
			rules[container] = []bags.Child{}
		}
		if color != nil && count != nil {
			rules[container] = append(rules[container], bags.Child{Count: uint32(*count), Color: *color})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (s *SQLiteStore) knownColor(ctx context.Context, color string, withRule bool) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bag_rules WHERE color = ?)`
	args := []any{color}
	if !withRule {
		query = `SELECT EXISTS (SELECT 1 FROM bag_rules WHERE color = ?) OR EXISTS (SELECT 1 FROM bag_contents WHERE color = ?)`
		args = append(args, color)
	}
	var known bool
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&known); err != nil {
		return false, fmt.Errorf("query color: %w", err)
	}
	return known, nil
}

// CountContainers returns the number of colors that can eventually
// contain the target. It agrees with bags.Rules.Containers.
func (s *SQLiteStore) CountContainers(ctx context.Context, target string) (int, error) {
	if known, err := s.knownColor(ctx, target, false); err != nil {
		return 0, err
	} else if !known {
		return 0, fmt.Errorf("%q: %w", target, bags.ErrUnknownColor)
	}

	// UNION drops duplicates, which also stops the recursion on cycles
	const query = `
		WITH RECURSIVE containers (color) AS (
			SELECT container FROM bag_contents WHERE color = ?
			UNION
			SELECT bc.container
			FROM bag_contents bc
			JOIN containers c ON bc.color = c.color
		)
		SELECT COUNT(*) FROM containers WHERE color <> ?
	`
	var count int
	if err := s.db.QueryRowContext(ctx, query, target, target).Scan(&count); err != nil {
		return 0, fmt.Errorf("count containers: %w", err)
	}
	return count, nil
}

// CountInside returns the total number of bags required inside one bag
// of the given color. It agrees with bags.Rules.CountInside.
//
// The database only finds the colors reachable from color. UNION drops
// duplicates, so each color is visited once even when it is shared or
// part of a cycle. The reachable rules are then counted by the memoized
// walk in bags, which also reports cycles and overflow.
func (s *SQLiteStore) CountInside(ctx context.Context, color string) (int, error) {
	if known, err := s.knownColor(ctx, color, true); err != nil {
		return 0, err
	} else if !known {
		return 0, fmt.Errorf("%q: %w", color, bags.ErrUnknownColor)
	}

	const query = `
		WITH RECURSIVE reachable (color) AS (
			SELECT ?
			UNION
			SELECT bc.color
			FROM bag_contents bc
			JOIN reachable r ON bc.container = r.color
		)
		SELECT bc.container, bc.count, bc.color
		FROM bag_contents bc
		JOIN reachable r ON bc.container = r.color
		ORDER BY bc.container, bc.seq
	`
	rows, err := s.db.QueryContext(ctx, query, color)
	if err != nil {
		return 0, fmt.Errorf("query reachable bags: %w", err)
	}
	defer rows.Close()

	rules := bags.Rules{color: []bags.Child{}}
	for rows.Next() {
		var container string
		var child bags.Child
		if err := rows.Scan(&container, &child.Count, &child.Color); err != nil {
			return 0, err
		}
		rules[container] = append(rules[container], child)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	return rules.CountInside(color)
}
