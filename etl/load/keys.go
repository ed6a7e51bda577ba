package load

import (
	"database/sql"
	"fmt"
)

// NewKeys returns the incoming keys that are not in the existing set,
// preserving input order. This set-difference is the idempotency contract of
// the load phase: only rows with unseen primary keys are appended, so
// re-running the loader over the same input inserts nothing.
func NewKeys(incoming []string, existing map[string]bool) []string {
	fresh := make([]string, 0, len(incoming))
	for _, key := range incoming {
		if !existing[key] {
			fresh = append(fresh, key)
		}
	}
	return fresh
}

// queryKeySet reads a single-column key query into a set.
func queryKeySet(db *sql.DB, query string) (map[string]bool, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate keys: %w", err)
	}

	return keys, nil
}

// queryKeyMap reads a (surrogate key, natural key) query into a lookup map.
func queryKeyMap(db *sql.DB, query string) (map[string]int, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dimension keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]int)
	for rows.Next() {
		var surrogate int
		var natural string
		if err := rows.Scan(&surrogate, &natural); err != nil {
			return nil, fmt.Errorf("failed to scan dimension key: %w", err)
		}
		keys[natural] = surrogate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dimension keys: %w", err)
	}

	return keys, nil
}
