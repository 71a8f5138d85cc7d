package dataset

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyFilter returns the rows whose cells match the query, either by
// case-insensitive substring or by edit distance within maxDist. An
// empty query matches everything.
func FuzzyFilter(rows [][]string, query string, maxDist int) [][]string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, query, maxDist) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row []string, query string, maxDist int) bool {
	for _, cell := range row {
		cell = strings.ToLower(cell)
		if strings.Contains(cell, query) {
			return true
		}
		if maxDist > 0 {
			for _, word := range strings.Fields(cell) {
				if levenshtein.ComputeDistance(word, query) <= maxDist {
					return true
				}
			}
		}
	}
	return false
}

// FilterRecords applies the same matching to header-keyed records.
func FilterRecords(records []map[string]string, query string, maxDist int) []map[string]string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	out := make([]map[string]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, 0, len(rec))
		for _, v := range rec {
			row = append(row, v)
		}
		if rowMatches(row, query, maxDist) {
			out = append(out, rec)
		}
	}
	return out
}
