package runtime

import (
	"github.com/aretw0/lcsviz/pkg/domain"
)

// Compute: Longest Common Subsequence
//
// Description:
//
//	Builds the LCS dynamic-programming table for a and b, records the order
//	in which cells were filled, and backtracks the table to recover one LCS.
//
// Algorithm Outline:
//  1. Let m = len(a), n = len(b). Allocate (m+1)x(n+1) table T, all zero.
//  2. For i = 1..m (outer):
//     For j = 1..n (inner):
//     if a[i-1] == b[j-1]: T[i][j] = T[i-1][j-1] + 1   (match)
//     else:                T[i][j] = max(T[i-1][j], T[i][j-1])  (extend)
//     append FillEvent{i, j, T[i][j], kind}
//  3. Backtrack from (m, n) while i > 0 and j > 0:
//     equal characters → record PathEntry, i--, j--
//     T[i-1][j] > T[i][j-1] → i--
//     otherwise → j--   (ties move through the column)
//  4. Reverse the recovered entries so the path reads head-to-tail.
//
// The loop nesting in step 2 defines the playback timeline and must not
// change. The tie rule in step 3 fixes which LCS is produced when several
// of equal length exist.
//
// Complexity:
//
//	Time   = O(m·n)
//	Memory = O(m·n)
//
// Compute is pure and total: empty inputs yield a zero table, no events
// and an empty path.
func Compute(a, b []rune) domain.Result {
	m, n := len(a), len(b)

	table := make(domain.Table, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}

	events := make([]domain.FillEvent, 0, m*n)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			kind := domain.KindExtend
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
				kind = domain.KindMatch
			} else {
				table[i][j] = max(table[i-1][j], table[i][j-1])
			}
			events = append(events, domain.FillEvent{
				Cell:  domain.Cell{I: i, J: j},
				Value: table[i][j],
				Kind:  kind,
			})
		}
	}

	path, trail := backtrack(a, b, table)

	lcs := make([]rune, 0, len(path))
	for _, p := range path {
		lcs = append(lcs, []rune(p.Char)...)
	}

	return domain.Result{
		A:      string(a),
		B:      string(b),
		Table:  table,
		Events: events,
		Path:   path,
		Trail:  trail,
		LCS:    string(lcs),
	}
}

// backtrack walks the filled table from (m, n) toward the origin.
func backtrack(a, b []rune, table domain.Table) ([]domain.PathEntry, []domain.Cell) {
	i, j := len(a), len(b)
	path := make([]domain.PathEntry, 0, table[i][j])
	var trail []domain.Cell

	for i > 0 && j > 0 {
		trail = append(trail, domain.Cell{I: i, J: j})
		switch {
		case a[i-1] == b[j-1]:
			path = append(path, domain.PathEntry{
				Cell: domain.Cell{I: i, J: j},
				Char: string(a[i-1]),
			})
			i--
			j--
		case table[i-1][j] > table[i][j-1]:
			i--
		default:
			j--
		}
	}

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, trail
}
