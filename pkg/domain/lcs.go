package domain

// Kind tags why a cell received its value.
type Kind string

const (
	KindMatch  Kind = "match"  // A[i-1] == B[j-1], diagonal + 1
	KindExtend Kind = "extend" // max of the up and left neighbours
)

// Cell addresses one entry of the DP table. Row 0 and column 0 are the
// empty-prefix border.
type Cell struct {
	I int `json:"i"`
	J int `json:"j"`
}

// FillEvent records one cell computed while building the table.
type FillEvent struct {
	Cell
	Value int  `json:"value"`
	Kind  Kind `json:"kind"`
}

// PathEntry is one matched character recovered by the backtrack.
type PathEntry struct {
	Cell
	Char string `json:"char"`
}

// Table is the (m+1)x(n+1) matrix of LCS lengths for every prefix pair.
type Table [][]int

// At returns table[i][j], or 0 when the coordinates fall outside the table.
func (t Table) At(i, j int) int {
	if i < 0 || i >= len(t) || j < 0 || j >= len(t[i]) {
		return 0
	}
	return t[i][j]
}

// Result is everything the engine derives from one input pair.
// It is immutable once returned.
type Result struct {
	A string `json:"a"`
	B string `json:"b"`

	// Table holds the full DP matrix, border included.
	Table Table `json:"table"`

	// Events is the row-major fill timeline; len(Events) == len(A)*len(B).
	Events []FillEvent `json:"events"`

	// Path lists the matched characters head-to-tail.
	Path []PathEntry `json:"path"`

	// Trail lists every cell the backtrack walked through, starting at (m, n).
	Trail []Cell `json:"trail"`

	// LCS is the concatenation of Path characters.
	LCS string `json:"lcs"`
}

// Length returns the LCS length, table[m][n].
func (r Result) Length() int {
	if len(r.Table) == 0 {
		return 0
	}
	last := r.Table[len(r.Table)-1]
	return last[len(last)-1]
}

// Steps returns the number of fill events.
func (r Result) Steps() int {
	return len(r.Events)
}

// OnPath reports whether (i, j) is one of the path entries.
func (r Result) OnPath(i, j int) bool {
	for _, p := range r.Path {
		if p.I == i && p.J == j {
			return true
		}
	}
	return false
}
