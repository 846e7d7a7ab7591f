package grove

import "fmt"

// Record is a single directory entry. The containers treat it as an opaque
// value: trees order records by Number, while the two name fields select the
// outer and inner hash buckets. All comparisons are byte-wise and
// case-sensitive.
type Record struct {
	FirstName string
	LastName  string
	Number    string
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s : %s", r.FirstName, r.LastName, r.Number)
}
