package workqueue

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortRows returns a new slice ordered most-urgent first:
//
//  1. staleness descending — unknown (nil) ages always sort last;
//  2. status priority — NG, then 資料待ち, then 媒体審査中, then 停止中;
//  3. company name ascending under Japanese collation, so mixed
//     Japanese/Latin names compare the same way run to run.
//
// The sort is stable and driven only by those three keys, so shuffled input
// with the same rows always yields the same order. The input slice is not
// modified.
func SortRows(rows []Row) []Row {
	out := slices.Clone(rows)

	// Collators buffer internally and are not safe for concurrent use,
	// so build one per call.
	col := collate.New(language.Japanese)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if c := compareStaleDays(a.StaleDays, b.StaleDays); c != 0 {
			return c < 0
		}
		if pa, pb := a.Status.Priority(), b.Status.Priority(); pa != pb {
			return pa < pb
		}
		return col.CompareString(a.CompanyName, b.CompanyName) < 0
	})

	return out
}

// compareStaleDays orders larger ages first and nil last.
func compareStaleDays(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case *a != *b:
		if *a > *b {
			return -1
		}
		return 1
	default:
		return 0
	}
}
