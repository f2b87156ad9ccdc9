package claim

import (
	"sort"

	"github.com/stafftrack/hr-core-go/internal/domain/record"
)

// SortClaimsForReview orders urgent claims first, newest first within each
// urgency tier. Callers sort before handing lists to the grouping adapter.
func SortClaimsForReview(claims []Claim) {
	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].IsUrgent != claims[j].IsUrgent {
			return claims[i].IsUrgent
		}
		return laterDateTime(claims[i].DateTime, claims[j].DateTime)
	})
}

// SortInvoicesForReview applies the same urgency-then-date ordering to
// invoices.
func SortInvoicesForReview(invoices []Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		if invoices[i].IsUrgent != invoices[j].IsUrgent {
			return invoices[i].IsUrgent
		}
		return laterDateTime(invoices[i].DateTime, invoices[j].DateTime)
	})
}

func laterDateTime(a, b string) bool {
	ta, okA := record.ParseTimestamp(a)
	tb, okB := record.ParseTimestamp(b)
	if !okA || !okB {
		return okA
	}
	return ta.After(tb)
}
