package services

import "github.com/CarsonBain/wins/internal/domain"

// ReconcileOutcome reports whether an entry was inserted or overwrote an existing one
type ReconcileOutcome int

const (
	OutcomeAdded ReconcileOutcome = iota
	OutcomeUpdated
)

// Reconcile upserts entry into prs by ID. An existing entry is replaced wholesale;
// the remote is authoritative for every field.
func Reconcile(prs *[]domain.PREntry, entry domain.PREntry) ReconcileOutcome {
	for i := range *prs {
		if (*prs)[i].ID == entry.ID {
			(*prs)[i] = entry
			return OutcomeUpdated
		}
	}
	*prs = append(*prs, entry)
	return OutcomeAdded
}
