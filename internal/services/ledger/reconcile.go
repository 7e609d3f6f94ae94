package ledger

import "fenix_office/internal/models"

// Pure collection reconciliation used by both the backend-confirmed and
// the degraded payable paths. Inputs are never mutated.

func upsertPayable(list []models.Payable, p models.Payable) []models.Payable {
	out := make([]models.Payable, 0, len(list)+1)
	replaced := false
	for _, existing := range list {
		if existing.ID == p.ID {
			out = append(out, p)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, p)
	}
	return out
}

func removePayable(list []models.Payable, id string) []models.Payable {
	out := make([]models.Payable, 0, len(list))
	for _, existing := range list {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	return out
}
