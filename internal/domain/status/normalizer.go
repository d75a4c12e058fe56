// Package status maps each rail's native status vocabulary onto the canonical
// state machine.
package status

import "pagamentos_xpto/internal/domain/entities"

// Per-rail mapping tables. Every status a rail can emit appears here; anything
// else normalizes to error so an unknown value can never pass as approved.
var (
	pixStatuses = map[string]entities.CanonicalStatus{
		"pending":      entities.StatusPending,
		"approved":     entities.StatusApproved,
		"authorized":   entities.StatusProcessing,
		"in_process":   entities.StatusProcessing,
		"in_mediation": entities.StatusProcessing,
		"rejected":     entities.StatusDeclined,
		"cancelled":    entities.StatusExpired,
		"expired":      entities.StatusExpired,
	}

	cardStatuses = map[string]entities.CanonicalStatus{
		"created":    entities.StatusProcessing,
		"processing": entities.StatusProcessing,
		"authorized": entities.StatusProcessing,
		"captured":   entities.StatusApproved,
		"approved":   entities.StatusApproved,
		"declined":   entities.StatusDeclined,
		"failed":     entities.StatusDeclined,
		"voided":     entities.StatusExpired,
		"expired":    entities.StatusExpired,
	}
)

// Normalize maps a provider-native status to the canonical vocabulary.
// Unknown rails or statuses fail closed to error.
func Normalize(method entities.PaymentMethod, native string) entities.CanonicalStatus {
	var table map[string]entities.CanonicalStatus
	switch method {
	case entities.MethodPix:
		table = pixStatuses
	case entities.MethodCreditCard, entities.MethodDebitCard:
		table = cardStatuses
	default:
		return entities.StatusError
	}

	if s, ok := table[native]; ok {
		return s
	}
	return entities.StatusError
}

// CanTransition reports whether moving from one canonical status to the next
// is legal. Terminal statuses never move, except to themselves; error is an
// observation failure and may settle anywhere on a later poll.
func CanTransition(from, to entities.CanonicalStatus) bool {
	if from == to {
		return true
	}
	if from.Terminal() {
		return false
	}
	if to == entities.StatusError {
		return true
	}

	switch from {
	case entities.StatusPending:
		return to == entities.StatusProcessing || to == entities.StatusExpired || to == entities.StatusApproved || to == entities.StatusDeclined
	case entities.StatusProcessing:
		return to == entities.StatusApproved || to == entities.StatusDeclined || to == entities.StatusExpired
	case entities.StatusError:
		return true
	}
	return false
}
