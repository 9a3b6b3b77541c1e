package mapping

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/models"
)

// ToModelSavingsTarget converts a domain SavingsTarget to its stored form
func ToModelSavingsTarget(d domain.SavingsTarget) models.SavingsTarget {
	return models.SavingsTarget{
		ID:       d.ID,
		Name:     d.Name,
		Target:   d.Target,
		Current:  d.Current,
		Deadline: d.Deadline,
		Emoji:    d.Emoji,
	}
}

// ToDomainSavingsTarget converts a stored SavingsTarget to a domain SavingsTarget
func ToDomainSavingsTarget(m models.SavingsTarget) domain.SavingsTarget {
	return domain.SavingsTarget{
		ID:       m.ID,
		Name:     m.Name,
		Target:   m.Target,
		Current:  m.Current,
		Deadline: m.Deadline,
		Emoji:    m.Emoji,
	}
}

// ToDomainSavingsTargetSlice converts stored targets, dropping records without an id.
// The second return value is the number of dropped records.
func ToDomainSavingsTargetSlice(ms []models.SavingsTarget) ([]domain.SavingsTarget, int) {
	ds := make([]domain.SavingsTarget, 0, len(ms))
	dropped := 0
	for _, m := range ms {
		if m.ID == "" {
			dropped++
			continue
		}
		ds = append(ds, ToDomainSavingsTarget(m))
	}
	return ds, dropped
}

// ToModelSavingsTargetSlice converts domain targets to their stored form
func ToModelSavingsTargetSlice(ds []domain.SavingsTarget) []models.SavingsTarget {
	ms := make([]models.SavingsTarget, len(ds))
	for i, d := range ds {
		ms[i] = ToModelSavingsTarget(d)
	}
	return ms
}
