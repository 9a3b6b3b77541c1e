package mapping

import (
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/models"
)

// ToModelProfile converts a domain UserProfile to its stored form
func ToModelProfile(d domain.UserProfile) models.Profile {
	return models.Profile{
		Name:       d.Name,
		Language:   string(d.Language),
		NgiritMode: d.NgiritMode,
	}
}

// ToDomainProfile converts a stored Profile, substituting defaults for an
// empty name or an unsupported language.
func ToDomainProfile(m models.Profile) domain.UserProfile {
	def := domain.DefaultProfile()
	p := domain.UserProfile{
		Name:       m.Name,
		Language:   domain.Language(m.Language),
		NgiritMode: m.NgiritMode,
	}
	if p.Name == "" {
		p.Name = def.Name
	}
	if !p.Language.IsValid() {
		p.Language = def.Language
	}
	return p
}
