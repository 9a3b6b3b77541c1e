package domain

// Language selects the localized message tables.
type Language string

const (
	LanguageIndonesian Language = "id"
	LanguageJavanese   Language = "jv"
)

// IsValid reports whether l is a supported language.
func (l Language) IsValid() bool {
	return l == LanguageIndonesian || l == LanguageJavanese
}

// UserProfile is the single profile record of the device owner.
type UserProfile struct {
	Name       string   `json:"name"`
	Language   Language `json:"language"`
	NgiritMode bool     `json:"ngiritMode"`
}

// DefaultProfile is returned whenever no valid profile has been stored.
func DefaultProfile() UserProfile {
	return UserProfile{
		Name:       "Arek Malang",
		Language:   LanguageIndonesian,
		NgiritMode: false,
	}
}
