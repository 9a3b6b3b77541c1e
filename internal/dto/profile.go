package dto

import "github.com/SscSPs/cekel_duit/internal/core/domain"

// UpdateProfileRequest replaces the stored profile.
type UpdateProfileRequest struct {
	Name       string          `json:"name" binding:"required,max=50" example:"Arek Malang"`
	Language   domain.Language `json:"language" binding:"required,oneof=id jv" example:"jv"`
	NgiritMode bool            `json:"ngiritMode" example:"true"`
}

// ProfileResponse defines the data returned for the profile.
type ProfileResponse struct {
	Name       string          `json:"name"`
	Language   domain.Language `json:"language"`
	NgiritMode bool            `json:"ngiritMode"`
}

// ToProfileResponse converts a domain.UserProfile to ProfileResponse DTO
func ToProfileResponse(p domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		Name:       p.Name,
		Language:   p.Language,
		NgiritMode: p.NgiritMode,
	}
}
