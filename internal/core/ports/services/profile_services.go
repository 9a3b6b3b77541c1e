package services

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
)

// ProfileSvc reads and replaces the user profile.
type ProfileSvc interface {
	GetProfile(ctx context.Context) (domain.UserProfile, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (domain.UserProfile, error)
}
