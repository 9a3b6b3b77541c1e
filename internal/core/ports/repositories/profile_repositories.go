package repositories

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
)

// ProfileRepository stores the singleton user profile.
type ProfileRepository interface {
	// GetProfile returns the stored profile, or domain.DefaultProfile when unset or unparsable.
	GetProfile(ctx context.Context) (domain.UserProfile, error)

	// SaveProfile overwrites the stored profile.
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
}

// DataEraser wipes every stored collection.
type DataEraser interface {
	ClearAll(ctx context.Context) error
}
