package kvstore

import (
	"context"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	"github.com/SscSPs/cekel_duit/internal/utils/mapping"
)

type profileRepository struct {
	*BaseRepository
}

func newProfileRepository(base *BaseRepository) repositories.ProfileRepository {
	return &profileRepository{BaseRepository: base}
}

func (r *profileRepository) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := loadDocument(ctx, r.BaseRepository, KeyProfile, mapping.ToModelProfile(domain.DefaultProfile()))
	if err != nil {
		return domain.DefaultProfile(), err
	}
	return mapping.ToDomainProfile(stored), nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return saveDocument(ctx, r.BaseRepository, KeyProfile, mapping.ToModelProfile(profile))
}

