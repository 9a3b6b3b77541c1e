package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	portsrepo "github.com/SscSPs/cekel_duit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cekel_duit/internal/core/ports/services"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/SscSPs/cekel_duit/internal/utils/validation"
)

type profileService struct {
	BaseService
	repo portsrepo.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(repo portsrepo.ProfileRepository) portssvc.ProfileSvc {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context) (domain.UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read profile")
		return domain.DefaultProfile(), fmt.Errorf("failed to read profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (domain.UserProfile, error) {
	if err := validation.Struct(req); err != nil {
		return domain.UserProfile{}, err
	}

	profile := domain.UserProfile{
		Name:       req.Name,
		Language:   req.Language,
		NgiritMode: req.NgiritMode,
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile")
		return domain.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	s.LogInfo(ctx, "Profile updated",
		slog.String("language", string(profile.Language)),
		slog.Bool("ngirit_mode", profile.NgiritMode))
	return profile, nil
}
