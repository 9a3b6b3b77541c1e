package services_test

import (
	"testing"

	"github.com/SscSPs/cekel_duit/internal/apperrors"
	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	storeSuite
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}

func (s *ProfileServiceTestSuite) TestGetProfile_Default() {
	p, err := s.svc.Profile.GetProfile(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.UserProfile{Name: "Arek Malang", Language: domain.LanguageIndonesian, NgiritMode: false}, p)
}

func (s *ProfileServiceTestSuite) TestGetProfile_Corrupted() {
	s.medium.Put("profile", []byte(`{"name": 42`))
	p, err := s.svc.Profile.GetProfile(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.DefaultProfile(), p)
}

func (s *ProfileServiceTestSuite) TestUpdateProfile() {
	updated, err := s.svc.Profile.UpdateProfile(s.ctx, dto.UpdateProfileRequest{
		Name: "Cak Dul", Language: domain.LanguageJavanese, NgiritMode: true,
	})
	s.Require().NoError(err)

	got, err := s.svc.Profile.GetProfile(s.ctx)
	s.Require().NoError(err)
	s.Equal(updated, got)
}

func (s *ProfileServiceTestSuite) TestUpdateProfile_InvalidLanguage() {
	_, err := s.svc.Profile.UpdateProfile(s.ctx, dto.UpdateProfileRequest{Name: "X", Language: "en"})
	s.ErrorIs(err, apperrors.ErrValidation)
}
