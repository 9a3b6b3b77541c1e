package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/cekel_duit/internal/core/domain"
	"github.com/SscSPs/cekel_duit/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestGetProfile_Default() {
	s.profile.On("GetProfile", mock.Anything).Return(domain.DefaultProfile(), nil).Once()

	w := s.do(http.MethodGet, "/api/v1/profile", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.ProfileResponse
	s.decode(w, &res)
	s.Equal("Arek Malang", res.Name)
	s.Equal(domain.LanguageIndonesian, res.Language)
	s.False(res.NgiritMode)
}

func (s *HandlerTestSuite) TestUpdateProfile() {
	want := domain.UserProfile{Name: "Cak Dul", Language: domain.LanguageJavanese, NgiritMode: true}
	s.profile.On("UpdateProfile", mock.Anything, dto.UpdateProfileRequest{
		Name: "Cak Dul", Language: domain.LanguageJavanese, NgiritMode: true,
	}).Return(want, nil).Once()

	w := s.do(http.MethodPut, "/api/v1/profile", `{"name":"Cak Dul","language":"jv","ngiritMode":true}`)
	s.Require().Equal(http.StatusOK, w.Code)
	var res dto.ProfileResponse
	s.decode(w, &res)
	s.Equal("Cak Dul", res.Name)
	s.True(res.NgiritMode)
}

func (s *HandlerTestSuite) TestUpdateProfile_UnsupportedLanguage() {
	w := s.do(http.MethodPut, "/api/v1/profile", `{"name":"Cak Dul","language":"en"}`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorMessage(w), "language")
}

func (s *HandlerTestSuite) TestGetProfile_ReadFailure() {
	s.profile.On("GetProfile", mock.Anything).Return(domain.UserProfile{}, errors.New("boom")).Once()

	w := s.do(http.MethodGet, "/api/v1/profile", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
}
