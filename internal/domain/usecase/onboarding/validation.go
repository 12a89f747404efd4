package onboarding

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/medimeet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/domain/port/usecase"
)

// Doctor profile bounds
const (
	MinExperience        = 1
	MaxExperience        = 70
	MinDescriptionLength = 20
	MaxDescriptionLength = 1000
)

// doctorProfile validates the doctor part of the onboarding form
func doctorProfile(req usecase.RoleRequest) (*entity.DoctorProfile, error) {
	speciality := strings.TrimSpace(req.Speciality)
	if speciality == "" {
		return nil, errs.NewValidationError("speciality", "required")
	}

	if req.Experience < MinExperience || req.Experience > MaxExperience {
		return nil, errs.NewValidationError("experience",
			fmt.Sprintf("must be between %d and %d years", MinExperience, MaxExperience))
	}

	credentialURL := strings.TrimSpace(req.CredentialURL)
	parsed, err := url.ParseRequestURI(credentialURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errs.NewValidationError("credentialUrl", "must be a valid URL")
	}

	description := strings.TrimSpace(req.Description)
	if n := utf8.RuneCountInString(description); n < MinDescriptionLength || n > MaxDescriptionLength {
		return nil, errs.NewValidationError("description",
			fmt.Sprintf("must be %d to %d characters", MinDescriptionLength, MaxDescriptionLength))
	}

	return &entity.DoctorProfile{
		Speciality:    speciality,
		Experience:    req.Experience,
		CredentialURL: credentialURL,
		Description:   description,
	}, nil
}
