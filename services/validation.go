package services

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/unicsmcr/hs_teams/entities"
	"go.mongodb.org/mongo-driver/bson/primitive"
	validator "gopkg.in/go-playground/validator.v8"
)

var teamValidator = validator.New(&validator.Config{TagName: "validate"})

func parseTeamID(teamID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(teamID)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

func validateTeam(team entities.Team) error {
	if err := teamValidator.Struct(team); err != nil {
		return ErrInvalidTeam
	}
	return nil
}

// normalizeJoinCode makes join code lookups insensitive to surrounding whitespace and case
func normalizeJoinCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateProjectName(projectName string) (string, error) {
	projectName = strings.TrimSpace(projectName)
	if len(projectName) == 0 {
		return "", ErrEmptyProjectName
	}
	return projectName, nil
}

func validateDuration(durationHours int, allowedDurations []int) error {
	for _, allowed := range allowedDurations {
		if durationHours == allowed {
			return nil
		}
	}
	return ErrUnsupportedDuration
}

// validateProjectLink accepts absolute URLs which name a host
func validateProjectLink(projectLink string) (string, error) {
	projectLink = strings.TrimSpace(projectLink)
	if err := teamValidator.Field(projectLink, "required,url"); err != nil {
		return "", ErrInvalidURL
	}

	// the url tag also accepts host-less URIs such as mailto:
	parsed, err := url.Parse(projectLink)
	if err != nil || len(parsed.Host) == 0 {
		return "", ErrInvalidURL
	}
	return projectLink, nil
}

func validateFinalDescription(finalDescription string, minLength int) (string, error) {
	finalDescription = strings.TrimSpace(finalDescription)
	if utf8.RuneCountInString(finalDescription) < minLength {
		return "", ErrDescriptionTooShort
	}
	return finalDescription, nil
}
