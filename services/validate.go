package services

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cppla/qaserver/errorz"
	"github.com/cppla/qaserver/utils"
)

// MaxTextLength bounds every stored text column, in characters.
const MaxTextLength = 255

var validate = validator.New()

// cleanText strips markup and surrounding whitespace and enforces the length bounds.
func cleanText(field, raw string) (string, error) {
	text := strings.TrimSpace(utils.StripTags(raw))
	if text == "" {
		return "", errorz.Validation("%s must not be empty", field)
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return "", errorz.Validation("%s must be at most %d characters", field, MaxTextLength)
	}
	return text, nil
}

// ParseUserID accepts only version-4 UUIDs.
func ParseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id.Version() != 4 {
		return uuid.Nil, errorz.Validation("user id %q is not a valid version 4 UUID", raw)
	}
	return id, nil
}

func cleanEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email,max=255"); err != nil {
		return "", errorz.Validation("email %q is not a valid address", raw)
	}
	return email, nil
}

func checkPassword(password string) error {
	if n := len(password); n < 6 || n > utils.MaxPasswordBytes {
		return errorz.Validation("password must be 6-%d bytes long", utils.MaxPasswordBytes)
	}
	return nil
}
