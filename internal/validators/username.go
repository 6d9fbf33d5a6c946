package validators

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GitHub logins: 1 to 39 alphanumerics or hyphens, no leading or trailing hyphen.
var UsernamePattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)

type UsernameRequest struct {
	Username string `json:"username"`
}

// NewUsernameRequest trims and lower-cases raw, the form usernames are stored under.
func NewUsernameRequest(raw string) UsernameRequest {
	return UsernameRequest{Username: strings.ToLower(strings.TrimSpace(raw))}
}

func (req UsernameRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Username,
			validation.Required.Error("username is required"),
			validation.Match(UsernamePattern).Error("must be a valid GitHub username"),
		),
	)
}
