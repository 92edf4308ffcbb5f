package validators

import (
	"strings"

	"marketofmanycards/market-api/internal/apperr"
)

// UserInput is the body of POST /users and PUT /users/:id. Older clients send
// the name as nickname, so both keys are accepted.
type UserInput struct {
	FullName string `json:"full_name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// Name returns full_name, falling back to nickname.
func (u *UserInput) Name() string {
	if n := strings.TrimSpace(u.FullName); n != "" {
		return n
	}
	return strings.TrimSpace(u.Nickname)
}

// UserValidator requires the name, email and contact and checks the email
// shape. It is used for both creation and profile updates since an update
// always replaces all three fields.
func UserValidator(u *UserInput) error {
	verr := &apperr.ValidationError{}

	if u.Name() == "" {
		verr.AddMissing("full_name")
	}

	email := strings.TrimSpace(u.Email)
	if email == "" {
		verr.AddMissing("email")
	}

	if strings.TrimSpace(u.Contact) == "" {
		verr.AddMissing("contact")
	}

	if email != "" {
		if err := EmailValidator(email); err != nil {
			verr.AddInvalid("email", "must look like local@domain.tld")
		}
	}

	return verr.OrNil()
}
