package cli

import (
	"errors"
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophdash/internal/common"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// validateCredentials checks the login form. All problems are reported, in
// form order.
func validateCredentials(email, password string) []error {
	var errs []error

	switch {
	case email == "":
		errs = append(errs, common.ErrEmailRequired)
	case !emailPattern.MatchString(email):
		errs = append(errs, common.ErrEmailInvalid)
	}

	switch {
	case password == "":
		errs = append(errs, common.ErrPasswordRequired)
	case utf8.RuneCountInString(password) < minPasswordLength:
		errs = append(errs, common.ErrPasswordTooShort)
	}

	return errs
}

// validateSignup checks the signup form: name first, then the credentials.
func validateSignup(email, password, name string) []error {
	var errs []error
	if name == "" {
		errs = append(errs, common.ErrNameRequired)
	}
	return append(errs, validateCredentials(email, password)...)
}

// errUsage is returned by table commands called with bad arguments. The
// usage text has already been printed.
var errUsage = errors.New("usage")
