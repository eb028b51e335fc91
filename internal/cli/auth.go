package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// userErrors are shown to the user as they are; anything else is logged
// and reported generically.
var userErrors = []error{
	common.ErrNotFound,
	common.ErrInvalidCredentials,
	common.ErrAlreadyExists,
}

// Signup prompts for name, email and password, validates them like the
// signup form and creates the account via the SessionService. On success
// the new account is logged in.
//
// The password byte slice is wiped before returning. Validation, I/O and
// service errors are returned after being reported to the user.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if errs := validateSignup(email, string(password), name); len(errs) > 0 {
		a.printValidation(errs)
		return errors.Join(errs...)
	}

	fmt.Fprintln(a.out, "Creating account...")
	if err := a.session.Signup(ctx, email, string(password), name); err != nil {
		a.reportFailure(ctx, "Signup failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created successfully")
	return nil
}

// Login prompts for credentials, validates them like the login form and
// authenticates via the SessionService. A failed login keeps the previous
// session, if any.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if errs := validateCredentials(email, string(password)); len(errs) > 0 {
		a.printValidation(errs)
		return errors.Join(errs...)
	}

	fmt.Fprintln(a.out, "Logging in...")
	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.reportFailure(ctx, "Login failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout ends the current session. It returns any error from the store.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.reportFailure(ctx, "Logout failed", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out successfully")
	return nil
}

// DeleteAccount asks for confirmation and then removes the logged-in
// account together with its session.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader,
		"This permanently deletes your account. Type 'yes' to confirm", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.session.DeleteAccount(ctx); err != nil {
		a.reportFailure(ctx, "Delete failed", err)
		return err
	}
	fmt.Fprintln(a.out, "Account deleted successfully")
	return nil
}

// Whoami prints the current user.
func (a *App) Whoami(_ context.Context) error {
	u, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}

func (a *App) printValidation(errs []error) {
	for _, err := range errs {
		fmt.Fprintln(a.out, "  -", err)
	}
}

func (a *App) reportFailure(ctx context.Context, prefix string, err error) {
	for _, known := range userErrors {
		if errors.Is(err, known) {
			fmt.Fprintf(a.out, "%s: %s\n", prefix, known)
			return
		}
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(a.out, "%s: cancelled\n", prefix)
		return
	}
	a.logger.Error(ctx, strings.ToLower(prefix), "error", err)
	fmt.Fprintf(a.out, "%s: %s\n", prefix, "unexpected error, see log")
}
