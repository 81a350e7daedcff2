package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/byteme/internal/client/services"
	"github.com/dmitrijs2005/byteme/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// describe turns a session error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrorUnauthorized):
		return "Please sign in first"
	default:
		return "Something went wrong, see the log for details"
	}
}

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// SignUp prompts for an email and password, creates the account and signs
// it in. The password is wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.SignUp(ctx, email, password); err != nil {
		a.report(ctx, "sign up failed", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", email)
	return nil
}

// SignIn prompts for credentials and signs in.
func (a *App) SignIn(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sessions.SignIn(ctx, email, password); err != nil {
		a.report(ctx, "sign in failed", err)
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", email)
	return nil
}

// SignOut drops the session. The in-memory session is always cleared; an
// error means only the stored copy could not be removed.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.sessions.SignOut(ctx); err != nil {
		a.logger.Error(ctx, "sign out", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Reset wipes local storage, which ends the session. Accounts are kept.
func (a *App) Reset(ctx context.Context) error {
	if err := a.sessions.ClearStorage(ctx); err != nil {
		a.logger.Error(ctx, "reset", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Local storage cleared")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	p, err := services.RequireUser(a.sessions.Current())
	if err != nil {
		fmt.Fprintln(a.out, describe(err))
		return err
	}

	name := p.FullName
	if name == "" {
		name = "(no name)"
	}
	fmt.Fprintf(a.out, "%s <%s> id=%s\n", name, p.Email, p.ID)
	return nil
}

// Rename prompts for a new display name for the signed-in user.
func (a *App) Rename(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, describe(common.ErrorUnauthorized))
		return common.ErrorUnauthorized
	}

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	if err := a.sessions.Rename(ctx, name); err != nil {
		a.report(ctx, "rename failed", err)
		return err
	}

	fmt.Fprintln(a.out, "Saved")
	return nil
}

// report prints the user-facing message and logs unexpected failures.
func (a *App) report(ctx context.Context, msg string, err error) {
	fmt.Fprintln(a.out, describe(err))
	if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrInvalidCredentials) {
		a.logger.Info(ctx, msg, "reason", err)
		return
	}
	a.logger.Error(ctx, msg, "error", err)
}
