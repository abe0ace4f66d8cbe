package cli

import (
	"context"
	"os"

	"github.com/flyzone/flyzone-cli/internal/client/services"
	"github.com/flyzone/flyzone-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and creates an account. The
// backend does not hand out a session token on register, so the auth service
// chains a login with the same credentials; on success the session is live.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, &services.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(password),
	})
	if err != nil {
		return err
	}

	printlnFn("Welcome to FlyZone,", user.DisplayName()+"!")
	return nil
}

// Login prompts for credentials and authenticates. The resulting user is
// partial (the login endpoint returns no identity); the prompt falls back to
// the email.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, &services.LoginRequest{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	printlnFn("Welcome back,", user.DisplayName()+"!")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		printlnFn("Not signed in.")
		return nil
	}
	if u.IdentityPending {
		printlnFn("Signed in as", u.DisplayName(), "(identity pending)")
		return nil
	}
	printlnFn("Signed in as", u.DisplayName(), "<"+u.Email+">")
	return nil
}
