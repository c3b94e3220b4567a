package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-journal-keeper/models"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) credentials(name string, args []string, withName bool) (models.Credentials, error) {
	var creds models.Credentials

	fs := newFlagSet(name)
	fs.StringVar(&creds.Email, "email", "", "account email")
	fs.StringVar(&creds.Password, "password", "", "account password")
	if withName {
		fs.StringVar(&creds.Name, "name", "", "display name")
	}
	if err := fs.Parse(args); err != nil {
		return creds, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if creds.Password == "" {
		password, err := a.readPassword()
		if err != nil {
			return creds, err
		}
		creds.Password = password
	}
	return creds, nil
}

func (a *App) signIn(ctx context.Context, args []string) error {
	creds, err := a.credentials("signin", args, false)
	if err != nil {
		return a.fail(err)
	}

	res := a.holder.SignIn(ctx, creds)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("signed in")
	a.printf("%s\n", renderSnapshot(res.Data))
	return nil
}

func (a *App) signUp(ctx context.Context, args []string) error {
	creds, err := a.credentials("signup", args, true)
	if err != nil {
		return a.fail(err)
	}

	res := a.holder.SignUp(ctx, creds)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("account created")
	a.printf("%s\n", renderSnapshot(res.Data))
	return nil
}

func (a *App) signOut(ctx context.Context, _ []string) error {
	res := a.holder.SignOut(ctx)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("signed out")
	return nil
}

func (a *App) whoAmI(_ context.Context, _ []string) error {
	a.printf("%s\n", renderSnapshot(a.holder.Snapshot()))
	return nil
}
