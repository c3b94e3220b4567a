package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-keeper/models"
)

type appwriteAccount struct {
	*appwriteClient
}

type accountResponse struct {
	ID    string `json:"$id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r accountResponse) identity() models.Identity {
	return models.Identity{ID: r.ID, Name: r.Name, Email: r.Email}
}

type sessionResponse struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Expire string `json:"expire"`
	Secret string `json:"secret"`
}

// sessionCookie is the name of the cookie Appwrite issues for a project.
func (a *appwriteAccount) sessionCookie() string {
	return "a_session_" + a.projectID
}

// Current implements [IdentityService] with GET /account.
func (a *appwriteAccount) Current(ctx context.Context) (models.Identity, error) {
	if a.Secret() == "" {
		return models.Identity{}, fmt.Errorf("%w: no active session", ErrUnauthorized)
	}

	resp, err := a.request(ctx).Get("/account")
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: current account request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var acc accountResponse
	if err = decodeJSON(resp, &acc, "current account"); err != nil {
		return models.Identity{}, err
	}
	return acc.identity(), nil
}

// CreateAccount implements [IdentityService] with POST /account.
func (a *appwriteAccount) CreateAccount(ctx context.Context, email, password, name string) (models.Identity, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"userId":   uniqueID,
			"email":    email,
			"password": password,
			"name":     name,
		}).
		Post("/account")
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: create account request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var acc accountResponse
	if err = decodeJSON(resp, &acc, "create account"); err != nil {
		return models.Identity{}, err
	}
	return acc.identity(), nil
}

// CreateSession implements [IdentityService] with POST
// /account/sessions/email. The secret is taken from the response body and,
// when the project does not expose it there, from the session cookie.
func (a *appwriteAccount) CreateSession(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/account/sessions/email")
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: create session request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	var s sessionResponse
	if err = decodeJSON(resp, &s, "create session"); err != nil {
		return models.Session{}, err
	}

	secret := s.Secret
	if secret == "" {
		for _, c := range resp.Cookies() {
			if c.Name == a.sessionCookie() {
				secret = c.Value
				break
			}
		}
		a.logger.Debug().Str("func", "*appwriteAccount.CreateSession").Bool("from_cookie", secret != "").Msg("session secret not in body")
	}
	if secret == "" {
		return models.Session{}, fmt.Errorf("%w: session secret missing in response", ErrRemote)
	}

	expire, _ := time.Parse(time.RFC3339Nano, s.Expire)
	a.SetSecret(secret)

	return models.Session{ID: s.ID, UserID: s.UserID, Secret: secret, Expire: expire}, nil
}

// DeleteAllSessions implements [IdentityService] with DELETE
// /account/sessions. The secret is dropped once the server confirms.
func (a *appwriteAccount) DeleteAllSessions(ctx context.Context) error {
	resp, err := a.request(ctx).Delete("/account/sessions")
	if err != nil {
		return fmt.Errorf("%w: delete sessions request: %v", ErrRemote, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	a.SetSecret("")
	return nil
}
