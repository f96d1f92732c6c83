package cli

import (
	"context"
	"time"

	"github.com/pressroomhq/pressroom-cli/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the backend and keeps
// the parsed session. The token claims are display-only; the backend
// revalidates every request, so an unparsable token still leaves the user
// logged in with a bare session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		a.notifier.Error("login failed: " + err.Error())
		return err
	}

	sess, err := a.newSession(token, email)
	if err != nil {
		a.log.Warn(ctx, "token claims unreadable", "error", err)
	}
	a.session = sess
	a.notifier.Success("logged in as " + sess.String())
	return nil
}

// Logout drops the token and the session. No backend call: the console holds
// no server-side session state.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.session = nil
	a.current = ""
	a.notifier.Success("logged out")
	return nil
}

// newSession parses the token claims into a session. On a parse failure the
// session still carries the token and the email the user typed.
func (a *App) newSession(token, email string) (*session.Session, error) {
	sess, err := session.FromToken(token)
	if err != nil {
		return &session.Session{Token: token, Email: email}, err
	}
	if sess.Email == "" {
		sess.Email = email
	}
	if sess.Expired(time.Now()) {
		a.notifier.Error("session token is already expired")
	}
	return sess, nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
