package session

import (
	"github.com/pkg/errors"

	"github.com/edustack/studyhub/core"
)

// Metadata keys the provider stores profile attributes under.
const (
	MetaName = "name"
	MetaRole = "role"
)

type (
	Credentials struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// ProfileAttributes travel to the provider's metadata bag at sign-up.
	ProfileAttributes struct {
		Name string `json:"name" validate:"required"`
		Role string `json:"role" validate:"required,portalrole"`
	}

	// Session is the provider-issued handle tying this client to a credential.
	// AccessToken is opaque to us; Metadata is the provider's untyped bag.
	Session struct {
		AccessToken string
		UserID      string
		Email       string
		Metadata    map[string]string
	}

	// Provider is the identity provider boundary. It is consumed, never
	// reimplemented here; services/identity holds the local stand-in.
	Provider interface {
		// CurrentSession returns the live session, or nil if there is none.
		CurrentSession() (*Session, error)
		SignUp(creds Credentials, attrs ProfileAttributes) (*Session, error)
		SignInWithPassword(creds Credentials) (*Session, error)
		SignOut() error
		// OnSessionChange registers a listener fired on every provider-driven
		// session change (sign-in, refresh, external sign-out, expiry).
		// The returned func releases the subscription.
		OnSessionChange(fn func(*Session)) (unsubscribe func())
	}
)

// UserFromSession projects the provider's session payload onto a local User.
// The projection fails closed: a missing or unknown role makes the session
// unusable rather than guessing a role.
func UserFromSession(sess *Session) (User, error) {
	if sess == nil {
		return User{}, errors.New("no session")
	}
	role := core.CleanString(sess.Metadata[MetaRole], true /* lower */)
	if !ValidRole(role) {
		return User{}, errors.Errorf("session metadata holds no known role (got %q)", role)
	}
	return User{
		ID:    sess.UserID,
		Email: sess.Email,
		Name:  core.CleanString(sess.Metadata[MetaName]),
		Role:  role,
	}, nil
}
