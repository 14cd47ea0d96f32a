package identitysvc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
	"github.com/edustack/studyhub/tests"
)

func creds(email, pwd string) session.Credentials {
	return session.Credentials{Email: email, Password: pwd}
}

func attrs(name, role string) session.ProfileAttributes {
	return session.ProfileAttributes{Name: name, Role: role}
}

func TestService_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		pwd        string
		wantErrStr string
	}{
		{name: "too short", email: "asha@test.cd", pwd: "s3cret", wantErrStr: "password must contain at least 8 characters"},
		{name: "all numeric", email: "asha@test.cd", pwd: "123456789", wantErrStr: "password cannot be entirely numeric"},
		{name: "too similar to email", email: "asha@test.cd", pwd: "asha@test.cd", wantErrStr: "password cannot be similar to your email or name"},
		{name: "acceptable", email: "asha@test.cd", pwd: "v3ryS3cret!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, _ := testutil.NewProvider(t)

			sess, err := provider.SignUp(creds(tt.email, tt.pwd), attrs("Asha", session.RoleStudent))
			if tt.wantErrStr != "" {
				assert.True(t, core.IsAuthError(err))
				assert.EqualError(t, err, tt.wantErrStr)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, sess.UserID)
			assert.NotEmpty(t, sess.AccessToken)
			assert.Equal(t, "asha@test.cd", sess.Email)
			assert.Equal(t, "Asha", sess.Metadata[session.MetaName])
			assert.Equal(t, session.RoleStudent, sess.Metadata[session.MetaRole])
		})
	}
}

func TestService_SignUp_duplicateEmail(t *testing.T) {
	provider, _ := testutil.NewProvider(t)
	testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)

	_, err := provider.SignUp(creds("Asha@Test.cd", "anoth3rS3cret!"), attrs("Asha Again", session.RoleStudent))
	assert.True(t, core.IsAuthError(err))
	assert.EqualError(t, err, "User already registered")
}

func TestService_SignUp_sendsWelcomeEmail(t *testing.T) {
	provider, mailSvc := testutil.NewProvider(t)
	testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)

	sent := mailSvc.SentMessages()
	if assert.Len(t, sent, 1) {
		assert.Equal(t, "asha@test.cd", sent[0].To[0].Address)
		assert.Contains(t, sent[0].Subject, "Welcome")
		assert.Contains(t, sent[0].TextContent, "Asha")
	}
}

func TestService_SignInWithPassword(t *testing.T) {
	provider, _ := testutil.NewProvider(t)
	testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)
	assert.NoError(t, provider.SignOut())

	t.Run("unknown email", func(t *testing.T) {
		_, err := provider.SignInWithPassword(creds("nobody@test.cd", "v3ryS3cret!"))
		assert.EqualError(t, err, "Invalid login credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.SignInWithPassword(creds("asha@test.cd", "wrong"))
		assert.EqualError(t, err, "Invalid login credentials")
	})

	t.Run("success", func(t *testing.T) {
		sess, err := provider.SignInWithPassword(creds("ASHA@test.cd", "v3ryS3cret!"))
		assert.NoError(t, err)
		assert.NotEmpty(t, sess.AccessToken)

		current, err := provider.CurrentSession()
		assert.NoError(t, err)
		assert.Equal(t, sess.UserID, current.UserID)
	})
}

func TestService_OnSessionChange(t *testing.T) {
	provider, _ := testutil.NewProvider(t)

	var got []*session.Session
	unsub := provider.OnSessionChange(func(sess *session.Session) {
		got = append(got, sess)
	})

	sess := testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)
	assert.NoError(t, provider.SignOut())
	if assert.Len(t, got, 2) {
		assert.Equal(t, sess.UserID, got[0].UserID)
		assert.Nil(t, got[1])
	}

	// released listeners hear nothing further
	unsub()
	_, err := provider.SignInWithPassword(creds("asha@test.cd", "v3ryS3cret!"))
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_ExpireSession(t *testing.T) {
	provider, _ := testutil.NewProvider(t)
	testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)

	provider.ExpireSession()

	current, err := provider.CurrentSession()
	assert.NoError(t, err)
	assert.Nil(t, current)
}

func TestService_VerifyToken(t *testing.T) {
	provider, _ := testutil.NewProvider(t)
	sess := testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)

	t.Run("valid token", func(t *testing.T) {
		sub, err := provider.VerifyToken(sess.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, sess.UserID, sub)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := provider.VerifyToken("not-a-token")
		assert.True(t, core.IsAuthError(err))
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := provider.VerifyToken(sess.AccessToken + "x")
		assert.True(t, core.IsAuthError(err))
	})
}

func TestService_sessionCopiesAreIsolated(t *testing.T) {
	provider, _ := testutil.NewProvider(t)
	sess := testutil.CreateAccount(t, provider, "Asha", "asha@test.cd", "v3ryS3cret!", session.RoleStudent)

	// mutating a returned copy must not leak into the provider
	sess.Metadata[session.MetaRole] = session.RoleAdmin

	current, err := provider.CurrentSession()
	assert.NoError(t, err)
	assert.Equal(t, session.RoleStudent, current.Metadata[session.MetaRole])
}
