package testutil

import (
	"log"
	"os"
	"testing"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
	"github.com/edustack/studyhub/services/email/dummy"
	"github.com/edustack/studyhub/services/identity/inmem"
	"github.com/edustack/studyhub/services/logger"
	"github.com/edustack/studyhub/storage/inmem"
)

func init() {
	core.SetTestMode()
}

// NewLogger returns a muted logger; flip the flag when debugging a test.
func NewLogger() core.Logger {
	l := logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags|log.Lshortfile))
	l.Enable(false)
	return l
}

// OpenDB hands each test its own empty store. Fixtures are opt-in via
// inmemdb.Seed; tests never get them implicitly.
func OpenDB(t *testing.T) *inmemdb.DB {
	t.Helper()
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	return db
}

// NewProvider builds a fresh identity provider backed by a recording mail
// service.
func NewProvider(t *testing.T) (*identitysvc.Service, *dummymail.Service) {
	t.Helper()
	mailSvc := dummymail.NewService()
	return identitysvc.NewService(mailSvc, NewLogger()), mailSvc
}

// CreateAccount registers an account and leaves it signed in on the provider.
func CreateAccount(t *testing.T, provider *identitysvc.Service, name, email, pwd, role string) *session.Session {
	t.Helper()
	sess, err := provider.SignUp(
		session.Credentials{Email: email, Password: pwd},
		session.ProfileAttributes{Name: name, Role: role},
	)
	if err != nil {
		t.Fatalf("CreateAccount() failed: %v", err)
	}
	return sess
}
