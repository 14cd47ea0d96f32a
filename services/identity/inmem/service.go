package identitysvc

import (
	"fmt"
	"net/mail"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
)

// Provider rejection messages, kept stable: the session layer renders them as-is.
const (
	msgAlreadyRegistered  = "User already registered"
	msgInvalidCredentials = "Invalid login credentials"
)

type account struct {
	id           string
	email        string
	passwordHash []byte
	metadata     map[string]string
	createdAt    time.Time
}

// Service is the process-local stand-in for the hosted identity provider.
// It keeps the account book and the single live session in memory, mints
// signed access tokens and fans session changes out to listeners.
type Service struct {
	mu        sync.Mutex
	accounts  map[string]*account // keyed by lowercased email
	current   *session.Session
	listeners map[int]func(*session.Session)
	nextLsn   int

	mailSvc  core.EmailService
	log      core.Logger
	secret   []byte
	tokenTTL time.Duration
}

var _ session.Provider = (*Service)(nil)

func NewService(mailSvc core.EmailService, log core.Logger) *Service {
	return &Service{
		accounts:  make(map[string]*account),
		listeners: make(map[int]func(*session.Session)),
		mailSvc:   mailSvc,
		log:       log,
		secret:    []byte(core.Conf.GetString("secretKey")),
		tokenTTL:  core.Conf.GetDuration("sessionTTL"),
	}
}

func (svc *Service) CurrentSession() (*session.Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return copySession(svc.current), nil
}

func (svc *Service) SignUp(creds session.Credentials, attrs session.ProfileAttributes) (*session.Session, error) {
	email := core.CleanString(creds.Email, true /* lower */)

	svc.mu.Lock()
	if _, exists := svc.accounts[email]; exists {
		svc.mu.Unlock()
		return nil, core.NewAuthError("signup", msgAlreadyRegistered)
	}
	if err := checkPasswordPolicy(creds.Password, email, attrs.Name); err != nil {
		svc.mu.Unlock()
		return nil, core.NewAuthError("signup", err.Error())
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		svc.mu.Unlock()
		return nil, core.NewAuthError("signup", "could not process password")
	}

	acct := &account{
		id:           uuid.New().String(),
		email:        email,
		passwordHash: hash,
		metadata: map[string]string{
			session.MetaName: attrs.Name,
			session.MetaRole: attrs.Role,
		},
		createdAt: time.Now().UTC(),
	}
	svc.accounts[email] = acct

	sess, err := svc.newSession(acct)
	if err != nil {
		delete(svc.accounts, email)
		svc.mu.Unlock()
		return nil, core.NewAuthError("signup", "could not establish session")
	}
	svc.current = sess
	svc.mu.Unlock()

	svc.broadcast(sess)
	svc.sendWelcomeEmail(acct)
	return copySession(sess), nil
}

func (svc *Service) SignInWithPassword(creds session.Credentials) (*session.Session, error) {
	email := core.CleanString(creds.Email, true /* lower */)

	svc.mu.Lock()
	acct, ok := svc.accounts[email]
	if !ok || bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(creds.Password)) != nil {
		svc.mu.Unlock()
		return nil, core.NewAuthError("signin", msgInvalidCredentials)
	}
	sess, err := svc.newSession(acct)
	if err != nil {
		svc.mu.Unlock()
		return nil, core.NewAuthError("signin", "could not establish session")
	}
	svc.current = sess
	svc.mu.Unlock()

	svc.broadcast(sess)
	return copySession(sess), nil
}

func (svc *Service) SignOut() error {
	svc.mu.Lock()
	svc.current = nil
	svc.mu.Unlock()

	svc.broadcast(nil)
	return nil
}

func (svc *Service) OnSessionChange(fn func(*session.Session)) (unsubscribe func()) {
	svc.mu.Lock()
	id := svc.nextLsn
	svc.nextLsn++
	svc.listeners[id] = fn
	svc.mu.Unlock()

	return func() {
		svc.mu.Lock()
		delete(svc.listeners, id)
		svc.mu.Unlock()
	}
}

// ExpireSession simulates a provider-driven expiry (token revoked upstream,
// external sign-out). Listeners see the session disappear.
func (svc *Service) ExpireSession() {
	svc.mu.Lock()
	svc.current = nil
	svc.mu.Unlock()

	svc.broadcast(nil)
}

// VerifyToken checks an access token's signature and expiry and returns its
// subject (the user id).
func (svc *Service) VerifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return svc.secret, nil
	})
	if err != nil {
		return "", core.NewAuthError("verify", "invalid or expired token")
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}

func (svc *Service) newSession(acct *account) (*session.Session, error) {
	token, err := svc.mintToken(acct)
	if err != nil {
		return nil, err
	}
	md := make(map[string]string, len(acct.metadata))
	for k, v := range acct.metadata {
		md[k] = v
	}
	return &session.Session{
		AccessToken: token,
		UserID:      acct.id,
		Email:       acct.email,
		Metadata:    md,
	}, nil
}

func (svc *Service) mintToken(acct *account) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   acct.id,
		"email": acct.email,
		"name":  acct.metadata[session.MetaName],
		"role":  acct.metadata[session.MetaRole],
		"iat":   now.Unix(),
		"exp":   now.Add(svc.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
}

// broadcast fans the change out to a snapshot of the listeners, each with its
// own session copy.
func (svc *Service) broadcast(sess *session.Session) {
	svc.mu.Lock()
	fns := make([]func(*session.Session), 0, len(svc.listeners))
	for _, fn := range svc.listeners {
		fns = append(fns, fn)
	}
	svc.mu.Unlock()

	for _, fn := range fns {
		fn(copySession(sess))
	}
}

func (svc *Service) sendWelcomeEmail(acct *account) {
	appName := core.Conf.GetString("appName")
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: acct.metadata[session.MetaName], Address: acct.email}},
		Subject: "Welcome to " + appName,
		TextContent: fmt.Sprintf(
			"Hi %s,\r\n\r\nYour %s account is ready. Sign in to browse study materials, "+
				"join meetings and book alumni mentoring sessions.\r\n",
			acct.metadata[session.MetaName], appName),
	})
}

func copySession(sess *session.Session) *session.Session {
	if sess == nil {
		return nil
	}
	cp := *sess
	cp.Metadata = make(map[string]string, len(sess.Metadata))
	for k, v := range sess.Metadata {
		cp.Metadata[k] = v
	}
	return &cp
}
