package session

import (
	"sync"

	"github.com/edustack/studyhub/core"
)

// State of the single authentication session.
type State int

const (
	// StateUnknown only holds before the initial provider check resolves.
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Manager is the single source of truth for "who is acting now".
// It adopts any pre-existing provider session at construction, tracks
// provider-driven changes for as long as it lives, and exposes the
// sign-up/sign-in/sign-out operations. It never writes to any resource store.
type Manager struct {
	provider Provider
	log      core.Logger

	mu      sync.RWMutex
	state   State
	sess    *Session
	usr     User
	lastErr error

	unsub func()
}

// NewManager builds a Manager, resolves the initial session check and
// registers the provider change listener. Close releases the listener.
func NewManager(provider Provider, log core.Logger) *Manager {
	m := &Manager{
		provider: provider,
		log:      log,
		state:    StateUnknown,
	}
	sess, err := provider.CurrentSession()
	if err != nil {
		m.log.Warn("session: initial check failed", err)
		m.applySession(nil)
	} else {
		m.applySession(sess)
	}
	m.unsub = provider.OnSessionChange(m.applySession)
	return m
}

// Close releases the provider subscription. The Manager must not be used after.
func (m *Manager) Close() {
	if m.unsub != nil {
		m.unsub()
		m.unsub = nil
	}
}

// applySession is the only state transition point; it also runs as the
// provider change listener.
func (m *Manager) applySession(sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess == nil {
		m.state, m.sess, m.usr = StateAnonymous, nil, User{}
		return
	}
	usr, err := UserFromSession(sess)
	if err != nil {
		// fail closed: a session we cannot project is no session
		m.log.Warn("session: dropping session with unusable payload", err)
		m.state, m.sess, m.usr = StateAnonymous, nil, User{}
		m.lastErr = err
		return
	}
	m.state, m.sess, m.usr = StateAuthenticated, sess, usr
}

// SignUp registers a new account with the given role and adopts the session
// the provider returns. Provider rejections are recorded and returned,
// never swallowed.
func (m *Manager) SignUp(email, password, name, role string) error {
	creds := Credentials{Email: core.CleanString(email, true /* lower */), Password: password}
	attrs := ProfileAttributes{Name: core.CleanString(name), Role: core.CleanString(role, true /* lower */)}
	if err := core.Validate.Struct(creds); err != nil {
		return m.recordErr(core.TranslateValidatorError(err))
	}
	if err := core.Validate.Struct(attrs); err != nil {
		return m.recordErr(core.TranslateValidatorError(err))
	}

	sess, err := m.provider.SignUp(creds, attrs)
	if err != nil {
		return m.recordErr(err)
	}
	m.clearErr()
	m.applySession(sess)
	return nil
}

// SignIn establishes the session from the provider's password check.
func (m *Manager) SignIn(email, password string) error {
	creds := Credentials{Email: core.CleanString(email, true /* lower */), Password: password}
	if err := core.Validate.Struct(creds); err != nil {
		return m.recordErr(core.TranslateValidatorError(err))
	}

	sess, err := m.provider.SignInWithPassword(creds)
	if err != nil {
		return m.recordErr(err)
	}
	m.clearErr()
	m.applySession(sess)
	return nil
}

// SignOut revokes the provider session. Local state is only cleared once the
// provider confirms; on failure the error is surfaced and the session kept.
func (m *Manager) SignOut() error {
	if err := m.provider.SignOut(); err != nil {
		return m.recordErr(err)
	}
	m.clearErr()
	m.applySession(nil)
	return nil
}

// Current returns the acting user, and whether one is authenticated.
func (m *Manager) Current() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usr, m.state == StateAuthenticated
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Session returns a copy of the live provider session, or nil.
func (m *Manager) Session() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sess == nil {
		return nil
	}
	cp := *m.sess
	return &cp
}

// Err returns the last recorded auth error; transient, cleared on the next
// successful operation.
func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *Manager) recordErr(err error) error {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
	return err
}

func (m *Manager) clearErr() {
	m.mu.Lock()
	m.lastErr = nil
	m.mu.Unlock()
}
