package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/chat"
	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/mentoring"
	"github.com/edustack/studyhub/core/session"
)

type (
	// TokenVerifier checks an access token and returns its subject (user id).
	TokenVerifier interface {
		VerifyToken(token string) (string, error)
	}

	Options struct {
		Address        string
		DisableReqLogs bool

		Logger       core.Logger
		SessionMgr   *session.Manager
		Verifier     TokenVerifier
		MaterialSvc  *material.Service
		MeetingSvc   *meeting.Service
		MentoringSvc *mentoring.Service
		ChatSvc      *chat.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	auth := requireAuth(s.opts.Verifier, s.opts.SessionMgr)

	registerAuthAPI(v1, s.opts.SessionMgr)
	registerMaterialAPI(v1, auth, s.opts.MaterialSvc, s.opts.SessionMgr)
	registerMeetingAPI(v1, auth, s.opts.MeetingSvc, s.opts.SessionMgr)
	registerMentoringAPI(v1, auth, s.opts.MentoringSvc, s.opts.SessionMgr)
	registerChatAPI(v1, s.opts.ChatSvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to StudyHub API!")
}
