package main

import (
	stdlog "log"
	"os"

	"github.com/edustack/studyhub/apps/api/echo"
	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/chat"
	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/mentoring"
	"github.com/edustack/studyhub/core/session"
	"github.com/edustack/studyhub/services/email"
	"github.com/edustack/studyhub/services/email/sendgrid"
	"github.com/edustack/studyhub/services/identity/inmem"
	logsvc "github.com/edustack/studyhub/services/logger"
	"github.com/edustack/studyhub/services/notifier"
	"github.com/edustack/studyhub/storage/inmem"
)

func main() {
	std := stdlog.New(os.Stdout, "API : ", stdlog.LstdFlags|stdlog.Lshortfile)

	var log core.Logger
	if core.Conf.GetString("rollbarToken") != "" {
		log = logsvc.NewRollbarLogger(std)
	} else {
		log = logsvc.NewStdLogger(std)
	}
	log.Enable(core.Conf.GetBool("debug"))

	// set up storage
	db, err := inmemdb.Open()
	errAndDie(log, err)
	errAndDie(log, inmemdb.Seed(db))

	// set up services
	var mailSvc core.EmailService
	if core.Conf.GetBool("debug") {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = sendgridmail.NewService(log)
	}
	notif := notifysvc.NewConsoleNotifier()

	provider := identitysvc.NewService(mailSvc, log)
	mgr := session.NewManager(provider, log)
	defer mgr.Close()

	matSvc := material.NewService(inmemdb.NewMaterialRepository(db), notif, log)
	mtgSvc := meeting.NewService(inmemdb.NewMeetingRepository(db), notif, log)
	mentSvc := mentoring.NewService(inmemdb.NewMentoringRepository(db), notif, log)
	chatSvc := chat.NewService(inmemdb.NewChatRepository(db), notif, log)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:      core.Conf.GetString("serverAddr"),
			Logger:       log,
			SessionMgr:   mgr,
			Verifier:     provider,
			MaterialSvc:  matSvc,
			MeetingSvc:   mtgSvc,
			MentoringSvc: mentSvc,
			ChatSvc:      chatSvc,
		},
	)
	app.Start()
}

func errAndDie(log core.Logger, err error) {
	if err != nil {
		log.Fatal("api: startup failed", err)
	}
}
