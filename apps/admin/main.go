package main

import (
	"log"
	"os"

	"github.com/edustack/studyhub/services/email"
	"github.com/edustack/studyhub/services/identity/inmem"
	"github.com/edustack/studyhub/services/logger"
	"github.com/edustack/studyhub/storage/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up storage
	db, err := inmemdb.Open()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		db:       db,
		provider: identitysvc.NewService(emailsvc.NewConsoleService(), logsvc.NewStdLogger(logger)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
