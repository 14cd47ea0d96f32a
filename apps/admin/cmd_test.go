package main

import (
	"testing"

	"github.com/edustack/studyhub/core/session"
	"github.com/edustack/studyhub/services/identity/inmem"
	"github.com/edustack/studyhub/storage/inmem"
	"github.com/edustack/studyhub/tests"
)

var provider *identitysvc.Service

func setup(t *testing.T) *commandLine {
	db := testutil.OpenDB(t)
	provider, _ = testutil.NewProvider(t)

	return &commandLine{
		db:       db,
		provider: provider,
	}
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "email but no name", args: []string{"adduser", "-email", "awe@test.cd"}, wantErr: errHelp},
		{name: "email and name but no password", args: []string{"adduser", "-email", "awe@test.cd", "-name", "Awe"}, wantErr: errHelp},
		{name: "password too short", args: []string{"adduser", "-email", "awe@test.cd", "-name", "Awe"}, extra: extra{pwd: "mdr"}, wantErrStr: "password must contain at least 8 characters"},
		{name: "unknown role", args: []string{"adduser", "-email", "awe@test.cd", "-name", "Awe", "-role", "principal"}, extra: extra{pwd: "v3ryS3cret!"}, wantErrStr: "unknown role \"principal\""},
		{name: "default role", args: []string{"adduser", "-email", "awe@test.cd", "-name", "Awe"}, extra: extra{pwd: "v3ryS3cret!"}},
		{name: "duplicate email", args: []string{"adduser", "-email", "awe@test.cd", "-name", "Awe Again"}, extra: extra{pwd: "v3ryS3cret!"}, wantErrStr: "User already registered"},
		{name: "faculty role", args: []string{"adduser", "-email", "prof@test.cd", "-name", "Prof", "-role", "faculty"}, extra: extra{pwd: "v3ryS3cret!"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				sess, err := provider.SignInWithPassword(session.Credentials{
					Email:    cliFlagValue(args, "-email"),
					Password: tt.extra.(extra).pwd,
				})
				if err != nil {
					t.Fatalf("SignInWithPassword() failed: %v", err)
				}
				if sess == nil || sess.UserID == "" {
					t.Error("account was not created")
				}
			} else if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			} else if tt.wantErrStr != "" {
				if err.Error() != tt.wantErrStr {
					t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
				}
			} else {
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	mentors, err := inmemdb.NewMentoringRepository(cli.db).QueryAllMentors()
	if err != nil {
		t.Fatalf("QueryAllMentors() failed: %v", err)
	}
	if len(mentors) != 4 {
		t.Errorf("seed loaded %d mentors, want 4", len(mentors))
	}
}

func cliFlagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
