package main

import (
	"github.com/pkg/errors"

	"github.com/edustack/studyhub/core"
	"github.com/edustack/studyhub/core/session"
)

// addUser registers an account through the identity provider and signs it
// back out so the CLI never keeps a live session.
func (cli *commandLine) addUser(email, name, role, pwd string) error {
	role = core.CleanString(role, true /* lower */)
	if !session.ValidRole(role) {
		return errors.Errorf("unknown role %q", role)
	}

	creds := session.Credentials{
		Email:    core.CleanString(email, true /* lower */),
		Password: pwd,
	}
	attrs := session.ProfileAttributes{
		Name: core.CleanString(name),
		Role: role,
	}
	if _, err := cli.provider.SignUp(creds, attrs); err != nil {
		return err
	}
	return cli.provider.SignOut()
}
