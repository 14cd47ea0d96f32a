package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/session"
)

type authApi struct {
	mgr *session.Manager
}

func registerAuthAPI(g *echo.Group, mgr *session.Manager) {
	api := &authApi{mgr: mgr}

	ag := g.Group("/auth")
	ag.POST("/signup", api.signUp)
	ag.POST("/signin", api.signIn)
	ag.POST("/signout", api.signOut)
	ag.GET("/me", api.me)
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User        session.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

func (api *authApi) signUp(ctx echo.Context) error {
	var req signUpRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := api.mgr.SignUp(req.Email, req.Password, req.Name, req.Role); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.currentSession())
}

func (api *authApi) signIn(ctx echo.Context) error {
	var req signInRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := api.mgr.SignIn(req.Email, req.Password); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.currentSession())
}

func (api *authApi) signOut(ctx echo.Context) error {
	if err := api.mgr.SignOut(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) me(ctx echo.Context) error {
	usr, ok := api.mgr.Current()
	if !ok {
		return errUnauthorized
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *authApi) currentSession() sessionResponse {
	usr, _ := api.mgr.Current()
	resp := sessionResponse{User: usr}
	if sess := api.mgr.Session(); sess != nil {
		resp.AccessToken = sess.AccessToken
	}
	return resp
}
