package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/mentoring"
	"github.com/edustack/studyhub/core/session"
)

type mentoringApi struct {
	svc *mentoring.Service
	mgr *session.Manager
}

func registerMentoringAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *mentoring.Service, mgr *session.Manager) {
	api := &mentoringApi{svc: svc, mgr: mgr}

	mg := g.Group("/mentoring")
	mg.GET("/mentors", api.mentors)
	mg.GET("/mentors/:id", api.mentor)
	mg.GET("/sessions", api.sessions, auth)
	mg.POST("/sessions", api.book, auth)
	mg.POST("/sessions/:id/cancel", api.cancel, auth)
	mg.DELETE("/sessions/:id", api.deleteSession, auth)
}

func (api *mentoringApi) mentors(ctx echo.Context) error {
	filter := mentoring.MentorFilter{Specialization: ctx.QueryParam("specialization")}
	mentors, err := api.svc.Mentors(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mentors)
}

func (api *mentoringApi) mentor(ctx echo.Context) error {
	m, err := api.svc.MentorByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *mentoringApi) sessions(ctx echo.Context) error {
	filter := mentoring.SessionFilter{
		StudentID: actingUser(api.mgr).ID,
		Status:    ctx.QueryParam("status"),
	}
	sessions, err := api.svc.Sessions(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *mentoringApi) book(ctx echo.Context) error {
	var ns mentoring.NewSession
	if err := ctx.Bind(&ns); err != nil {
		return err
	}
	s, err := api.svc.Book(ns, actingUser(api.mgr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s)
}

func (api *mentoringApi) cancel(ctx echo.Context) error {
	api.svc.Cancel(ctx.Param("id"))
	return ctx.NoContent(http.StatusAccepted)
}

func (api *mentoringApi) deleteSession(ctx echo.Context) error {
	if err := api.svc.DeleteSession(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
