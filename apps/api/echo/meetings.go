package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/meeting"
	"github.com/edustack/studyhub/core/session"
)

type meetingApi struct {
	svc *meeting.Service
	mgr *session.Manager
}

func registerMeetingAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *meeting.Service, mgr *session.Manager) {
	api := &meetingApi{svc: svc, mgr: mgr}

	mg := g.Group("/meetings")
	mg.GET("", api.query)
	mg.GET("/:id", api.get)
	mg.GET("/:id/participants", api.participants)
	mg.POST("", api.create, auth)
	mg.POST("/:id/join", api.join, auth)
	mg.POST("/:id/leave", api.leave, auth)
	mg.POST("/:id/cancel", api.cancel, auth)
	mg.DELETE("/:id", api.delete, auth)
}

func (api *meetingApi) query(ctx echo.Context) error {
	filter := meeting.Filter{
		UpcomingOnly: ctx.QueryParam("upcoming") == "true",
		Status:       ctx.QueryParam("status"),
	}
	mtgs, err := api.svc.Query(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mtgs)
}

func (api *meetingApi) get(ctx echo.Context) error {
	mtg, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mtg)
}

func (api *meetingApi) participants(ctx echo.Context) error {
	ps, err := api.svc.Participants(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ps)
}

func (api *meetingApi) create(ctx echo.Context) error {
	var nm meeting.NewMeeting
	if err := ctx.Bind(&nm); err != nil {
		return err
	}
	mtg, err := api.svc.Create(nm, actingUser(api.mgr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, mtg)
}

func (api *meetingApi) join(ctx echo.Context) error {
	api.svc.Join(ctx.Param("id"), actingUser(api.mgr))
	return ctx.NoContent(http.StatusAccepted)
}

func (api *meetingApi) leave(ctx echo.Context) error {
	api.svc.Leave(ctx.Param("id"), actingUser(api.mgr))
	return ctx.NoContent(http.StatusAccepted)
}

func (api *meetingApi) cancel(ctx echo.Context) error {
	mtg, err := api.svc.Cancel(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mtg)
}

func (api *meetingApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
