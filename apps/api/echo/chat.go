package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/chat"
)

type chatApi struct {
	svc *chat.Service
}

func registerChatAPI(g *echo.Group, svc *chat.Service) {
	api := &chatApi{svc: svc}

	cg := g.Group("/chat")
	cg.GET("/messages", api.transcript)
	cg.POST("/messages", api.send)
	cg.DELETE("/messages", api.clear)
}

type sendRequest struct {
	Text string `json:"text"`
}

func (api *chatApi) transcript(ctx echo.Context) error {
	msgs, err := api.svc.Transcript()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, msgs)
}

func (api *chatApi) send(ctx echo.Context) error {
	var req sendRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	reply, err := api.svc.Send(req.Text)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, reply)
}

func (api *chatApi) clear(ctx echo.Context) error {
	if err := api.svc.Clear(); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
