package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edustack/studyhub/core/material"
	"github.com/edustack/studyhub/core/session"
)

type materialApi struct {
	svc *material.Service
	mgr *session.Manager
}

func registerMaterialAPI(g *echo.Group, auth echo.MiddlewareFunc, svc *material.Service, mgr *session.Manager) {
	api := &materialApi{svc: svc, mgr: mgr}

	mg := g.Group("/materials")
	mg.GET("", api.query)
	mg.GET("/:id", api.get)
	mg.POST("", api.upload, auth)
	mg.PATCH("/:id", api.update, auth)
	mg.POST("/:id/download", api.download, auth)
	mg.DELETE("/:id", api.delete, auth)
}

func (api *materialApi) query(ctx echo.Context) error {
	filter := material.Filter{
		Course:  ctx.QueryParam("course"),
		Subject: ctx.QueryParam("subject"),
	}
	mats, err := api.svc.Query(filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mats)
}

func (api *materialApi) get(ctx echo.Context) error {
	mat, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mat)
}

func (api *materialApi) upload(ctx echo.Context) error {
	var nm material.NewMaterial
	if err := ctx.Bind(&nm); err != nil {
		return err
	}
	mat, err := api.svc.Upload(nm, actingUser(api.mgr))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, mat)
}

func (api *materialApi) update(ctx echo.Context) error {
	var um material.UpdateMaterial
	if err := ctx.Bind(&um); err != nil {
		return err
	}
	mat, err := api.svc.Update(ctx.Param("id"), um)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, mat)
}

func (api *materialApi) download(ctx echo.Context) error {
	api.svc.Download(ctx.Param("id"))
	return ctx.NoContent(http.StatusAccepted)
}

func (api *materialApi) delete(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
