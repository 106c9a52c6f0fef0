package router

import (
	"github.com/labstack/echo/v4"

	entryctrl "graze/pkg/entry/controller"
	"graze/pkg/middleware"
)

func New(
	e *echo.Echo,
	entryCtrl entryctrl.EntryController,
	featureCtrl interface {
		Import(echo.Context) error
		List(echo.Context) error
	},
	mapCtrl interface {
		SVG(echo.Context) error
		PNG(echo.Context) error
	},
	draftCtrl interface {
		Save(echo.Context) error
		List(echo.Context) error
		Load(echo.Context) error
		Delete(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)

	api.GET("/entries", entryCtrl.List)
	api.POST("/entries", entryCtrl.Create)
	api.PATCH("/entries/:id", entryCtrl.Patch)
	api.DELETE("/entries/:id", entryCtrl.Delete)
	api.POST("/entries/:id/duplicate", entryCtrl.Duplicate)
	api.POST("/entries/reorder", entryCtrl.Reorder)
	api.POST("/entries/import", entryCtrl.Import)
	api.GET("/entries/export", entryCtrl.Export)

	api.GET("/season", entryCtrl.GetSeason)
	api.PUT("/season", entryCtrl.PutSeason)

	api.POST("/features/import", featureCtrl.Import)
	api.GET("/features", featureCtrl.List)

	api.GET("/map.svg", mapCtrl.SVG)
	api.GET("/map.png", mapCtrl.PNG)

	api.POST("/drafts", draftCtrl.Save)
	api.GET("/drafts", draftCtrl.List)
	api.POST("/drafts/:id/load", draftCtrl.Load)
	api.DELETE("/drafts/:id", draftCtrl.Delete)

	return e
}
