package controller

import "github.com/labstack/echo/v4"

type EntryController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
	Duplicate(c echo.Context) error
	Reorder(c echo.Context) error
	GetSeason(c echo.Context) error
	PutSeason(c echo.Context) error
	Import(c echo.Context) error
	Export(c echo.Context) error
}
