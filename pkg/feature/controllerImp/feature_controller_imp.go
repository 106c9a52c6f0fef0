package controllerImp

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"graze/pkg/feature/service"
)

type FeatureCtrl struct{ svc service.FeatureService }

func New(svc service.FeatureService) *FeatureCtrl { return &FeatureCtrl{svc} }

func (h *FeatureCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "read body"})
	}
	kept, dropped, err := h.svc.ImportGeoJSON(uid, body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": kept, "dropped": dropped})
}

func (h *FeatureCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
