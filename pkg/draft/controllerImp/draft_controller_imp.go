package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"graze/pkg/draft/service"
)

type DraftCtrl struct{ svc service.DraftService }

func New(svc service.DraftService) *DraftCtrl { return &DraftCtrl{svc} }

func (h *DraftCtrl) Save(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Label string `json:"label"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := h.svc.Save(uid, body.Label)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DraftCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.ListByYear(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DraftCtrl) Load(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Load(uid, uint(id)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *DraftCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uid, uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
