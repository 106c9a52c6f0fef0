package controllerImp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"graze/entities"
	"graze/pkg/entry/service"
)

type EntryCtrl struct{ svc service.EntryService }

func New(svc service.EntryService) *EntryCtrl { return &EntryCtrl{svc} }

type createReq struct {
	Name      string  `json:"name"`
	Notes     string  `json:"notes"`
	AreaAcres float64 `json:"area_acres"`
	HerdSize  int     `json:"herd_size"`
	GrazeDays int     `json:"graze_days"`
}

func (h *EntryCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *EntryCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Create(uid, entities.Entry{
		Name: req.Name, Notes: req.Notes,
		AreaAcres: req.AreaAcres, HerdSize: req.HerdSize, GrazeDays: req.GrazeDays,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EntryCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	var p service.EntryPatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	e, err := h.svc.Patch(uid, uint(id), p)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EntryCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uid, uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EntryCtrl) Duplicate(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	e, err := h.svc.Duplicate(uid, uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EntryCtrl) Reorder(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		EntryID uint `json:"entry_id"`
		To      int  `json:"to"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Reorder(uid, body.EntryID, body.To); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EntryCtrl) GetSeason(c echo.Context) error {
	uid := c.Get("uid").(string)
	start, err := h.svc.SeasonStart(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"season_start": start})
}

func (h *EntryCtrl) PutSeason(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		SeasonStart string `json:"season_start"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.SetSeasonStart(uid, body.SeasonStart); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"season_start": body.SeasonStart})
}

func (h *EntryCtrl) Import(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.ImportCSV(uid, c.Request().Body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *EntryCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	var buf bytes.Buffer
	if err := h.svc.ExportXLSX(uid, &buf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="rotation.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
