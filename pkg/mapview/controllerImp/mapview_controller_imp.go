package controllerImp

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	entrysvc "graze/pkg/entry/service"
	featsvc "graze/pkg/feature/service"
	"graze/pkg/scene"
)

type MapCtrl struct {
	entries  entrysvc.EntryService
	features featsvc.FeatureService
}

func New(entries entrysvc.EntryService, features featsvc.FeatureService) *MapCtrl {
	return &MapCtrl{entries: entries, features: features}
}

func (h *MapCtrl) build(c echo.Context) (scene.Scene, bool, error) {
	uid := c.Get("uid").(string)
	bounds, err := h.features.Boundaries(uid)
	if err != nil {
		return scene.Scene{}, false, err
	}
	if len(bounds) == 0 {
		// nothing imported yet: a notice, not a crash
		return scene.Scene{}, false, nil
	}
	list, err := h.entries.List(uid)
	if err != nil {
		return scene.Scene{}, false, err
	}
	return scene.Build(list, bounds), true, nil
}

func (h *MapCtrl) SVG(c echo.Context) error {
	s, ok, err := h.build(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no boundaries loaded; import a GeoJSON file first"})
	}
	var buf bytes.Buffer
	s.WriteSVG(&buf)
	return c.Blob(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (h *MapCtrl) PNG(c echo.Context) error {
	s, ok, err := h.build(c)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !ok {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no boundaries loaded; import a GeoJSON file first"})
	}

	magnify := 2
	if q := c.QueryParam("scale"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v >= 1 {
			magnify = v
		}
	}
	if magnify > 8 {
		magnify = 8
	}

	var buf bytes.Buffer
	if err := s.RenderPNG(&buf, magnify); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
