package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"georeport/assets"
	"georeport/layout"
	"georeport/report"
	"georeport/services"
)

// ExportHandler serves POST /report/export/:format. Each session gets its
// own exporter so the single-flight guard scopes to one editor, not the
// whole process.
type ExportHandler struct {
	store  *report.Store
	rend   *layout.Renderer
	loader assets.Loader

	mu        sync.Mutex
	exporters map[string]*services.Exporter
}

func NewExportHandler(store *report.Store, rend *layout.Renderer, loader assets.Loader) *ExportHandler {
	return &ExportHandler{
		store:     store,
		rend:      rend,
		loader:    loader,
		exporters: make(map[string]*services.Exporter),
	}
}

func (h *ExportHandler) exporter(session string) *services.Exporter {
	h.mu.Lock()
	defer h.mu.Unlock()
	exp, ok := h.exporters[session]
	if !ok {
		exp = services.NewExporter(h.rend, h.loader)
		h.exporters[session] = exp
	}
	return exp
}

// responseSaver streams the generated file back as an attachment download.
type responseSaver struct {
	c *gin.Context
}

func (s responseSaver) Save(f services.File) error {
	s.c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	s.c.Data(http.StatusOK, f.MIME, f.Data)
	return nil
}

// Export runs the pipeline for the session's current snapshot and writes
// the artifact as a download.
func (h *ExportHandler) Export(c *gin.Context) {
	format, err := services.ParseFormat(c.Param("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := SessionID(c)
	data, ok := h.store.Snapshot(session)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	dst := services.Delivery{
		UserAgent: c.GetHeader("User-Agent"),
		Saver:     responseSaver{c: c},
	}
	if _, err := h.exporter(session).Export(c.Request.Context(), format, data, dst); err != nil {
		writeExportError(c, err)
	}
}

func writeExportError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrExportInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "report is missing required fields",
			"fields": verr.Fields,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
	}
}
