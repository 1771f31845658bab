package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/M-Vasconez/fin/internal/apperrors"
	portssvc "github.com/M-Vasconez/fin/internal/core/ports/services"
	"github.com/M-Vasconez/fin/internal/core/services"
	"github.com/M-Vasconez/fin/internal/dto"
	"github.com/M-Vasconez/fin/internal/middleware"
)

// dataExchangeHandler handles CSV export downloads and import uploads.
type dataExchangeHandler struct {
	dataExchangeService portssvc.DataExchangeSvcFacade
}

func newDataExchangeHandler(ds portssvc.DataExchangeSvcFacade) *dataExchangeHandler {
	return &dataExchangeHandler{dataExchangeService: ds}
}

// registerDataExchangeRoutes registers the import and export endpoints.
func registerDataExchangeRoutes(rg *gin.RouterGroup, dataExchangeService portssvc.DataExchangeSvcFacade) {
	h := newDataExchangeHandler(dataExchangeService)

	data := rg.Group("/data")
	{
		data.GET("/export/:type", h.exportCSV)
		data.POST("/import", h.importCSV)
	}
}

func (h *dataExchangeHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dataType := c.Param("type")

	fileName, content, err := h.dataExchangeService.ExportCSV(c.Request.Context(), dataType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to export data", slog.String("type", dataType), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export data"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/csv", content)
}

func (h *dataExchangeHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	form, err := c.MultipartForm()
	if err != nil {
		logger.Warn("Failed to parse multipart form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form: " + err.Error()})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded; use the 'files' field"})
		return
	}

	files := make([]dto.ImportFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			logger.Warn("Failed to open uploaded file", slog.String("file", fh.Filename), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file " + fh.Filename})
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, services.MaxImportFileSize+1))
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file " + fh.Filename})
			return
		}
		files = append(files, dto.ImportFile{Name: fh.Filename, Data: data})
	}

	summary, err := h.dataExchangeService.ImportFiles(c.Request.Context(), files)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import files", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import files"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
