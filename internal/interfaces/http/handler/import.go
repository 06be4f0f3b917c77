package handler

import (
	"net/http"

	"github.com/erp/order-import/internal/application/orderimport"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportHandler exposes the order import endpoints. Both endpoints always
// answer 200 with a structured result document; failures are reported in the
// body so upstream delivery systems never retry on HTTP status alone.
type ImportHandler struct {
	BaseHandler
	importService *orderimport.OrderImportService
	batchService  *orderimport.BatchImportService
	logger        *zap.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(
	importService *orderimport.OrderImportService,
	batchService *orderimport.BatchImportService,
	logger *zap.Logger,
) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		batchService:  batchService,
		logger:        logger.Named("import_handler"),
	}
}

// ImportOrder handles POST /order/import
func (h *ImportHandler) ImportOrder(c *gin.Context) {
	var envelope orderimport.Envelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		h.logger.Warn("malformed import payload", zap.Error(err))
		c.JSON(http.StatusOK, &orderimport.ImportResult{
			Error: "Invalid data format",
			Code:  orderimport.CodeInvalidFormat,
		})
		return
	}

	result := h.importService.Import(c.Request.Context(), envelope)
	c.JSON(http.StatusOK, result)
}

// ImportBatch handles POST /order/import-batch
func (h *ImportHandler) ImportBatch(c *gin.Context) {
	var payload orderimport.BatchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("malformed batch payload", zap.Error(err))
		c.JSON(http.StatusOK, &orderimport.BatchResult{
			Success: false,
			Errors:  []string{"Invalid data format"},
			Created: map[string][]uuid.UUID{},
			Updated: map[string][]uuid.UUID{},
		})
		return
	}

	result := h.batchService.Import(c.Request.Context(), &payload)
	c.JSON(http.StatusOK, result)
}
