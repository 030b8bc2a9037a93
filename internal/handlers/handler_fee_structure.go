package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
)

// feeStructureHandler handles HTTP requests for the fee structure catalog.
type feeStructureHandler struct {
	feeStructureService portssvc.FeeStructureSvcFacade
}

func newFeeStructureHandler(feeStructureService portssvc.FeeStructureSvcFacade) *feeStructureHandler {
	return &feeStructureHandler{feeStructureService: feeStructureService}
}

// upsertFeeStructure godoc
// @Summary Create or replace a fee structure
// @Description Stores the fee composition for a (class, term, academic year) key; a second write for the same key replaces the record
// @Tags fee-structures
// @Accept json
// @Produce json
// @Param feeStructure body dto.UpsertFeeStructureRequest true "Fee structure"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /fee-structures [post]
func (h *feeStructureHandler) upsertFeeStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertFeeStructureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for upsertFeeStructure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	fs, err := h.feeStructureService.UpsertFeeStructure(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting fee structure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert fee structure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert fee structure"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(fs))
}

// getFeeStructure godoc
// @Summary Get the fee structure for a class
// @Description Retrieves the fee structure for an exact (class, term, academic year) key
// @Tags fee-structures
// @Produce json
// @Param classID path string true "Class ID"
// @Param term query string true "Term"
// @Param academicYear query string true "Academic year"
// @Success 200 {object} dto.FeeStructureResponse
// @Failure 404 {object} map[string]string "Fee structure not found"
// @Router /fee-structures/{classID} [get]
func (h *feeStructureHandler) getFeeStructure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	classID := c.Param("classID")
	term := c.Query("term")
	academicYear := c.Query("academicYear")

	if term == "" || academicYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term and academicYear query parameters are required"})
		return
	}

	fs, err := h.feeStructureService.GetFeeStructure(c.Request.Context(), classID, term, academicYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fee structure not found"})
			return
		}
		logger.Error("Failed to get fee structure", slog.String("class_id", classID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve fee structure"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponse(fs))
}

// listFeeStructures godoc
// @Summary List fee structures for an academic year
// @Tags fee-structures
// @Produce json
// @Param academicYear query string true "Academic year"
// @Success 200 {array} dto.FeeStructureResponse
// @Router /fee-structures [get]
func (h *feeStructureHandler) listFeeStructures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	academicYear := c.Query("academicYear")

	if academicYear == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "academicYear query parameter is required"})
		return
	}

	structures, err := h.feeStructureService.ListFeeStructuresByYear(c.Request.Context(), academicYear)
	if err != nil {
		logger.Error("Failed to list fee structures", slog.String("academic_year", academicYear), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fee structures"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeStructureResponses(structures))
}

// RegisterFeeStructureRoutes registers fee structure catalog routes
func RegisterFeeStructureRoutes(group *gin.RouterGroup, feeStructureService portssvc.FeeStructureSvcFacade) {
	h := newFeeStructureHandler(feeStructureService)

	feeStructures := group.Group("/fee-structures")
	{
		feeStructures.POST("", h.upsertFeeStructure)
		feeStructures.GET("", h.listFeeStructures)
		feeStructures.GET("/:classID", h.getFeeStructure)
	}
}
