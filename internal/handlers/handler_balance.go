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

// balanceHandler handles HTTP requests for derived student fee balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(balanceService portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: balanceService}
}

// getBalance godoc
// @Summary Get a student's fee balance
// @Description Returns the derived balance for a (student, term, academic year) key
// @Tags balances
// @Produce json
// @Param studentID path string true "Student ID"
// @Param term query string true "Term"
// @Param academicYear query string true "Academic year"
// @Success 200 {object} dto.StudentFeeBalanceResponse
// @Failure 400 {object} map[string]string "Missing query parameters"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{studentID}/balance [get]
func (h *balanceHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("studentID")

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term and academicYear query parameters are required"})
		return
	}

	balance, err := h.balanceService.GetBalance(c.Request.Context(), studentID, params.Term, params.AcademicYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get balance", slog.String("student_id", studentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentFeeBalanceResponse(balance))
}

// recomputeBalance godoc
// @Summary Recompute a student's fee balance
// @Description Re-derives and persists the balance from the fee structure and verified payments; safe to invoke repeatedly
// @Tags balances
// @Produce json
// @Param studentID path string true "Student ID"
// @Param term query string true "Term"
// @Param academicYear query string true "Academic year"
// @Success 200 {object} dto.StudentFeeBalanceResponse
// @Failure 400 {object} map[string]string "Missing query parameters"
// @Failure 404 {object} map[string]string "Student not found"
// @Router /students/{studentID}/balance/recompute [post]
func (h *balanceHandler) recomputeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("studentID")

	var params dto.BalanceQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term and academicYear query parameters are required"})
		return
	}

	balance, err := h.balanceService.Recompute(c.Request.Context(), studentID, params.Term, params.AcademicYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to recompute balance", slog.String("student_id", studentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentFeeBalanceResponse(balance))
}

// RegisterBalanceRoutes registers balance reconciliation routes
func RegisterBalanceRoutes(group *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	group.GET("/students/:studentID/balance", h.getBalance)
	group.POST("/students/:studentID/balance/recompute", h.recomputeBalance)
}
