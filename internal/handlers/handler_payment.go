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

// paymentHandler handles HTTP requests for the payment ledger and the
// verification workflow.
type paymentHandler struct {
	paymentService      portssvc.PaymentSvcFacade
	verificationService portssvc.VerificationSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade, verificationService portssvc.VerificationSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService:      paymentService,
		verificationService: verificationService,
	}
}

// submitPayment godoc
// @Summary Record a payment attempt
// @Description Records a payment in Pending status; pending payments never affect balances
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.SubmitPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate payment"
// @Router /payments [post]
func (h *paymentHandler) submitPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for submitPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	recordedBy, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		logger.Error("Actor ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.SubmitPayment(c.Request.Context(), req, recordedBy)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error submitting payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Router /payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	payment, err := h.paymentService.GetPayment(c.Request.Context(), paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to get payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listStudentPayments godoc
// @Summary List a student's payments
// @Description Lists payments for a student, optionally filtered by term, academic year and status
// @Tags payments
// @Produce json
// @Param studentID path string true "Student ID"
// @Param term query string false "Term"
// @Param academicYear query string false "Academic year"
// @Param status query string false "Payment status filter"
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Router /students/{studentID}/payments [get]
func (h *paymentHandler) listStudentPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("studentID")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	payments, err := h.paymentService.ListStudentPayments(c.Request.Context(), studentID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list payments", slog.String("student_id", studentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// verifyPayment godoc
// @Summary Verify a pending payment
// @Description Moves a pending payment to Verified and recomputes the student's balance atomically
// @Tags payments
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is not pending"
// @Router /payments/{paymentID}/verify [post]
func (h *paymentHandler) verifyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.verificationService.VerifyPayment(c.Request.Context(), paymentID, actorID)
	if err != nil {
		h.respondTransitionError(c, logger, paymentID, "verify", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// rejectPayment godoc
// @Summary Reject a pending payment
// @Description Moves a pending payment to Rejected with a mandatory reason
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Param rejection body dto.RejectPaymentRequest true "Rejection reason"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is not pending"
// @Router /payments/{paymentID}/reject [post]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.verificationService.RejectPayment(c.Request.Context(), paymentID, req.Reason, actorID)
	if err != nil {
		h.respondTransitionError(c, logger, paymentID, "reject", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// reversePayment godoc
// @Summary Reverse a verified payment
// @Description Claws back a verified payment, moving it to Reversed and recomputing the balance atomically
// @Tags payments
// @Accept json
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Param reversal body dto.ReversePaymentRequest true "Reversal reason"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Missing reason"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment is not verified"
// @Router /payments/{paymentID}/reverse [post]
func (h *paymentHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.ReversePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.verificationService.ReversePayment(c.Request.Context(), paymentID, req.Reason, actorID)
	if err != nil {
		h.respondTransitionError(c, logger, paymentID, "reverse", err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// respondTransitionError maps verification workflow errors onto HTTP codes.
func (h *paymentHandler) respondTransitionError(c *gin.Context, logger *slog.Logger, paymentID, action string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Failed to "+action+" payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " payment"})
	}
}

// RegisterPaymentRoutes registers payment ledger and verification routes
func RegisterPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, verificationService portssvc.VerificationSvcFacade) {
	h := newPaymentHandler(paymentService, verificationService)

	payments := group.Group("/payments")
	{
		payments.POST("", h.submitPayment)
		payments.GET("/:paymentID", h.getPayment)
		payments.POST("/:paymentID/verify", h.verifyPayment)
		payments.POST("/:paymentID/reject", h.rejectPayment)
		payments.POST("/:paymentID/reverse", h.reversePayment)
	}

	group.GET("/students/:studentID/payments", h.listStudentPayments)
}
