package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/models/request_models"
	"hackfest/internal/services"
	"hackfest/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
}

func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateOrder godoc
// @Summary Create a gateway order for the registration fee
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Create Order Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/orders [post]
func (p *PaymentController) CreateOrder(c *gin.Context) {
	var request request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.CreateOrder(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Order created")
}

// VerifyPayment godoc
// @Summary Verify a gateway payment signature and complete onboarding
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/verify [post]
func (p *PaymentController) VerifyPayment(c *gin.Context) {
	var request request_models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.VerifyPayment(c.Request.Context(), userID, request)
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyProcessed) && resp != nil {
			utils.RespondConflict(c, resp.Payment, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment verified")
}

func (p *PaymentController) MarkFailed(c *gin.Context) {
	var request request_models.PaymentFailureRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.MarkFailed(c.Request.Context(), userID, request)
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyProcessed) && resp != nil {
			utils.RespondConflict(c, resp, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment marked failed")
}

func (p *PaymentController) ListMyPayments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := p.paymentService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
