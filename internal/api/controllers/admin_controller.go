package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/models/request_models"
	"hackfest/internal/services"
	"hackfest/pkg/utils"
)

type AdminController struct {
	adminService   services.AdminServiceInterface
	paymentService services.PaymentService
}

func NewAdminController(adminService services.AdminServiceInterface, paymentService services.PaymentService) *AdminController {
	return &AdminController{
		adminService:   adminService,
		paymentService: paymentService,
	}
}

func (a *AdminController) ListUsers(c *gin.Context) {
	resp, err := a.adminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (a *AdminController) ListPayments(c *gin.Context) {
	status := c.DefaultQuery("status", "pending")

	resp, err := a.paymentService.ListByStatus(c.Request.Context(), status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

// SetPaymentStatus bypasses signature verification; it is reachable only
// through the admin-role route group.
func (a *AdminController) SetPaymentStatus(c *gin.Context) {
	var request request_models.SetPaymentStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.paymentService.SetStatus(c.Request.Context(), request)
	if err != nil {
		if errors.Is(err, utils.ErrAlreadyProcessed) && resp != nil {
			utils.RespondConflict(c, resp, err.Error())
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment status updated")
}

func (a *AdminController) GetPricing(c *gin.Context) {
	resp, err := a.adminService.GetPricing(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "")
}

func (a *AdminController) UpdatePricing(c *gin.Context) {
	var request request_models.UpdatePricingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := a.adminService.UpdatePricing(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Pricing updated")
}
