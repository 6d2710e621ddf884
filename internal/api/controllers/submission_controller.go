package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/models/request_models"
	"hackfest/internal/services"
	"hackfest/pkg/utils"
)

type SubmissionController struct {
	submissionService services.SubmissionServiceInterface
}

func NewSubmissionController(submissionService services.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

func (s *SubmissionController) Submit(c *gin.Context) {
	var request request_models.SubmitProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := s.submissionService.Submit(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Project submitted")
}

func (s *SubmissionController) GetSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := s.submissionService.GetSubmission(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
