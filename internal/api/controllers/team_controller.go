package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hackfest/internal/models/request_models"
	"hackfest/internal/services"
	"hackfest/pkg/utils"
)

type TeamController struct {
	teamService services.TeamServiceInterface
}

func NewTeamController(teamService services.TeamServiceInterface) *TeamController {
	return &TeamController{teamService: teamService}
}

func (t *TeamController) CreateTeam(c *gin.Context) {
	var request request_models.CreateTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := t.teamService.CreateTeam(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Team created")
}

func (t *TeamController) JoinTeam(c *gin.Context) {
	var request request_models.JoinTeamRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := t.teamService.JoinTeam(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Joined team")
}

func (t *TeamController) LeaveTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := t.teamService.LeaveTeam(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Left team")
}

func (t *TeamController) GetTeam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := t.teamService.GetTeam(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "")
}
