package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hackfest/pkg/logger"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// RespondConflict reports an already-terminal state back to the caller
// without overwriting it.
func RespondConflict(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusConflict, APIResponse{
		Status:  "error",
		Code:    http.StatusConflict,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrTeamNotFound), errors.Is(err, ErrSubmissionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrEmailNotVerified):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrTeamNameTaken),
		errors.Is(err, ErrAlreadyInTeam), errors.Is(err, ErrAlreadyProcessed):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrSignatureMismatch):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidVerifyToken),
		errors.Is(err, ErrInvalidJoinCode), errors.Is(err, ErrTeamFull),
		errors.Is(err, ErrNotInTeam), errors.Is(err, ErrInvalidRepoURL),
		errors.Is(err, ErrRepoNotPublic), errors.Is(err, ErrRepoMissingReadme):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrGatewayUnavailable):
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		logger.Log.Error("database error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Log.Error("unhandled service error", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
