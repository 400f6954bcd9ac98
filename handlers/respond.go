package handlers

import (
	"errors"
	"net/http"

	"docport/database/repository"
	"docport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps a service failure to an HTTP status. Persistence
// outages surface as 503 so callers can tell them apart from application
// bugs; everything else is a 500.
func respondServiceError(c *gin.Context, msg string, err error) {
	utils.GetLogger().Error(msg, zap.Error(err))
	if errors.Is(err, repository.ErrStoreUnavailable) {
		utils.JSONError(c, http.StatusServiceUnavailable, "service unavailable", "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, msg, "")
}
