package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feastly/ordering-app/services"
	"github.com/feastly/ordering-app/utils"
)

var ErrNoPermission = errors.New("you do not have permission to perform this action")

// respondServiceError maps core pricing/offer failures onto HTTP statuses.
// Validation rejections go back verbatim so the UI can show why; schedule
// configuration faults are logged as defects and hidden behind a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOfferNotFound), errors.Is(err, services.ErrMenuItemNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case services.IsRejection(err), errors.Is(err, services.ErrMenuItemUnavailable):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, services.ErrScheduleNotConfigured):
		utils.ErrorLogger.Printf("schedule misconfiguration: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("store schedule is misconfigured"))
	default:
		utils.ErrorLogger.Printf("pricing failure: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
