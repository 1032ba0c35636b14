package transport

import (
	"errors"
	"net/http"

	"github.com/ds124wfegd/activity-registration/internal/entity"

	"github.com/gin-gonic/gin"
)

// respondError translates service error kinds into transport status codes.
// The services themselves never see HTTP.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, entity.ErrActivityNotFound),
		errors.Is(err, entity.ErrPlaceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrNoRooms),
		errors.Is(err, entity.ErrAlreadyEnrolled),
		errors.Is(err, entity.ErrScheduleConflict):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrInvalidInterval):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
