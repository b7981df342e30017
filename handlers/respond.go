package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"izesquad-api/club"
)

// respondError maps the club's sentinel errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, club.ErrPlayerNotFound),
		errors.Is(err, club.ErrCourtNotFound),
		errors.Is(err, club.ErrRequestNotFound):
		status = http.StatusNotFound
	case errors.Is(err, club.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, club.ErrCourtBusy),
		errors.Is(err, club.ErrNoActiveMatch),
		errors.Is(err, club.ErrNotEnoughPlayers),
		errors.Is(err, club.ErrInvalidScore),
		errors.Is(err, club.ErrInvalidSetCount),
		errors.Is(err, club.ErrAlreadyCommitted),
		errors.Is(err, club.ErrAlreadyPaired),
		errors.Is(err, club.ErrSessionInactive),
		errors.Is(err, club.ErrNotCheckedIn),
		errors.Is(err, club.ErrPlayerBusy):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
