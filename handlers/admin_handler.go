package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izesquad-api/club"
	"izesquad-api/models"
)

type AdminHandler struct {
	club *club.Club
}

func NewAdminHandler(c *club.Club) *AdminHandler {
	return &AdminHandler{club: c}
}

// Session starts or ends the club session.
// @Summary Start or end the session
// @Tags admin
// @Router /api/admin/session [post]
func (h *AdminHandler) Session(c *gin.Context) {
	var req models.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var err error
	if req.Action == "start" {
		err = h.club.StartSession(req.UserID, req.TargetPoints, req.BestOf)
	} else {
		err = h.club.EndSession(req.UserID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetCourts resizes the court pool.
// @Summary Set total courts
// @Tags admin
// @Router /api/admin/courts [post]
func (h *AdminHandler) SetCourts(c *gin.Context) {
	var req models.SetCourtsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.SetTotalCourts(req.UserID, req.Count); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AutoMatch flips the auto-fill flag for one court.
// @Summary Toggle court auto-match
// @Tags admin
// @Router /api/admin/automatch [post]
func (h *AdminHandler) AutoMatch(c *gin.Context) {
	var req models.AutoMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.SetAutoMatch(req.UserID, req.CourtID, req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SetRating overrides a player's rating.
// @Summary Set player rating
// @Tags admin
// @Router /api/admin/rating [post]
func (h *AdminHandler) SetRating(c *gin.Context) {
	var req models.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.SetRating(req.UserID, req.TargetID, req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ManageMod promotes or demotes a moderator.
// @Summary Manage moderators
// @Tags admin
// @Router /api/admin/mod [post]
func (h *AdminHandler) ManageMod(c *gin.Context) {
	var req models.ManageModRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.ManageMod(req.UserID, req.TargetID, req.Action == "promote"); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
