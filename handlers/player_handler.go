package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izesquad-api/club"
	"izesquad-api/models"
)

type PlayerHandler struct {
	club *club.Club
}

func NewPlayerHandler(c *club.Club) *PlayerHandler {
	return &PlayerHandler{club: c}
}

// Login upserts the player record and returns their profile.
// @Summary Login / register a player
// @Tags players
// @Accept json
// @Produce json
// @Router /api/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.club.Login(req.UserID, req.DisplayName, req.PictureURL)
	prof, err := h.club.Profile(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

// CheckIn places the player into the waiting queue.
// @Summary Check in to the session
// @Tags players
// @Router /api/checkin [post]
func (h *PlayerHandler) CheckIn(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.CheckIn(req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckOut removes the player from the queue.
// @Summary Check out of the session
// @Tags players
// @Router /api/checkout [post]
func (h *PlayerHandler) CheckOut(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.CheckOut(req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleRest flips the player between queued and resting.
// @Summary Toggle resting
// @Tags players
// @Router /api/rest/toggle [post]
func (h *PlayerHandler) ToggleRest(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resting, err := h.club.ToggleRest(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "resting": resting})
}

// ToggleAutoRest flips the post-match auto-rest opt-in.
// @Summary Toggle auto rest
// @Tags players
// @Router /api/rest/auto [post]
func (h *PlayerHandler) ToggleAutoRest(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	enabled, err := h.club.ToggleAutoRest(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "auto_rest": enabled})
}

// Profile returns a player's public profile and recent matches.
// @Summary Get player profile
// @Tags players
// @Produce json
// @Router /api/player/{id} [get]
func (h *PlayerHandler) Profile(c *gin.Context) {
	prof, err := h.club.Profile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prof)
}

// RequestPartner sends a pair request to another player.
// @Summary Request a locked partner
// @Tags pairing
// @Router /api/pair/request [post]
func (h *PlayerHandler) RequestPartner(c *gin.Context) {
	var req models.PairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.RequestPartner(req.UserID, req.TargetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RespondPartner accepts or declines a received pair request.
// @Summary Respond to a pair request
// @Tags pairing
// @Router /api/pair/respond [post]
func (h *PlayerHandler) RespondPartner(c *gin.Context) {
	var req models.PairResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.RespondPartner(req.UserID, req.FromID, req.Accept); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CancelPartner breaks the caller's commitment and outgoing request.
// @Summary Cancel pairing
// @Tags pairing
// @Router /api/pair/cancel [post]
func (h *PlayerHandler) CancelPartner(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.CancelPartner(req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Inbox lists the caller's pairing state.
// @Summary Pairing inbox
// @Tags pairing
// @Produce json
// @Router /api/pair/inbox [get]
func (h *PlayerHandler) Inbox(c *gin.Context) {
	userID := c.Query("user_id")
	commitment, outgoing, incoming, err := h.club.Inbox(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"commitment": commitment,
		"outgoing":   outgoing,
		"incoming":   incoming,
	})
}
