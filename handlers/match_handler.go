package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"izesquad-api/club"
	"izesquad-api/models"
)

type MatchHandler struct {
	club *club.Club
}

func NewMatchHandler(c *club.Club) *MatchHandler {
	return &MatchHandler{club: c}
}

// FillCourt runs the matchmaker for one court.
// @Summary Matchmake one court
// @Tags matches
// @Router /api/match/fill [post]
func (h *MatchHandler) FillCourt(c *gin.Context) {
	var req models.CourtActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	matchID, err := h.club.FillCourt(req.UserID, req.CourtID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "match_id": matchID})
}

// FillAll runs the matchmaker over every free auto-match court.
// @Summary Matchmake all enabled courts
// @Tags matches
// @Router /api/match/fill-all [post]
func (h *MatchHandler) FillAll(c *gin.Context) {
	var req models.PlayerActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	filled, err := h.club.FillAllEnabled(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "filled": filled})
}

// Manual places four explicitly chosen players on a court.
// @Summary Manually compose a match
// @Tags matches
// @Router /api/match/manual [post]
func (h *MatchHandler) Manual(c *gin.Context) {
	var req models.ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	matchID, err := h.club.ManualMatch(req.UserID, req.CourtID, req.PlayerIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "match_id": matchID})
}

// Cancel aborts the match on a court.
// @Summary Cancel a match
// @Tags matches
// @Router /api/match/cancel [post]
func (h *MatchHandler) Cancel(c *gin.Context) {
	var req models.CourtActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.club.CancelMatch(req.UserID, req.CourtID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitResult settles the match on a court with the given set scores.
// @Summary Submit a match result
// @Tags matches
// @Router /api/match/result [post]
func (h *MatchHandler) SubmitResult(c *gin.Context) {
	var req models.SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	winner, err := h.club.SubmitResult(req.UserID, req.CourtID, req.Sets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "winner": winner})
}
