package handler

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/model"
	"Lexnet/internal/pkg/response"
	"Lexnet/internal/service"

	"github.com/gin-gonic/gin"
)

type ToggleHandler struct {
	toggleSvc service.ToggleService
}

func NewToggleHandler(toggleSvc service.ToggleService) *ToggleHandler {
	return &ToggleHandler{
		toggleSvc: toggleSvc,
	}
}

// Toggle flips one upvote/follow/bookmark reaction and returns the new
// state with the refreshed counter.
func (s *ToggleHandler) Toggle(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.ToggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	res, err := s.toggleSvc.Toggle(c.Request.Context(), userID, req.TargetID, model.ReactionKind(req.TargetKind))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
