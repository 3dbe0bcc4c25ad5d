package handler

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/pkg/response"
	"Lexnet/internal/service"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	threadSvc service.ThreadService
}

func NewThreadHandler(threadSvc service.ThreadService) *ThreadHandler {
	return &ThreadHandler{
		threadSvc: threadSvc,
	}
}

// GetThread returns the materialized reply forest for an entity.
func (s *ThreadHandler) GetThread(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	forest, err := s.threadSvc.GetThread(c.Request.Context(), entityID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, forest)
}

// AddReply appends a reply or nested reply to an entity's thread.
func (s *ThreadHandler) AddReply(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	var req dto.ReplyCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	node, err := s.threadSvc.AddReply(c.Request.Context(), entityID, userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, node)
}

// DeleteReply soft-deletes the caller's own reply.
func (s *ThreadHandler) DeleteReply(c *gin.Context) {
	replyID, err := strconv.ParseUint(c.Param("reply_id"), 10, 64)
	if err != nil || replyID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.threadSvc.DeleteReply(c.Request.Context(), replyID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkBestAnswer resolves a discussion and names the best answer.
func (s *ThreadHandler) MarkBestAnswer(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	replyID, err := strconv.ParseUint(c.Param("reply_id"), 10, 64)
	if err != nil || replyID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.threadSvc.MarkBestAnswer(c.Request.Context(), entityID, replyID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// MarkResolved closes an entity to new replies.
func (s *ThreadHandler) MarkResolved(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	if err := s.threadSvc.MarkResolved(c.Request.Context(), entityID, userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetEntityState returns counters and caller toggle flags, and reports the
// view asynchronously.
func (s *ThreadHandler) GetEntityState(c *gin.Context) {
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")

	state, err := s.threadSvc.GetEntityState(c.Request.Context(), entityID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// detached from the request lifetime so the response never waits on it
	viewCtx := context.WithoutCancel(c.Request.Context())
	go func() {
		_ = s.threadSvc.TrackView(viewCtx, entityID)
	}()

	response.Success(c, state)
}
