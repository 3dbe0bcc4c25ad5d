package handler

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/pkg/response"
	"Lexnet/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteSvc service.NoteService
}

func NewNoteHandler(noteSvc service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteSvc: noteSvc,
	}
}

func (s *NoteHandler) CreateNote(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.NoteCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	note, err := s.noteSvc.CreateNote(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, note)
}

func (s *NoteHandler) GetNotes(c *gin.Context) {
	userID := c.GetUint64("user_id")
	entityID, err := strconv.ParseUint(c.Param("entity_id"), 10, 64)
	if err != nil || entityID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	notes, err := s.noteSvc.GetNotes(c.Request.Context(), userID, entityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, notes)
}

func (s *NoteHandler) DeleteNote(c *gin.Context) {
	userID := c.GetUint64("user_id")
	noteID := c.Param("note_id")

	if err := s.noteSvc.DeleteNote(c.Request.Context(), userID, noteID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
