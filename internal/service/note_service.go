package service

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/pkg/mongo"
	"Lexnet/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteService manages a user's private notes on entities. Notes are visible
// to their owner only.
type NoteService interface {
	CreateNote(ctx context.Context, ownerID uint64, req *dto.NoteCreateDTO) (*dto.NoteDTO, error)
	GetNotes(ctx context.Context, ownerID, entityID uint64) ([]*dto.NoteDTO, error)
	DeleteNote(ctx context.Context, ownerID uint64, noteID string) error
}

type NoteServiceImpl struct {
	entityRepo repository.EntityRepo
	noteRepo   mongo.NoteRepo
}

func NewNoteService(entityRepo repository.EntityRepo, noteRepo mongo.NoteRepo) NoteService {
	return &NoteServiceImpl{
		entityRepo: entityRepo,
		noteRepo:   noteRepo,
	}
}

func (s *NoteServiceImpl) CreateNote(ctx context.Context, ownerID uint64, req *dto.NoteCreateDTO) (*dto.NoteDTO, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return nil, ErrParamInvalid
	}

	entity, err := s.entityRepo.GetEntity(ctx, req.EntityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrEntityNotFound
	}

	now := time.Now()
	note := &mongo.Note{
		EntityID:  req.EntityID,
		OwnerID:   ownerID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.noteRepo.SaveNote(ctx, note); err != nil {
		log.ErrorContext(ctx, "save note failed", "entity_id", req.EntityID, "err", err)
		return nil, ErrStorage
	}

	return convertNoteDTO(note), nil
}

func (s *NoteServiceImpl) GetNotes(ctx context.Context, ownerID, entityID uint64) ([]*dto.NoteDTO, error) {
	notes, err := s.noteRepo.GetNotesByOwner(ctx, ownerID, entityID)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteDTO, 0, len(notes))
	for _, n := range notes {
		res = append(res, convertNoteDTO(n))
	}
	return res, nil
}

// DeleteNote removes the caller's note; a foreign or unknown id reads as not
// found so ownership is never revealed.
func (s *NoteServiceImpl) DeleteNote(ctx context.Context, ownerID uint64, noteID string) error {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return ErrNoteNotFound
	}

	deleted, err := s.noteRepo.DeleteNote(ctx, oid, ownerID)
	if err != nil {
		log.ErrorContext(ctx, "delete note failed", "note_id", noteID, "err", err)
		return ErrStorage
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

func convertNoteDTO(note *mongo.Note) *dto.NoteDTO {
	return &dto.NoteDTO{
		ID:        note.ID.Hex(),
		EntityID:  note.EntityID,
		Body:      note.Body,
		CreatedAt: note.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
