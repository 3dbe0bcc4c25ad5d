package dto

// NoteCreateDTO creates a private note on an entity.
type NoteCreateDTO struct {
	EntityID uint64 `json:"entity_id" binding:"required"`
	Body     string `json:"body" binding:"required,max=8000"`
}

// NoteDTO is one private note.
type NoteDTO struct {
	ID        string `json:"id"`
	EntityID  uint64 `json:"entity_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}
