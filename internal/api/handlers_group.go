package api

import "Lexnet/internal/api/handler"

// HandlersGroup bundles all initialized handler instances.
type HandlersGroup struct {
	ThreadHandler *handler.ThreadHandler
	ToggleHandler *handler.ToggleHandler
	NoteHandler   *handler.NoteHandler
}
