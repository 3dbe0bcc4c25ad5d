package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("invalid parameters")
	ErrEntityNotFound   = errors.New("entity not found")
	ErrReplyNotFound    = errors.New("reply not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrNotOwner         = errors.New("only the author may perform this action")
	ErrEntityLocked     = errors.New("entity is resolved and no longer accepts replies")
	ErrMaxDepthExceeded = errors.New("maximum reply nesting depth exceeded")
	ErrNotDiscussion    = errors.New("best answers apply to discussions only")
	ErrStorage          = errors.New("storage failure, please retry")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrEntityNotFound:   NotFound,
	ErrReplyNotFound:    NotFound,
	ErrNoteNotFound:     NotFound,
	ErrNotOwner:         Forbidden,
	ErrEntityLocked:     Conflict,
	ErrMaxDepthExceeded: BadRequest,
	ErrNotDiscussion:    BadRequest,
	ErrStorage:          InternalServerError,
}
