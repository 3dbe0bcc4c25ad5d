package service

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/model"
	"Lexnet/internal/pkg/consts"
	"Lexnet/internal/repository"
	"context"
	log "log/slog"
	"strconv"
)

// ToggleService applies upvote/follow/bookmark flips uniformly. Calling it
// twice for the same tuple returns to the original state and count.
type ToggleService interface {
	Toggle(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (*dto.ToggleDTO, error)
}

type ToggleServiceImpl struct {
	entityRepo   repository.EntityRepo
	replyRepo    repository.ReplyRepo
	reactionRepo repository.ReactionRepo
	cache        CounterCache
}

func NewToggleService(
	entityRepo repository.EntityRepo,
	replyRepo repository.ReplyRepo,
	reactionRepo repository.ReactionRepo,
	cache CounterCache,
) ToggleService {
	return &ToggleServiceImpl{
		entityRepo:   entityRepo,
		replyRepo:    replyRepo,
		reactionRepo: reactionRepo,
		cache:        cache,
	}
}

func (s *ToggleServiceImpl) Toggle(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (*dto.ToggleDTO, error) {
	if userID == 0 || targetID == 0 || !kind.Valid() {
		return nil, ErrParamInvalid
	}

	var entityID uint64
	if kind == model.ReactionUpvoteReply {
		reply, err := s.replyRepo.GetReplyByID(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if reply == nil {
			return nil, ErrReplyNotFound
		}
		entityID = reply.EntityID
	} else {
		entity, err := s.entityRepo.GetEntity(ctx, targetID)
		if err != nil {
			return nil, err
		}
		if entity == nil {
			return nil, ErrEntityNotFound
		}
		entityID = entity.ID
	}

	active, count, err := s.reactionRepo.Toggle(ctx, userID, targetID, kind)
	if err != nil {
		log.ErrorContext(ctx, "toggle failed",
			"user_id", userID, "target_id", targetID, "kind", kind, "err", err)
		return nil, ErrStorage
	}

	s.cache.Invalidate(ctx, counterCacheKey(kind, targetID))
	if kind == model.ReactionUpvoteReply {
		s.cache.MarkDirty(ctx, consts.ReplyDirtyKey, targetID)
	} else {
		s.cache.MarkDirty(ctx, consts.EntityDirtyKey, entityID)
	}

	return &dto.ToggleDTO{Active: active, Count: count}, nil
}

func counterCacheKey(kind model.ReactionKind, targetID uint64) string {
	id := strconv.FormatUint(targetID, 10)
	switch kind {
	case model.ReactionUpvoteReply:
		return consts.ReplyUpvoteCountKey + id
	case model.ReactionUpvoteEntity:
		return consts.EntityUpvoteCountKey + id
	case model.ReactionFollow:
		return consts.EntityFollowerCountKey + id
	default:
		return consts.EntitySaveCountKey + id
	}
}
