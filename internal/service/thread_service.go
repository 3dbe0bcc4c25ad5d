package service

import (
	"Lexnet/internal/api/dto"
	"Lexnet/internal/model"
	"Lexnet/internal/pkg/consts"
	"Lexnet/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type ThreadService interface {
	GetThread(ctx context.Context, entityID, userID uint64) ([]*dto.ReplyNodeDTO, error)
	AddReply(ctx context.Context, entityID, authorID uint64, req *dto.ReplyCreateDTO) (*dto.ReplyNodeDTO, error)
	DeleteReply(ctx context.Context, replyID, userID uint64) error
	MarkBestAnswer(ctx context.Context, entityID, replyID, userID uint64) error
	MarkResolved(ctx context.Context, entityID, userID uint64) error
	GetEntityState(ctx context.Context, entityID, userID uint64) (*dto.EntityStateDTO, error)
	TrackView(ctx context.Context, entityID uint64) error
}

type ThreadServiceImpl struct {
	entityRepo   repository.EntityRepo
	replyRepo    repository.ReplyRepo
	reactionRepo repository.ReactionRepo
	cache        CounterCache
}

func NewThreadService(
	entityRepo repository.EntityRepo,
	replyRepo repository.ReplyRepo,
	reactionRepo repository.ReactionRepo,
	cache CounterCache,
) ThreadService {
	return &ThreadServiceImpl{
		entityRepo:   entityRepo,
		replyRepo:    replyRepo,
		reactionRepo: reactionRepo,
		cache:        cache,
	}
}

// GetThread materializes the full reply forest for one entity, annotated for
// the requesting user (0 for anonymous reads).
func (s *ThreadServiceImpl) GetThread(ctx context.Context, entityID, userID uint64) ([]*dto.ReplyNodeDTO, error) {
	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrEntityNotFound
	}

	replies, err := s.replyRepo.GetThreadReplies(ctx, entityID)
	if err != nil {
		return nil, err
	}

	var upvoted map[uint64]bool
	if userID > 0 && len(replies) > 0 {
		ids := make([]uint64, 0, len(replies))
		for _, r := range replies {
			ids = append(ids, r.ID)
		}
		upvoted, err = s.reactionRepo.GetUserReactions(ctx, userID, model.ReactionUpvoteReply, ids)
		if err != nil {
			return nil, err
		}
	}

	return BuildReplyTree(replies, upvoted, entity.BestAnswerID), nil
}

// AddReply validates the nesting preconditions and inserts the node; the row
// insert and all counter bumps commit in one transaction inside the repo.
func (s *ThreadServiceImpl) AddReply(ctx context.Context, entityID, authorID uint64, req *dto.ReplyCreateDTO) (*dto.ReplyNodeDTO, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" || len(content) > consts.MaxReplyContentLength {
		return nil, ErrParamInvalid
	}

	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrEntityNotFound
	}
	if entity.Resolved {
		return nil, ErrEntityLocked
	}

	depth := 1
	if req.ParentReplyID != nil {
		parent, err := s.replyRepo.GetReplyByID(ctx, *req.ParentReplyID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.EntityID != entityID {
			return nil, ErrReplyNotFound
		}
		if parent.Depth+1 > consts.MaxReplyDepth {
			return nil, ErrMaxDepthExceeded
		}
		depth = parent.Depth + 1
	}

	now := time.Now()
	reply := &model.Reply{
		EntityID:      entityID,
		AuthorID:      authorID,
		ParentReplyID: req.ParentReplyID,
		Depth:         depth,
		Content:       content,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.replyRepo.CreateReply(ctx, reply); err != nil {
		log.ErrorContext(ctx, "create reply failed", "entity_id", entityID, "err", err)
		return nil, ErrStorage
	}

	s.cache.Invalidate(ctx, consts.EntityReplyCountKey+strconv.FormatUint(entityID, 10))
	s.cache.MarkDirty(ctx, consts.EntityDirtyKey, entityID)

	return convertReplyNode(reply, false, false), nil
}

// DeleteReply soft-deletes the caller's own reply. Children keep their parent
// reference and stay in the tree behind a tombstone.
func (s *ThreadServiceImpl) DeleteReply(ctx context.Context, replyID, userID uint64) error {
	reply, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil {
		return ErrReplyNotFound
	}
	if reply.AuthorID != userID {
		return ErrNotOwner
	}

	if err := s.replyRepo.SoftDeleteReply(ctx, reply); err != nil {
		log.ErrorContext(ctx, "delete reply failed", "reply_id", replyID, "err", err)
		return ErrStorage
	}

	s.cache.Invalidate(ctx, consts.EntityReplyCountKey+strconv.FormatUint(reply.EntityID, 10))
	s.cache.MarkDirty(ctx, consts.EntityDirtyKey, reply.EntityID)
	return nil
}

// MarkBestAnswer is owner-only and discussion-only; it sets the best answer
// and forces resolution atomically. Repeating the same marking is a no-op.
func (s *ThreadServiceImpl) MarkBestAnswer(ctx context.Context, entityID, replyID, userID uint64) error {
	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		return err
	}
	if entity == nil {
		return ErrEntityNotFound
	}
	if entity.AuthorID != userID {
		return ErrNotOwner
	}
	if entity.Kind != consts.EntityKindDiscussion {
		return ErrNotDiscussion
	}

	reply, err := s.replyRepo.GetReplyByID(ctx, replyID)
	if err != nil {
		return err
	}
	if reply == nil || reply.EntityID != entityID {
		return ErrReplyNotFound
	}

	if entity.Resolved && entity.BestAnswerID != nil && *entity.BestAnswerID == replyID {
		return nil
	}

	if err := s.entityRepo.MarkBestAnswer(ctx, entityID, replyID); err != nil {
		log.ErrorContext(ctx, "mark best answer failed", "entity_id", entityID, "err", err)
		return ErrStorage
	}
	return nil
}

// MarkResolved closes the entity to new replies without naming a best
// answer. Idempotent: resolving a resolved entity succeeds silently.
func (s *ThreadServiceImpl) MarkResolved(ctx context.Context, entityID, userID uint64) error {
	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		return err
	}
	if entity == nil {
		return ErrEntityNotFound
	}
	if entity.AuthorID != userID {
		return ErrNotOwner
	}
	if entity.Resolved {
		return nil
	}

	if err := s.entityRepo.MarkResolved(ctx, entityID); err != nil {
		log.ErrorContext(ctx, "mark resolved failed", "entity_id", entityID, "err", err)
		return ErrStorage
	}
	return nil
}

// GetEntityState assembles the counters and the caller's toggle flags for
// the detail page; counter reads go cache-first with the entity row as
// fallback.
func (s *ThreadServiceImpl) GetEntityState(ctx context.Context, entityID, userID uint64) (*dto.EntityStateDTO, error) {
	entity, err := s.entityRepo.GetEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrEntityNotFound
	}

	state := &dto.EntityStateDTO{
		Resolved:     entity.Resolved,
		BestAnswerID: entity.BestAnswerID,
	}

	id := strconv.FormatUint(entityID, 10)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		state.ReplyCount = s.cachedCount(gCtx, consts.EntityReplyCountKey+id, int64(entity.ReplyCount))
		return nil
	})
	g.Go(func() error {
		state.UpvoteCount = s.cachedCount(gCtx, consts.EntityUpvoteCountKey+id, int64(entity.UpvoteCount))
		return nil
	})
	g.Go(func() error {
		state.ViewCount = s.cachedCount(gCtx, consts.EntityViewCountKey+id, int64(entity.ViewCount))
		return nil
	})
	g.Go(func() error {
		state.SaveCount = s.cachedCount(gCtx, consts.EntitySaveCountKey+id, int64(entity.SaveCount))
		return nil
	})
	g.Go(func() error {
		state.FollowerCount = s.cachedCount(gCtx, consts.EntityFollowerCountKey+id, int64(entity.FollowerCount))
		return nil
	})
	if userID > 0 {
		g.Go(func() error {
			state.HasUpvoted, _ = s.reactionRepo.Exists(gCtx, userID, entityID, model.ReactionUpvoteEntity)
			return nil
		})
		g.Go(func() error {
			state.IsFollowing, _ = s.reactionRepo.Exists(gCtx, userID, entityID, model.ReactionFollow)
			return nil
		})
		g.Go(func() error {
			state.IsBookmarked, _ = s.reactionRepo.Exists(gCtx, userID, entityID, model.ReactionBookmark)
			return nil
		})
	}

	_ = g.Wait()

	return state, nil
}

// TrackView bumps the monotonic view counter; not membership-backed, so it
// sits outside the ledger invariant.
func (s *ThreadServiceImpl) TrackView(ctx context.Context, entityID uint64) error {
	if err := s.entityRepo.IncrementViewCount(ctx, entityID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, consts.EntityViewCountKey+strconv.FormatUint(entityID, 10))
	return nil
}

func (s *ThreadServiceImpl) cachedCount(ctx context.Context, key string, fallback int64) int64 {
	if v, ok := s.cache.GetCount(ctx, key); ok {
		return v
	}
	s.cache.SetCount(ctx, key, fallback)
	return fallback
}
