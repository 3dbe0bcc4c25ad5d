package job

import (
	"Lexnet/internal/model"
	"Lexnet/internal/pkg/consts"
	"Lexnet/internal/pkg/logger"
	"Lexnet/internal/pkg/redis"
	"Lexnet/internal/pkg/util"
	"Lexnet/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CounterAuditJob re-derives the denormalized counters of dirty entities and
// replies from the backing membership and reply rows and writes back any
// drift. The engines keep counters in step transactionally; this job is the
// mechanical check that the ledger matches the store.
type CounterAuditJob struct {
	entityRepo   repository.EntityRepo
	replyRepo    repository.ReplyRepo
	reactionRepo repository.ReactionRepo
}

func NewCounterAuditJob(
	entityRepo repository.EntityRepo,
	replyRepo repository.ReplyRepo,
	reactionRepo repository.ReactionRepo,
) *CounterAuditJob {
	return &CounterAuditJob{
		entityRepo:   entityRepo,
		replyRepo:    replyRepo,
		reactionRepo: reactionRepo,
	}
}

func (s *CounterAuditJob) Run() {
	traceID := "job-audit-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	s.auditEntities(ctx)
	s.auditReplies(ctx)
}

func (s *CounterAuditJob) auditEntities(ctx context.Context) {
	ids, processingKey, ok := claimDirtySet(ctx, consts.EntityDirtyKey)
	if !ok {
		return
	}

	log.InfoContext(ctx, "start entity counter audit", "count", len(ids))

	successCount := 0
	for _, id := range ids {
		replyCount, err := s.replyRepo.CountByEntity(ctx, id)
		if err != nil {
			log.ErrorContext(ctx, "count replies error", "entity_id", id, "err", err)
			continue
		}
		upvotes, err := s.reactionRepo.CountByTarget(ctx, id, model.ReactionUpvoteEntity)
		if err != nil {
			log.ErrorContext(ctx, "count upvotes error", "entity_id", id, "err", err)
			continue
		}
		followers, err := s.reactionRepo.CountByTarget(ctx, id, model.ReactionFollow)
		if err != nil {
			log.ErrorContext(ctx, "count followers error", "entity_id", id, "err", err)
			continue
		}
		saves, err := s.reactionRepo.CountByTarget(ctx, id, model.ReactionBookmark)
		if err != nil {
			log.ErrorContext(ctx, "count bookmarks error", "entity_id", id, "err", err)
			continue
		}

		err = s.entityRepo.SyncCounters(ctx, id, replyCount, upvotes, followers, saves)
		if err != nil {
			log.ErrorContext(ctx, "sync entity counters error", "entity_id", id, "err", err)
			continue
		}
		successCount++
	}

	releaseDirtySet(ctx, processingKey)

	log.InfoContext(ctx, "entity counter audit done",
		"total_count", len(ids),
		"success_count", successCount)
}

func (s *CounterAuditJob) auditReplies(ctx context.Context) {
	ids, processingKey, ok := claimDirtySet(ctx, consts.ReplyDirtyKey)
	if !ok {
		return
	}

	log.InfoContext(ctx, "start reply counter audit", "count", len(ids))

	successCount := 0
	for _, id := range ids {
		count, err := s.reactionRepo.CountByTarget(ctx, id, model.ReactionUpvoteReply)
		if err != nil {
			log.ErrorContext(ctx, "count reply upvotes error", "reply_id", id, "err", err)
			continue
		}
		if err = s.replyRepo.SyncUpvoteCount(ctx, id, count); err != nil {
			log.ErrorContext(ctx, "sync reply upvote count error", "reply_id", id, "err", err)
			continue
		}
		successCount++
	}

	releaseDirtySet(ctx, processingKey)

	log.InfoContext(ctx, "reply counter audit done",
		"total_count", len(ids),
		"success_count", successCount)
}

// claimDirtySet renames the dirty set so concurrent runs and ongoing writers
// never share a batch; an absent set means nothing to do.
func claimDirtySet(ctx context.Context, dirtyKey string) ([]uint64, string, bool) {
	processingKey := dirtyKey + ":processing"
	if err := redis.Rename(ctx, dirtyKey, processingKey); err != nil {
		return nil, "", false
	}

	members, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get dirty set error", "key", processingKey, "err", err)
		return nil, "", false
	}

	ids, err := util.StrSliceToUint64Slice(members)
	if err != nil {
		log.ErrorContext(ctx, "convert dirty set error", "key", processingKey, "err", err)
		return nil, "", false
	}

	return ids, processingKey, true
}

func releaseDirtySet(ctx context.Context, processingKey string) {
	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete processing set error", "key", processingKey, "err", err)
	}
}
