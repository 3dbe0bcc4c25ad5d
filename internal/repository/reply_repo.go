package repository

import (
	"Lexnet/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReplyRepo interface {
	GetReplyByID(ctx context.Context, id uint64) (*model.Reply, error)
	GetThreadReplies(ctx context.Context, entityID uint64) ([]*model.Reply, error)
	CreateReply(ctx context.Context, reply *model.Reply) error
	SoftDeleteReply(ctx context.Context, reply *model.Reply) error
	CountByEntity(ctx context.Context, entityID uint64) (int64, error)
	SyncUpvoteCount(ctx context.Context, replyID uint64, count int64) error
}

type ReplyRepoImpl struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) ReplyRepo {
	return &ReplyRepoImpl{db: db}
}

// GetReplyByID returns the live reply or nil when absent or soft-deleted.
func (s *ReplyRepoImpl) GetReplyByID(ctx context.Context, id uint64) (*model.Reply, error) {
	var reply model.Reply
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&reply).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reply, nil
}

// GetThreadReplies fetches the complete flat reply list for one entity in
// creation order. Soft-deleted rows are included on purpose: the materializer
// needs them to keep surviving descendants reachable.
func (s *ReplyRepoImpl) GetThreadReplies(ctx context.Context, entityID uint64) ([]*model.Reply, error) {
	var replies []*model.Reply
	err := s.db.WithContext(ctx).Preload("Author").
		Where("entity_id = ?", entityID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	return replies, err
}

// CreateReply inserts the row and bumps the entity counter, the direct
// parent's child counter and the entity activity timestamp in one
// transaction. A failure anywhere rolls the whole mutation back.
func (s *ReplyRepoImpl) CreateReply(ctx context.Context, reply *model.Reply) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		err := tx.Model(&model.Entity{}).
			Where("id = ?", reply.EntityID).
			UpdateColumns(map[string]interface{}{
				"reply_count":      gorm.Expr("reply_count + 1"),
				"last_activity_at": time.Now(),
			}).Error
		if err != nil {
			return err
		}
		if reply.ParentReplyID != nil {
			err = tx.Model(&model.Reply{}).
				Where("id = ?", *reply.ParentReplyID).
				UpdateColumn("reply_count", gorm.Expr("reply_count + 1")).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// SoftDeleteReply tombstones the row and walks the counters back down,
// floored at zero. Child rows keep their parent reference.
func (s *ReplyRepoImpl) SoftDeleteReply(ctx context.Context, reply *model.Reply) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Reply{}).
			Where("id = ? AND is_deleted = ?", reply.ID, false).
			Update("is_deleted", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already deleted by a concurrent call; counters were adjusted then
			return nil
		}
		err := tx.Model(&model.Entity{}).
			Where("id = ?", reply.EntityID).
			UpdateColumn("reply_count", gorm.Expr("GREATEST(reply_count - 1, 0)")).Error
		if err != nil {
			return err
		}
		if reply.ParentReplyID != nil {
			err = tx.Model(&model.Reply{}).
				Where("id = ?", *reply.ParentReplyID).
				UpdateColumn("reply_count", gorm.Expr("GREATEST(reply_count - 1, 0)")).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *ReplyRepoImpl) CountByEntity(ctx context.Context, entityID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reply{}).
		Where("entity_id = ? AND is_deleted = ?", entityID, false).
		Count(&count).Error
	return count, err
}

func (s *ReplyRepoImpl) SyncUpvoteCount(ctx context.Context, replyID uint64, count int64) error {
	return s.db.WithContext(ctx).Model(&model.Reply{}).
		Where("id = ?", replyID).
		UpdateColumn("upvote_count", count).Error
}
