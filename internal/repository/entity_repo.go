package repository

import (
	"Lexnet/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type EntityRepo interface {
	GetEntity(ctx context.Context, id uint64) (*model.Entity, error)
	CreateEntity(ctx context.Context, entity *model.Entity) error
	MarkBestAnswer(ctx context.Context, entityID, replyID uint64) error
	MarkResolved(ctx context.Context, entityID uint64) error
	IncrementViewCount(ctx context.Context, entityID uint64) error
	SyncCounters(ctx context.Context, entityID uint64, replyCount, upvoteCount, followerCount, saveCount int64) error
}

type EntityRepoImpl struct {
	db *gorm.DB
}

func NewEntityRepo(db *gorm.DB) EntityRepo {
	return &EntityRepoImpl{db: db}
}

// GetEntity returns the live entity or nil when absent or soft-deleted.
func (s *EntityRepoImpl) GetEntity(ctx context.Context, id uint64) (*model.Entity, error) {
	var entity model.Entity
	err := s.db.WithContext(ctx).Preload("Author").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *EntityRepoImpl) CreateEntity(ctx context.Context, entity *model.Entity) error {
	return s.db.WithContext(ctx).Create(entity).Error
}

// MarkBestAnswer sets the best answer and forces resolution in one statement;
// the two columns never change independently.
func (s *EntityRepoImpl) MarkBestAnswer(ctx context.Context, entityID, replyID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Entity{}).
		Where("id = ?", entityID).
		UpdateColumns(map[string]interface{}{
			"best_answer_id": replyID,
			"resolved":       true,
			"updated_at":     time.Now(),
		}).Error
}

func (s *EntityRepoImpl) MarkResolved(ctx context.Context, entityID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Entity{}).
		Where("id = ?", entityID).
		UpdateColumns(map[string]interface{}{
			"resolved":   true,
			"updated_at": time.Now(),
		}).Error
}

func (s *EntityRepoImpl) IncrementViewCount(ctx context.Context, entityID uint64) error {
	return s.db.WithContext(ctx).Model(&model.Entity{}).
		Where("id = ?", entityID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// SyncCounters overwrites the denormalized counters with values re-derived
// from the backing rows; used by the audit job only.
func (s *EntityRepoImpl) SyncCounters(ctx context.Context, entityID uint64, replyCount, upvoteCount, followerCount, saveCount int64) error {
	return s.db.WithContext(ctx).Model(&model.Entity{}).
		Where("id = ?", entityID).
		UpdateColumns(map[string]interface{}{
			"reply_count":    replyCount,
			"upvote_count":   upvoteCount,
			"follower_count": followerCount,
			"save_count":     saveCount,
		}).Error
}
