package repository

import (
	"Lexnet/internal/model"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type ReactionRepo interface {
	Toggle(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (active bool, count int64, err error)
	Exists(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (bool, error)
	CountByTarget(ctx context.Context, targetID uint64, kind model.ReactionKind) (int64, error)
	GetUserReactions(ctx context.Context, userID uint64, kind model.ReactionKind, targetIDs []uint64) (map[uint64]bool, error)
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db: db}
}

// counterColumn maps a reaction kind to the denormalized counter it backs.
func counterColumn(kind model.ReactionKind) (target interface{}, column string) {
	switch kind {
	case model.ReactionUpvoteReply:
		return &model.Reply{}, "upvote_count"
	case model.ReactionUpvoteEntity:
		return &model.Entity{}, "upvote_count"
	case model.ReactionFollow:
		return &model.Entity{}, "follower_count"
	default:
		return &model.Entity{}, "save_count"
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Toggle flips the membership row and adjusts the backing counter in one
// transaction, then reads the counter back. A concurrent same-user toggle-on
// loses on the composite primary key (MySQL 1062); the flip is then rerun and
// takes the toggle-off path instead of corrupting the counter.
func (s *ReactionRepoImpl) Toggle(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (bool, int64, error) {
	var active bool
	var count int64

	flip := func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing int64
			err := tx.Model(&model.Reaction{}).
				Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind).
				Count(&existing).Error
			if err != nil {
				return err
			}

			target, column := counterColumn(kind)

			if existing > 0 {
				err = tx.Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind).
					Delete(&model.Reaction{}).Error
				if err != nil {
					return err
				}
				// floor guards against a racing double-decrement; the unique
				// membership row is the primary correctness mechanism
				err = tx.Model(target).Where("id = ?", targetID).
					UpdateColumn(column, gorm.Expr("GREATEST("+column+" - 1, 0)")).Error
				if err != nil {
					return err
				}
				active = false
			} else {
				reaction := &model.Reaction{
					UserID:     userID,
					TargetID:   targetID,
					TargetKind: kind,
					CreatedAt:  time.Now(),
				}
				if err = tx.Create(reaction).Error; err != nil {
					return err
				}
				err = tx.Model(target).Where("id = ?", targetID).
					UpdateColumn(column, gorm.Expr(column+" + 1")).Error
				if err != nil {
					return err
				}
				active = true
			}

			return tx.Model(target).Select(column).
				Where("id = ?", targetID).
				Scan(&count).Error
		})
	}

	err := flip()
	if isDuplicateError(err) {
		err = flip()
	}
	if err != nil {
		return false, 0, err
	}
	return active, count, nil
}

func (s *ReactionRepoImpl) Exists(ctx context.Context, userID, targetID uint64, kind model.ReactionKind) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ? AND target_id = ? AND target_kind = ?", userID, targetID, kind).
		Count(&count).Error
	return count > 0, err
}

func (s *ReactionRepoImpl) CountByTarget(ctx context.Context, targetID uint64, kind model.ReactionKind) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("target_id = ? AND target_kind = ?", targetID, kind).
		Count(&count).Error
	return count, err
}

// GetUserReactions returns which of the given targets the user has toggled
// on, for per-node annotation during materialization.
func (s *ReactionRepoImpl) GetUserReactions(ctx context.Context, userID uint64, kind model.ReactionKind, targetIDs []uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool, len(targetIDs))
	if userID == 0 || len(targetIDs) == 0 {
		return result, nil
	}

	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ? AND target_kind = ? AND target_id IN ?", userID, kind, targetIDs).
		Pluck("target_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
