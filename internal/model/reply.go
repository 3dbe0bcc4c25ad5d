package model

import (
	"time"
)

// Reply is one node of an entity's reply tree. ParentReplyID nil means
// top-level. Depth is cached at insert time (root = 1); the tree is
// insert-only, so the cached value never changes. ReplyCount counts direct
// non-deleted children only.
type Reply struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	EntityID      uint64    `gorm:"not null;index:idx_entity_id" json:"entityId"`
	AuthorID      uint64    `gorm:"not null" json:"authorId"`
	ParentReplyID *uint64   `gorm:"default:null;index:idx_parent_reply_id" json:"parentReplyId"`
	Depth         int       `gorm:"not null;default:1" json:"depth"`
	Content       string    `gorm:"type:varchar(4000);not null" json:"content"`
	UpvoteCount   int       `gorm:"not null;default:0" json:"upvoteCount"`
	ReplyCount    int       `gorm:"not null;default:0" json:"replyCount"`
	IsEdited      bool      `gorm:"type:tinyint(1);not null;default:0" json:"isEdited"`
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Reply) TableName() string {
	return "replies"
}
