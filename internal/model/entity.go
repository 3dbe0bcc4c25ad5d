package model

import (
	"time"
)

// Entity is the root container replies attach to: a discussion or a post.
// Counter columns are denormalized and mutated only by the reply/toggle
// engines; the audit job repairs any drift against the backing rows.
type Entity struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Kind           int8      `gorm:"not null;index:idx_kind" json:"kind"` // 1:discussion, 2:post
	AuthorID       uint64    `gorm:"not null;index:idx_author_id" json:"authorId"`
	Title          string    `gorm:"type:varchar(255)" json:"title"`
	Content        string    `gorm:"not null" json:"content"`
	ReplyCount     int       `gorm:"not null;default:0" json:"replyCount"`
	UpvoteCount    int       `gorm:"not null;default:0" json:"upvoteCount"`
	ViewCount      int       `gorm:"not null;default:0" json:"viewCount"`
	SaveCount      int       `gorm:"not null;default:0" json:"saveCount"`
	FollowerCount  int       `gorm:"not null;default:0" json:"followerCount"`
	Resolved       bool      `gorm:"type:tinyint(1);not null;default:0" json:"resolved"`
	BestAnswerID   *uint64   `gorm:"default:null" json:"bestAnswerId"` // discussions only
	IsDeleted      bool      `gorm:"type:tinyint(1);not null;default:0" json:"isDeleted"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Entity) TableName() string {
	return "entities"
}
