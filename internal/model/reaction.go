package model

import (
	"time"
)

// ReactionKind is the closed set of toggleable actions. One generic relation
// replaces per-action membership tables; the composite primary key is the
// uniqueness constraint that serializes same-user toggles.
type ReactionKind int8

const (
	ReactionUpvoteReply ReactionKind = iota + 1
	ReactionUpvoteEntity
	ReactionFollow
	ReactionBookmark
)

func (k ReactionKind) Valid() bool {
	return k >= ReactionUpvoteReply && k <= ReactionBookmark
}

// Reaction records "user performed action on target". Row existence is the
// toggle state; rows are created and deleted, never updated.
type Reaction struct {
	UserID     uint64       `gorm:"primaryKey" json:"userId"`
	TargetID   uint64       `gorm:"primaryKey;index:idx_target" json:"targetId"`
	TargetKind ReactionKind `gorm:"primaryKey" json:"targetKind"`
	CreatedAt  time.Time    `json:"createdAt"`
}

func (Reaction) TableName() string {
	return "reactions"
}
