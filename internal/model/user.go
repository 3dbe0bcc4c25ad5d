package model

import "time"

// User is a read-only projection for author annotation; account management
// lives in the identity service.
type User struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"type:varchar(64);not null" json:"username"`
	DisplayName string    `gorm:"type:varchar(128)" json:"displayName"`
	AvatarURL   string    `gorm:"type:varchar(512)" json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
