package models

import "time"

// Message 消息模型
// Immutable once created; the timestamp is assigned by storage at insert time.
type Message struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	GroupID   uint      `gorm:"not null;index" json:"group_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Body      string    `gorm:"column:message;not null" json:"message"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Group *Group `gorm:"foreignKey:GroupID" json:"-"`
}

func (Message) TableName() string {
	return "messages"
}
