package repositories

import (
	"gorm.io/gorm"

	"github.com/groupchat-dev/groupchat/internal/models"
)

// MessageRepository 消息仓储
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息仓储实例
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create 创建消息
func (r *MessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListByGroup 获取群组消息列表
func (r *MessageRepository) ListByGroup(groupID uint) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := r.db.Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
