package services

import (
	"github.com/groupchat-dev/groupchat/internal/models"
	"github.com/groupchat-dev/groupchat/internal/repositories"
)

// MessageService 消息服务
type MessageService struct {
	messageRepo *repositories.MessageRepository
}

// NewMessageService 创建消息服务实例
func NewMessageService(messageRepo *repositories.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// PostMessageRequest 发送消息请求
type PostMessageRequest struct {
	Body string `json:"message"`
}

// ListMessages 获取群组消息
func (s *MessageService) ListMessages(groupID uint) ([]models.Message, error) {
	return s.messageRepo.ListByGroup(groupID)
}

// PostMessage stores a message in the group. The body is accepted as-is;
// an empty message is stored like any other.
func (s *MessageService) PostMessage(userID, groupID uint, req *PostMessageRequest) (*models.Message, error) {
	message := &models.Message{
		GroupID: groupID,
		UserID:  userID,
		Body:    req.Body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}
