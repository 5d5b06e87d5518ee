package services

import (
	"github.com/groupchat-dev/groupchat/internal/models"
	"github.com/groupchat-dev/groupchat/internal/repositories"
)

// GroupService 群组服务
type GroupService struct {
	groupRepo *repositories.GroupRepository
}

// NewGroupService 创建群组服务实例
func NewGroupService(groupRepo *repositories.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// CreateGroupRequest 创建群组请求
type CreateGroupRequest struct {
	Name string `json:"groupname"`
}

// ListGroups 获取所有群组
func (s *GroupService) ListGroups() ([]models.Group, error) {
	return s.groupRepo.List()
}

// CreateGroup creates the group and immediately adds the creator as its
// first member. Both inserts run in one storage transaction.
func (s *GroupService) CreateGroup(creatorID uint, req *CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name: req.Name,
	}
	if err := s.groupRepo.CreateWithMember(group, creatorID); err != nil {
		return nil, err
	}
	return group, nil
}
