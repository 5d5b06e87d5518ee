package services

import (
	"github.com/groupchat-dev/groupchat/internal/models"
	"github.com/groupchat-dev/groupchat/internal/repositories"
)

// MembershipService 群组成员服务
type MembershipService struct {
	membershipRepo *repositories.MembershipRepository
}

// NewMembershipService 创建成员服务实例
func NewMembershipService(membershipRepo *repositories.MembershipRepository) *MembershipService {
	return &MembershipService{membershipRepo: membershipRepo}
}

// Join 加入群组
func (s *MembershipService) Join(userID, groupID uint) error {
	return s.membershipRepo.Add(&models.Membership{
		UserID:  userID,
		GroupID: groupID,
	})
}

// Leave removes the user from the group, deleting every membership row for
// the pair.
func (s *MembershipService) Leave(userID, groupID uint) error {
	return s.membershipRepo.RemoveAll(userID, groupID)
}

// IsMember 判断用户是否在群组中
func (s *MembershipService) IsMember(userID, groupID uint) (bool, error) {
	return s.membershipRepo.IsMember(userID, groupID)
}
