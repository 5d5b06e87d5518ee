package repositories

import (
	"gorm.io/gorm"

	"github.com/groupchat-dev/groupchat/internal/models"
)

// MembershipRepository 群组成员关系仓储
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository 创建成员关系仓储实例
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Add 添加成员关系
func (r *MembershipRepository) Add(member *models.Membership) error {
	return r.db.Create(member).Error
}

// Count returns the number of membership rows for the pair. Duplicates are
// possible; membership means count >= 1, never "exactly one row".
func (r *MembershipRepository) Count(userID, groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// IsMember reports whether at least one membership row exists for the pair.
// A storage error surfaces as an error, never as "not a member".
func (r *MembershipRepository) IsMember(userID, groupID uint) (bool, error) {
	count, err := r.Count(userID, groupID)
	if err != nil {
		return false, err
	}
	return count >= 1, nil
}

// RemoveAll deletes every membership row matching the pair.
func (r *MembershipRepository) RemoveAll(userID, groupID uint) error {
	return r.db.Where("user_id = ? AND group_id = ?", userID, groupID).
		Delete(&models.Membership{}).Error
}
