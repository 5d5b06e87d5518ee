package repositories

import (
	"gorm.io/gorm"

	"github.com/groupchat-dev/groupchat/internal/models"
)

// GroupRepository 群组仓储
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository 创建群组仓储实例
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// List 获取所有群组
func (r *GroupRepository) List() ([]models.Group, error) {
	groups := make([]models.Group, 0)
	if err := r.db.Order("id ASC").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// GetByID 根据ID获取群组
func (r *GroupRepository) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateWithMember inserts the group and the creator's membership row in one
// transaction. The membership is attached to the id assigned by the insert
// itself; group names are not unique, so resolving the new group by name
// could attach the creator to a pre-existing group.
func (r *GroupRepository) CreateWithMember(group *models.Group, creatorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		member := &models.Membership{
			UserID:  creatorID,
			GroupID: group.ID,
		}
		return tx.Create(member).Error
	})
}
