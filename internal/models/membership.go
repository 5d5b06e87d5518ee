package models

// Membership 群组成员关系模型
// There is deliberately no uniqueness constraint on (user_id, group_id):
// membership is "count > 0", and leave removes every matching row.
type Membership struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserID  uint `gorm:"not null;index" json:"user_id"`
	GroupID uint `gorm:"not null;index" json:"group_id"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Group *Group `gorm:"foreignKey:GroupID" json:"-"`
}

func (Membership) TableName() string {
	return "users_groups"
}
