package models

// User 用户模型
// Rows are provisioned out of band; the service itself never writes this table.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserName string `gorm:"column:username;not null" json:"username"`
}

func (User) TableName() string {
	return "users"
}
