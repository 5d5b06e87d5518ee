package models

// Group 群组模型
// Group names are not unique; two groups may share one name. Callers must
// resolve a freshly created group by the id assigned on insert, never by name.
type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:groupname;not null" json:"groupname"`
}

func (Group) TableName() string {
	return "groups"
}
