// Package models holds the server-side persisted entities.
package models

// Member is a persisted member record. ID is zero until the first
// successful save and stable afterwards.
type Member struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Email string `gorm:"column:email;not null" json:"email"`
}

// TableName sets the table name for GORM.
func (Member) TableName() string {
	return "members"
}

// IsNew reports whether the member has not been persisted yet.
func (m *Member) IsNew() bool {
	return m.ID == 0
}
