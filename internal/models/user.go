package models

// User is the account that owns rounds. Auth flows are out of scope; a
// default user is seeded at startup so user-scoped queries resolve.
type User struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	Username     string `gorm:"column:username;not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Name         string `gorm:"column:name;not null" json:"name"`
}

func (User) TableName() string {
	return "users"
}
