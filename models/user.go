package models

import "time"

// Role ids. Applicants own applications; admins review them.
const (
	RoleApplicant = 1
	RoleAdmin     = 2
)

type User struct {
	UserID   int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FullName string     `gorm:"column:full_name" json:"full_name"`
	Email    string     `gorm:"column:email;unique" json:"email"`
	Password string     `gorm:"column:password" json:"-"`
	RoleID   int        `gorm:"column:role_id" json:"role_id"`
	CreateAt time.Time  `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdateAt time.Time  `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
