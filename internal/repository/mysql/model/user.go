package model

import (
	"strings"
	"time"

	"newsbrief/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(100);not null"`
	Roles     string    `gorm:"type:varchar(100);default:'USER'"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "users"
}

func (m *User) ToDomain() domain.User {
	var roles []string
	for _, r := range strings.Split(m.Roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, r)
		}
	}
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		Roles:     roles,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		Roles:     strings.Join(u.Roles, ","),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
