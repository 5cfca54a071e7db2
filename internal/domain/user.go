package domain

import "time"

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Имя пользователя является первичным ключом и не меняется после регистрации.
type User struct {
	Username     string    `json:"username" db:"username" gorm:"primaryKey;size:20"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash;not null"`
	Email        string    `json:"email" db:"email" gorm:"size:50;uniqueIndex;not null"`
	FirstName    string    `json:"first_name" db:"first_name" gorm:"size:30;not null"`
	LastName     string    `json:"last_name" db:"last_name" gorm:"size:30;not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
