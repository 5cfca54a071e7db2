package domain

import "time"

// Feedback представляет модель отзыва,
// соответствует таблице feedbacks в бд.
// Каждый отзыв принадлежит ровно одному пользователю (OwnerUsername).
type Feedback struct {
	ID            int64     `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" db:"title" gorm:"size:100;not null"`
	Content       string    `json:"content" db:"content" gorm:"type:text;not null"`
	OwnerUsername string    `json:"owner_username" db:"owner_username" gorm:"column:owner_username;size:20;not null;index"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
