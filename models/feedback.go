package models

import "time"

// Feedback references an order and a dish without owning either; there is no
// declared foreign key so feedback survives deletion of its order.
type Feedback struct {
	ID           int64     `json:"-" gorm:"column:feedback_id;primaryKey;autoIncrement"`
	UserID       int64     `json:"user_id" gorm:"not null"`
	OrderID      int64     `json:"order_id" gorm:"not null;index"`
	DishID       int64     `json:"dish_id" gorm:"not null;index"`
	Comments     string    `json:"comments"`
	Rating       int       `json:"rating" gorm:"not null"`
	FeedbackDate time.Time `json:"-" gorm:"autoCreateTime"`
}

func (Feedback) TableName() string { return "feedback" }
