package models

// PlaceholderUserName is given to users provisioned implicitly by an order.
const PlaceholderUserName = "New User"

type User struct {
	ID     int64   `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name   string  `json:"name" gorm:"not null"`
	// Orders makes orders.user_id reference users.user_id.
	Orders []Order `json:"-" gorm:"foreignKey:UserID"`
}
