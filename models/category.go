package models

import "time"

// DefaultCategories are seeded into an empty categories table.
var DefaultCategories = []string{
	"Appetizer", "Veg Curries", "Pickles", "Veg Fry", "Dal",
	"Non Veg Curries", "Veg Rice", "Non-Veg Rice", "Veg Pulusu", "Breads", "Desserts",
}

type Category struct {
	ID        int64     `json:"category_id" gorm:"column:category_id;primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"-"`
}
