package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a bookable room category, not a physical unit. How many units can
// be sold on a given day lives in DailyInventory.
type Room struct {
	gorm.Model

	Name        string         `json:"name" gorm:"size:150"`
	Type        string         `json:"type" gorm:"size:64"`
	Description string         `json:"description" gorm:"type:text"`
	Facilities  datatypes.JSON `json:"facilities,omitempty" gorm:"column:facilities"`
	Price       float64        `json:"price"` // nightly price

	// Review aggregates, recomputed transactionally on every submit so they
	// always equal COUNT/AVG over this room's review rows.
	NumReviews    int     `json:"numReviews" gorm:"column:num_reviews;default:0"`
	AverageRating float64 `json:"averageRating" gorm:"column:average_rating;default:0"`
}
