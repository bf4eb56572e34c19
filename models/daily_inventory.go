package models

import "time"

// DailyInventory is the unit of availability truth: one row per room per
// calendar day. Date is stored at day granularity (UTC midnight).
// AvailableQuantity never goes below zero; the booking engine only mutates it
// through guarded conditional updates.
type DailyInventory struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	RoomID            uint      `gorm:"column:room_id;uniqueIndex:idx_room_date" json:"room_id"`
	Date              time.Time `gorm:"column:date;type:date;uniqueIndex:idx_room_date" json:"date"`
	AvailableQuantity int       `gorm:"column:available_quantity" json:"available_quantity"`
	IsActive          bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt         time.Time `json:"-"`
	UpdatedAt         time.Time `json:"-"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}
