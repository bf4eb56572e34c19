package models

import "time"

// Review: at most one per (user, room) pair, gated on a confirmed stay.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"column:room_id;uniqueIndex:idx_room_user" json:"room_id"`
	UserID    uint      `gorm:"column:user_id;uniqueIndex:idx_room_user" json:"user_id"`
	Rating    int       `gorm:"column:rating;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}
