package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingAwaitingPayment BookingStatus = "awaiting_payment"
	BookingConfirmed       BookingStatus = "confirmed"
	BookingCancelled       BookingStatus = "cancelled"
	BookingRejected        BookingStatus = "rejected"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Booking reserves one inventory unit per night across [CheckInDate,
// CheckOutDate). Lifecycle: awaiting_payment -> confirmed (pay), or into the
// terminal states cancelled (user) / rejected (admin). No transition leaves a
// terminal state.
type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	UserID        uint   `gorm:"column:user_id;index" json:"user_id"`
	RoomID        uint   `gorm:"column:room_id;index" json:"room_id"`

	GuestName    string    `gorm:"column:guest_name;size:255" json:"guest_name"`
	GuestAddress string    `gorm:"column:guest_address;size:512" json:"guest_address"`
	CheckInDate  time.Time `gorm:"column:check_in_date;type:date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;type:date" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	Status        BookingStatus `gorm:"column:status;size:32;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;size:32" json:"payment_status"`

	TotalPrice    float64 `gorm:"column:total_price" json:"total_price"`
	FinalPrice    float64 `gorm:"column:final_price" json:"final_price"`
	PromoCodeUsed *string `gorm:"column:promo_code_used;size:64" json:"promo_code_used,omitempty"`

	// SequenceNo numbers this user's bookings 1,2,3,... assigned inside the
	// creation transaction.
	SequenceNo int `gorm:"column:sequence_no" json:"sequence_no"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// HoldsInventory reports whether this booking currently accounts for a
// decremented inventory unit on each of its nights.
func (b *Booking) HoldsInventory() bool {
	return b.Status == BookingAwaitingPayment || b.Status == BookingConfirmed
}
