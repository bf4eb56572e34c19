package models

import (
	"time"

	"gorm.io/gorm"
)

// PromoCode is a time-bounded discount token. Codes are stored uppercase and
// matched case-insensitively. Validity is checked at booking time only; a
// promo already applied to a booking is never re-validated.
type PromoCode struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Code               string         `gorm:"uniqueIndex;size:64" json:"code"`
	DiscountPercentage int            `gorm:"column:discount_percentage" json:"discount_percentage"` // 1-100
	ExpiryDate         time.Time      `gorm:"column:expiry_date" json:"expiry_date"`
	IsActive           bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"-"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *PromoCode) UsableAt(t time.Time) bool {
	return p.IsActive && t.Before(p.ExpiryDate)
}
