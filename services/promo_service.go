package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

// PromoService is the admin side of promo codes. Applying a promo to a
// booking happens inside the booking engine's transaction.
type PromoService struct {
	DB *gorm.DB
}

func NewPromoService(db *gorm.DB) *PromoService {
	return &PromoService{DB: db}
}

// Create stores a new promo code. Codes are uppercased on the way in; the
// discount must be a whole percentage in 1..100 and the expiry in the future.
func (s *PromoService) Create(code string, discountPct int, expiry time.Time) (*models.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}
	if discountPct < 1 || discountPct > 100 {
		return nil, fmt.Errorf("%w: discount_percentage must be between 1 and 100", ErrValidation)
	}
	if !expiry.After(time.Now()) {
		return nil, fmt.Errorf("%w: expiry_date must be in the future", ErrValidation)
	}

	var dup int64
	if err := s.DB.Model(&models.PromoCode{}).
		Where("UPPER(code) = ?", code).
		Count(&dup).Error; err != nil {
		return nil, err
	}
	if dup > 0 {
		return nil, fmt.Errorf("%w: promo code %q already exists", ErrConflict, code)
	}

	promo := &models.PromoCode{
		Code:               code,
		DiscountPercentage: discountPct,
		ExpiryDate:         expiry,
		IsActive:           true,
	}
	if err := s.DB.Create(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

func (s *PromoService) List() ([]models.PromoCode, error) {
	var promos []models.PromoCode
	if err := s.DB.Order("created_at DESC").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// SetActive toggles a promo without touching its expiry.
func (s *PromoService) SetActive(id uint, active bool) (*models.PromoCode, error) {
	var promo models.PromoCode
	if err := s.DB.First(&promo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: promo %d", ErrNotFound, id)
		}
		return nil, err
	}
	if err := s.DB.Model(&promo).Update("is_active", active).Error; err != nil {
		return nil, err
	}
	promo.IsActive = active
	return &promo, nil
}

func (s *PromoService) Delete(id uint) error {
	res := s.DB.Delete(&models.PromoCode{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: promo %d", ErrNotFound, id)
	}
	return nil
}
