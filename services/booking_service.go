package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

// BookingService is the booking/inventory engine. Every mutation runs inside
// a single transaction; inventory is only touched through guarded conditional
// updates so concurrent requests can never oversell a day or double-restore
// a cancellation.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	RoomID       uint
	GuestName    string
	GuestAddress string
	CheckInDate  time.Time
	CheckOutDate time.Time
	PromoCode    string
}

var terminalStatuses = []models.BookingStatus{models.BookingCancelled, models.BookingRejected}

// Create reserves one unit for every night in [check-in, check-out) and
// inserts the booking in awaiting_payment/unpaid. All-or-nothing: if any
// night has no unit left, the whole transaction rolls back and no partial
// decrement survives.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (*models.Booking, error) {
	checkIn := normalizeDate(in.CheckInDate)
	checkOut := normalizeDate(in.CheckOutDate)
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}
	if strings.TrimSpace(in.GuestName) == "" {
		return nil, fmt.Errorf("%w: guest_name is required", ErrValidation)
	}

	var booking *models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %d", ErrNotFound, in.RoomID)
			}
			return err
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		total := room.Price * float64(nights)

		final := total
		var promoUsed *string
		if code := strings.TrimSpace(in.PromoCode); code != "" {
			var promo models.PromoCode
			err := tx.Where("UPPER(code) = ?", strings.ToUpper(code)).First(&promo).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: unknown promo code %q", ErrValidation, code)
			}
			if err != nil {
				return err
			}
			// A lapsed promo is ignored, not rejected: the booking proceeds
			// at full price and the code is not recorded.
			if promo.UsableAt(time.Now()) {
				final = total * (1 - float64(promo.DiscountPercentage)/100)
				promoUsed = &promo.Code
			}
		}

		// Guarded decrement, one night at a time. A day that is missing,
		// inactive or sold out affects zero rows and aborts the transaction,
		// undoing every earlier decrement. The available_quantity > 0 guard
		// is what makes two concurrent bookings of the last unit mutually
		// exclusive.
		for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
			res := tx.Model(&models.DailyInventory{}).
				Where("room_id = ? AND date = ? AND is_active = ? AND available_quantity > 0",
					in.RoomID, d, true).
				UpdateColumn("available_quantity", gorm.Expr("available_quantity - 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: room %d on %s", ErrInsufficientAvailability,
					in.RoomID, d.Format("2006-01-02"))
			}
		}

		var seq int64
		if err := tx.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&seq).Error; err != nil {
			return err
		}

		booking = &models.Booking{
			ReferenceCode: utils.NewBookingReference(),
			UserID:        userID,
			RoomID:        in.RoomID,
			GuestName:     strings.TrimSpace(in.GuestName),
			GuestAddress:  strings.TrimSpace(in.GuestAddress),
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			Nights:        nights,
			Status:        models.BookingAwaitingPayment,
			PaymentStatus: models.PaymentUnpaid,
			TotalPrice:    total,
			FinalPrice:    final,
			PromoCodeUsed: promoUsed,
			SequenceNo:    int(seq) + 1,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Pay settles the simulated payment and confirms the booking. Only the owner
// may pay, and only while the booking is awaiting payment.
func (s *BookingService) Pay(bookingID, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
			}
			return err
		}
		if booking.UserID != userID {
			return fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ? AND payment_status = ?",
				bookingID, models.BookingAwaitingPayment, models.PaymentUnpaid).
			Updates(map[string]interface{}{
				"status":         models.BookingConfirmed,
				"payment_status": models.PaymentPaid,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: booking is not awaiting payment", ErrConflict)
		}
		booking.Status = models.BookingConfirmed
		booking.PaymentStatus = models.PaymentPaid
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel is the user-facing compensating transaction: flip to cancelled and
// hand every night's unit back. A second cancel attempt conflicts instead of
// double-incrementing inventory.
func (s *BookingService) Cancel(bookingID, userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
			}
			return err
		}
		if booking.UserID != userID {
			return fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		return releaseTx(tx, &booking, models.BookingCancelled)
	})
}

// AdminReject is the admin path out of the lifecycle; same inventory
// restoration rule as Cancel.
func (s *BookingService) AdminReject(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
			}
			return err
		}
		return releaseTx(tx, &booking, models.BookingRejected)
	})
}

// AdminDelete removes a booking, restoring inventory first when the booking
// still holds it. Deleting an already-cancelled booking must not increment
// inventory a second time.
func (s *BookingService) AdminDelete(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
			}
			return err
		}
		if booking.HoldsInventory() {
			if err := releaseTx(tx, &booking, models.BookingRejected); err != nil {
				return err
			}
		}
		return tx.Delete(&models.Booking{}, bookingID).Error
	})
}

// releaseTx flips the booking into a terminal state and returns its inventory,
// one unit per night. The status guard in the WHERE clause makes the flip and
// the restore happen at most once per booking.
func releaseTx(tx *gorm.DB, booking *models.Booking, to models.BookingStatus) error {
	res := tx.Model(&models.Booking{}).
		Where("id = ? AND status NOT IN ?", booking.ID, terminalStatuses).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: booking already cancelled or rejected", ErrConflict)
	}

	in := normalizeDate(booking.CheckInDate)
	out := normalizeDate(booking.CheckOutDate)
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		if err := tx.Model(&models.DailyInventory{}).
			Where("room_id = ? AND date = ?", booking.RoomID, d).
			UpdateColumn("available_quantity", gorm.Expr("available_quantity + 1")).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID returns one booking; non-admin callers only see their own.
func (s *BookingService) GetByID(bookingID, userID uint, isAdmin bool) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
		}
		return nil, err
	}
	if !isAdmin && booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}
	return &booking, nil
}

// ListByUser returns the user's booking history, newest first.
func (s *BookingService) ListByUser(userID uint, page, limit int) ([]models.Booking, int64, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := s.DB.Model(&models.Booking{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := s.DB.Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// AdminList returns all bookings for the back-office, optionally filtered by
// status.
func (s *BookingService) AdminList(status models.BookingStatus, page, limit int) ([]models.Booking, int64, error) {
	page, limit = normalizePage(page, limit)

	filter := func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}

	var total int64
	if err := filter(s.DB.Model(&models.Booking{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := filter(s.DB.Preload("Room").Preload("User")).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
