package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

// ReviewService gates review submission on a completed stay and keeps the
// room's rating aggregates exactly in sync with its review rows.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// CanReview reports whether the user has a confirmed booking for the room and
// has not reviewed it yet.
func (s *ReviewService) CanReview(userID, roomID uint) (bool, error) {
	var stays int64
	if err := s.DB.Model(&models.Booking{}).
		Where("user_id = ? AND room_id = ? AND status = ?", userID, roomID, models.BookingConfirmed).
		Count(&stays).Error; err != nil {
		return false, err
	}
	if stays == 0 {
		return false, nil
	}

	var existing int64
	if err := s.DB.Model(&models.Review{}).
		Where("user_id = ? AND room_id = ?", userID, roomID).
		Count(&existing).Error; err != nil {
		return false, err
	}
	return existing == 0, nil
}

// Submit inserts the review and recomputes the room's NumReviews and
// AverageRating in the same transaction, so the aggregate is never observably
// stale relative to the review set.
func (s *ReviewService) Submit(userID, roomID uint, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", ErrValidation)
	}

	var review *models.Review
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room %d", ErrNotFound, roomID)
			}
			return err
		}

		var stays int64
		if err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND room_id = ? AND status = ?", userID, roomID, models.BookingConfirmed).
			Count(&stays).Error; err != nil {
			return err
		}
		if stays == 0 {
			return fmt.Errorf("%w: no completed stay for this room", ErrForbidden)
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("user_id = ? AND room_id = ?", userID, roomID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("%w: room already reviewed", ErrForbidden)
		}

		review = &models.Review{
			RoomID:  roomID,
			UserID:  userID,
			Rating:  rating,
			Comment: comment,
		}
		if err := tx.Create(review).Error; err != nil {
			return err
		}

		// Recompute from the rows themselves rather than adjusting
		// incrementally, so the aggregate can never drift.
		var agg struct {
			Cnt int64
			Avg float64
		}
		if err := tx.Model(&models.Review{}).
			Select("COUNT(*) AS cnt, COALESCE(AVG(rating), 0) AS avg").
			Where("room_id = ?", roomID).
			Scan(&agg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", roomID).
			Updates(map[string]interface{}{
				"num_reviews":    agg.Cnt,
				"average_rating": agg.Avg,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ListForRoom returns a room's reviews, newest first, with the reviewer.
func (s *ReviewService) ListForRoom(roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
