package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

// ReportService is pure projection over confirmed bookings: no mutation, and
// an empty result set means zeros, not an error.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type BookingSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	BookingCount int64   `json:"booking_count"`
}

// Summary totals final prices and counts confirmed bookings, optionally
// bounded by check-in date ([from, to] inclusive; zero time means unbounded).
func (s *ReportService) Summary(from, to time.Time) (*BookingSummary, error) {
	var out BookingSummary
	if err := s.confirmedInRange(from, to).
		Select("COALESCE(SUM(final_price), 0) AS total_revenue, COUNT(*) AS booking_count").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

type RoomPopularity struct {
	RoomID       uint   `json:"room_id"`
	Name         string `json:"name"`
	BookingCount int64  `json:"booking_count"`
}

// TopRooms ranks rooms by confirmed booking count within the range.
func (s *ReportService) TopRooms(from, to time.Time, limit int) ([]RoomPopularity, error) {
	if limit <= 0 {
		limit = 5
	}

	rows := make([]RoomPopularity, 0, limit)
	if err := s.confirmedInRange(from, to).
		Select("bookings.room_id AS room_id, rooms.name AS name, COUNT(*) AS booking_count").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Group("bookings.room_id, rooms.name").
		Order("booking_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ReportService) confirmedInRange(from, to time.Time) *gorm.DB {
	q := s.DB.Model(&models.Booking{}).Where("bookings.status = ?", models.BookingConfirmed)
	if !from.IsZero() {
		q = q.Where("bookings.check_in_date >= ?", normalizeDate(from))
	}
	if !to.IsZero() {
		q = q.Where("bookings.check_in_date <= ?", normalizeDate(to))
	}
	return q
}
