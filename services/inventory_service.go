package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

// InventoryService answers availability questions and carries the admin's
// direct edits to per-day inventory. The booking engine mutates quantities
// itself; everything here is either read-only or an explicit admin set.
type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

// normalizeDate truncates to a UTC calendar day. Every inventory row, booking
// date and range query in the repo goes through this, so date equality in SQL
// is always comparing like with like.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const dayKeyLayout = "2006-01-02"

// RangeAvailability returns how many units can still be booked for every
// night in [checkIn, checkOut): the minimum available_quantity across the
// range. A missing or inactive day makes the whole range unavailable (0).
func (s *InventoryService) RangeAvailability(roomID uint, checkIn, checkOut time.Time) (int, error) {
	in := normalizeDate(checkIn)
	out := normalizeDate(checkOut)
	if !out.After(in) {
		return 0, fmt.Errorf("%w: check_out_date must be after check_in_date", ErrValidation)
	}

	var rows []models.DailyInventory
	if err := s.DB.
		Where("room_id = ? AND date >= ? AND date < ?", roomID, in, out).
		Find(&rows).Error; err != nil {
		return 0, err
	}

	byDay := make(map[string]models.DailyInventory, len(rows))
	for _, row := range rows {
		byDay[row.Date.Format(dayKeyLayout)] = row
	}

	min := 0
	first := true
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		row, ok := byDay[d.Format(dayKeyLayout)]
		if !ok || !row.IsActive {
			return 0, nil
		}
		if first || row.AvailableQuantity < min {
			min = row.AvailableQuantity
		}
		first = false
	}
	if min < 0 {
		min = 0
	}
	return min, nil
}

// SetRange upserts inventory for every day in [from, to] inclusive. This is
// the admin's "last explicit set" that the non-negativity invariant is
// measured against.
func (s *InventoryService) SetRange(roomID uint, from, to time.Time, quantity int, active bool) ([]models.DailyInventory, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	start := normalizeDate(from)
	end := normalizeDate(to)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: to date is before from date", ErrValidation)
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, roomID)
		}
		return nil, err
	}

	rows := make([]models.DailyInventory, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rows = append(rows, models.DailyInventory{
			RoomID:            roomID,
			Date:              d,
			AvailableQuantity: quantity,
			IsActive:          active,
		})
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"available_quantity", "is_active", "updated_at"}),
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListForRoom returns the inventory rows for a room, optionally bounded by
// [from, to] inclusive, ordered by date.
func (s *InventoryService) ListForRoom(roomID uint, from, to time.Time) ([]models.DailyInventory, error) {
	q := s.DB.Where("room_id = ?", roomID)
	if !from.IsZero() {
		q = q.Where("date >= ?", normalizeDate(from))
	}
	if !to.IsZero() {
		q = q.Where("date <= ?", normalizeDate(to))
	}

	var rows []models.DailyInventory
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
