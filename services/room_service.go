package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

type RoomService struct {
	DB        *gorm.DB
	Inventory *InventoryService
}

func NewRoomService(db *gorm.DB, inventory *InventoryService) *RoomService {
	return &RoomService{DB: db, Inventory: inventory}
}

// RoomWithAvailability is the public catalog entry. AvailableQuantity is only
// set when the caller asked for a date range.
type RoomWithAvailability struct {
	models.Room
	AvailableQuantity *int `json:"available_quantity,omitempty"`
}

// List returns the catalog; when both dates are given, each room carries the
// number of units still bookable for every night of the range.
func (s *RoomService) List(checkIn, checkOut *time.Time) ([]RoomWithAvailability, error) {
	var rooms []models.Room
	if err := s.DB.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}

	out := make([]RoomWithAvailability, 0, len(rooms))
	for _, room := range rooms {
		entry := RoomWithAvailability{Room: room}
		if checkIn != nil && checkOut != nil {
			qty, err := s.Inventory.RangeAvailability(room.ID, *checkIn, *checkOut)
			if err != nil {
				return nil, err
			}
			q := qty
			entry.AvailableQuantity = &q
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *RoomService) Get(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &room, nil
}

type RoomInput struct {
	Name        *string         `json:"name"`
	Type        *string         `json:"type"`
	Description *string         `json:"description"`
	Facilities  *datatypes.JSON `json:"facilities"`
	Price       *float64        `json:"price"`
}

func (s *RoomService) Create(in RoomInput) (*models.Room, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Price == nil || *in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	}

	room := &models.Room{
		Name:  strings.TrimSpace(*in.Name),
		Price: *in.Price,
	}
	if in.Type != nil {
		room.Type = strings.TrimSpace(*in.Type)
	}
	if in.Description != nil {
		room.Description = *in.Description
	}
	if in.Facilities != nil {
		room.Facilities = *in.Facilities
	}
	if err := s.DB.Create(room).Error; err != nil {
		return nil, err
	}
	return room, nil
}

// Update applies only the provided fields. Review aggregates are owned by the
// review engine and cannot be edited here.
func (s *RoomService) Update(id uint, in RoomInput) (*models.Room, error) {
	room, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		updates["type"] = strings.TrimSpace(*in.Type)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Facilities != nil {
		updates["facilities"] = *in.Facilities
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
		}
		updates["price"] = *in.Price
	}
	if len(updates) == 0 {
		return room, nil
	}

	if err := s.DB.Model(room).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: room %d", ErrNotFound, id)
	}
	return nil
}
