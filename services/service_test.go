package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.DailyInventory{},
		&models.PromoCode{},
		&models.Booking{},
		&models.Review{},
	)
	require.NoError(t, err)

	return db
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	u := models.User{Username: name, Email: name + "@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedRoom(t *testing.T, db *gorm.DB, name string, price float64) models.Room {
	t.Helper()
	r := models.Room{Name: name, Type: "Deluxe", Price: price}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func seedInventory(t *testing.T, db *gorm.DB, roomID uint, from string, days, qty int) {
	t.Helper()
	start := normalizeDate(day(t, from))
	for i := 0; i < days; i++ {
		row := models.DailyInventory{
			RoomID:            roomID,
			Date:              start.AddDate(0, 0, i),
			AvailableQuantity: qty,
			IsActive:          true,
		}
		require.NoError(t, db.Create(&row).Error)
	}
}

func seedPromo(t *testing.T, db *gorm.DB, code string, pct int, expiry time.Time, active bool) models.PromoCode {
	t.Helper()
	p := models.PromoCode{Code: code, DiscountPercentage: pct, ExpiryDate: expiry, IsActive: active}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func inventoryQty(t *testing.T, db *gorm.DB, roomID uint, date string) int {
	t.Helper()
	var row models.DailyInventory
	require.NoError(t, db.
		Where("room_id = ? AND date = ?", roomID, normalizeDate(day(t, date))).
		First(&row).Error)
	return row.AvailableQuantity
}
