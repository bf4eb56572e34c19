package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

func seedBooking(t *testing.T, db *gorm.DB, userID, roomID uint, checkIn string, status models.BookingStatus, finalPrice float64) {
	t.Helper()
	in := normalizeDate(day(t, checkIn))
	b := models.Booking{
		ReferenceCode: "BK-" + checkIn + "-" + time.Now().Format("150405.000000000"),
		UserID:        userID,
		RoomID:        roomID,
		GuestName:     "Guest",
		CheckInDate:   in,
		CheckOutDate:  in.AddDate(0, 0, 1),
		Nights:        1,
		Status:        status,
		PaymentStatus: models.PaymentPaid,
		TotalPrice:    finalPrice,
		FinalPrice:    finalPrice,
	}
	require.NoError(t, db.Create(&b).Error)
}

func TestSummaryEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	summary, err := svc.Summary(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.BookingCount)

	rooms, err := svc.TopRooms(time.Time{}, time.Time{}, 5)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestSummaryCountsOnlyConfirmed(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 100)

	seedBooking(t, db, user.ID, room.ID, "2025-06-10", models.BookingConfirmed, 900000)
	seedBooking(t, db, user.ID, room.ID, "2025-06-12", models.BookingConfirmed, 500000)
	seedBooking(t, db, user.ID, room.ID, "2025-06-14", models.BookingCancelled, 700000)
	seedBooking(t, db, user.ID, room.ID, "2025-06-16", models.BookingAwaitingPayment, 300000)

	summary, err := svc.Summary(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.InDelta(t, 1400000, summary.TotalRevenue, 1e-9)
	assert.EqualValues(t, 2, summary.BookingCount)

	// date bounds are inclusive on check-in date
	summary, err = svc.Summary(day(t, "2025-06-12"), day(t, "2025-06-12"))
	require.NoError(t, err)
	assert.InDelta(t, 500000, summary.TotalRevenue, 1e-9)
	assert.EqualValues(t, 1, summary.BookingCount)
}

func TestTopRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	user := seedUser(t, db, "alice")
	roomA := seedRoom(t, db, "Deluxe King", 100)
	roomB := seedRoom(t, db, "Standard Twin", 50)

	seedBooking(t, db, user.ID, roomA.ID, "2025-06-10", models.BookingConfirmed, 100)
	seedBooking(t, db, user.ID, roomB.ID, "2025-06-11", models.BookingConfirmed, 50)
	seedBooking(t, db, user.ID, roomB.ID, "2025-06-12", models.BookingConfirmed, 50)
	seedBooking(t, db, user.ID, roomB.ID, "2025-06-13", models.BookingRejected, 50)

	rooms, err := svc.TopRooms(time.Time{}, time.Time{}, 5)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, roomB.ID, rooms[0].RoomID)
	assert.Equal(t, "Standard Twin", rooms[0].Name)
	assert.EqualValues(t, 2, rooms[0].BookingCount)
	assert.EqualValues(t, 1, rooms[1].BookingCount)

	// limit caps the list
	rooms, err = svc.TopRooms(time.Time{}, time.Time{}, 1)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}
