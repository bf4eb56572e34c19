package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
)

func TestCreateBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 5, 2)

	booking, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		GuestAddress: "1 Orchard Rd",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingAwaitingPayment, booking.Status)
	assert.Equal(t, models.PaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, 2, booking.Nights)
	assert.Equal(t, float64(1000000), booking.TotalPrice)
	assert.Equal(t, booking.TotalPrice, booking.FinalPrice)
	assert.Nil(t, booking.PromoCodeUsed)
	assert.Equal(t, 1, booking.SequenceNo)
	assert.NotEmpty(t, booking.ReferenceCode)

	// one unit held for each night of the stay, checkout day untouched
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-10"))
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-11"))
	assert.Equal(t, 2, inventoryQty(t, db, room.ID, "2025-06-12"))

	second, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-12"),
		CheckOutDate: day(t, "2025-06-13"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.SequenceNo)
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 3, 1)

	_, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-11"),
		CheckOutDate: day(t, "2025-06-11"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "  ",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-11"),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(user.ID, CreateBookingInput{
		RoomID:       9999,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-11"),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateBookingAllOrNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)

	// middle day is sold out
	seedInventory(t, db, room.ID, "2025-06-10", 1, 3)
	seedInventory(t, db, room.ID, "2025-06-11", 1, 0)
	seedInventory(t, db, room.ID, "2025-06-12", 1, 3)

	_, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-13"),
	})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	// rollback left the first day untouched and created nothing
	assert.Equal(t, 3, inventoryQty(t, db, room.ID, "2025-06-10"))
	assert.Equal(t, 0, inventoryQty(t, db, room.ID, "2025-06-11"))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingInactiveDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 2, 3)
	require.NoError(t, db.Model(&models.DailyInventory{}).
		Where("room_id = ? AND date = ?", room.ID, normalizeDate(day(t, "2025-06-11"))).
		Update("is_active", false).Error)

	_, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
	assert.Equal(t, 3, inventoryQty(t, db, room.ID, "2025-06-10"))
}

func TestCreateBookingMissingDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	// no row at all for 2025-06-11
	seedInventory(t, db, room.ID, "2025-06-10", 1, 3)

	_, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	})
	assert.ErrorIs(t, err, ErrInsufficientAvailability)
}

func TestLastUnitContention(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 2, 1)

	in := CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Guest",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	}

	_, err := svc.Create(alice.ID, in)
	require.NoError(t, err)

	// the guarded decrement refuses the second booking of the last unit
	_, err = svc.Create(bob.ID, in)
	assert.ErrorIs(t, err, ErrInsufficientAvailability)

	assert.Equal(t, 0, inventoryQty(t, db, room.ID, "2025-06-10"))
	assert.Equal(t, 0, inventoryQty(t, db, room.ID, "2025-06-11"))
}

func TestCreateBookingPromo(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 10, 5)
	seedPromo(t, db, "SAVE10", 10, time.Now().AddDate(0, 1, 0), true)
	seedPromo(t, db, "OLD20", 20, time.Now().AddDate(0, 0, -1), true)

	booking, err := svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
		PromoCode:    "save10", // matched case-insensitively
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1000000), booking.TotalPrice)
	assert.Equal(t, float64(900000), booking.FinalPrice)
	require.NotNil(t, booking.PromoCodeUsed)
	assert.Equal(t, "SAVE10", *booking.PromoCodeUsed)

	// expired promo is ignored, not an error
	booking, err = svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-12"),
		CheckOutDate: day(t, "2025-06-14"),
		PromoCode:    "OLD20",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.TotalPrice, booking.FinalPrice)
	assert.Nil(t, booking.PromoCodeUsed)

	// unknown code is a validation error and books nothing
	_, err = svc.Create(user.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-14"),
		CheckOutDate: day(t, "2025-06-15"),
		PromoCode:    "NOPE",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 5, inventoryQty(t, db, room.ID, "2025-06-14"))
}

func TestPay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 3, 2)

	booking, err := svc.Create(alice.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	})
	require.NoError(t, err)

	_, err = svc.Pay(booking.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	paid, err := svc.Pay(booking.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, paid.Status)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)

	_, err = svc.Pay(booking.ID, alice.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Pay(9999, alice.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelRestoresInventoryExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 3, 2)

	booking, err := svc.Create(alice.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-13"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-11"))

	err = svc.Cancel(booking.ID, bob.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Cancel(booking.ID, alice.ID))

	// pre-booking quantities restored for every night
	for _, d := range []string{"2025-06-10", "2025-06-11", "2025-06-12"} {
		assert.Equal(t, 2, inventoryQty(t, db, room.ID, d))
	}

	// second cancel conflicts and must not double-increment
	err = svc.Cancel(booking.ID, alice.ID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 2, inventoryQty(t, db, room.ID, "2025-06-10"))

	var got models.Booking
	require.NoError(t, db.First(&got, booking.ID).Error)
	assert.Equal(t, models.BookingCancelled, got.Status)
}

func TestAdminRejectAndDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	room := seedRoom(t, db, "Deluxe King", 500000)
	seedInventory(t, db, room.ID, "2025-06-10", 4, 1)

	booking, err := svc.Create(alice.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-12"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.AdminReject(booking.ID))
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-10"))
	assert.ErrorIs(t, svc.AdminReject(booking.ID), ErrConflict)

	// deleting a booking that no longer holds inventory must not restore again
	require.NoError(t, svc.AdminDelete(booking.ID))
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-10"))

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Zero(t, count)

	// deleting a live booking restores its nights first
	second, err := svc.Create(alice.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-12"),
		CheckOutDate: day(t, "2025-06-14"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, inventoryQty(t, db, room.ID, "2025-06-12"))

	require.NoError(t, svc.AdminDelete(second.ID))
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-12"))
	assert.Equal(t, 1, inventoryQty(t, db, room.ID, "2025-06-13"))
}

func TestListByUserPagination(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	room := seedRoom(t, db, "Deluxe King", 100)
	seedInventory(t, db, room.ID, "2025-06-01", 30, 10)

	for i := 0; i < 5; i++ {
		in := normalizeDate(day(t, "2025-06-01")).AddDate(0, 0, i*2)
		_, err := svc.Create(alice.ID, CreateBookingInput{
			RoomID:       room.ID,
			GuestName:    "Alice Tan",
			CheckInDate:  in,
			CheckOutDate: in.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
	}

	bookings, total, err := svc.ListByUser(alice.ID, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, bookings, 2)

	bookings, _, err = svc.ListByUser(alice.ID, 3, 2)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	_, total, err = svc.ListByUser(bob.ID, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetByIDOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBookingService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	room := seedRoom(t, db, "Deluxe King", 100)
	seedInventory(t, db, room.ID, "2025-06-10", 2, 1)

	booking, err := svc.Create(alice.ID, CreateBookingInput{
		RoomID:       room.ID,
		GuestName:    "Alice Tan",
		CheckInDate:  day(t, "2025-06-10"),
		CheckOutDate: day(t, "2025-06-11"),
	})
	require.NoError(t, err)

	_, err = svc.GetByID(booking.ID, bob.ID, false)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetByID(booking.ID, bob.ID, true) // admin bypass
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
}
