package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/middleware"
	"github.com/Affsyamf/pemesananhotel-sub000/services"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingPayload struct {
	RoomID       uint   `json:"room_id"`
	GuestName    string `json:"guest_name"`
	GuestAddress string `json:"guest_address"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	PromoCode    string `json:"promo_code"`
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in_date, want YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out_date, want YYYY-MM-DD")
		return
	}

	p, _ := middleware.CurrentPrincipal(c)
	booking, err := bc.Bookings.Create(p.UserID, services.CreateBookingInput{
		RoomID:       payload.RoomID,
		GuestName:    payload.GuestName,
		GuestAddress: payload.GuestAddress,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		PromoCode:    payload.PromoCode,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"bookingId":     booking.ID,
		"referenceCode": booking.ReferenceCode,
		"status":        booking.Status,
		"totalPrice":    booking.TotalPrice,
		"finalPrice":    booking.FinalPrice,
	})
}

func (bc *BookingController) PayBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, _ := middleware.CurrentPrincipal(c)

	booking, err := bc.Bookings.Pay(id, p.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, _ := middleware.CurrentPrincipal(c)

	if err := bc.Bookings.Cancel(id, p.UserID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": true})
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, _ := middleware.CurrentPrincipal(c)

	booking, err := bc.Bookings.GetByID(id, p.UserID, p.IsAdmin())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) MyBookings(c *gin.Context) {
	p, _ := middleware.CurrentPrincipal(c)
	page, limit := parsePageQuery(c)

	bookings, total, err := bc.Bookings.ListByUser(p.UserID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, bookings, total, page, limit)
}
