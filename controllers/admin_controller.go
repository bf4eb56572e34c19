package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
	"github.com/Affsyamf/pemesananhotel-sub000/services"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

// AdminController is the back-office surface: direct CRUD on rooms,
// inventory, promos and users, plus booking moderation and reports. All of
// its routes sit behind RequireAuth + RequireAdmin.
type AdminController struct {
	DB        *gorm.DB
	Rooms     *services.RoomService
	Inventory *services.InventoryService
	Promos    *services.PromoService
	Bookings  *services.BookingService
	Reports   *services.ReportService
}

func NewAdminController(
	db *gorm.DB,
	rooms *services.RoomService,
	inventory *services.InventoryService,
	promos *services.PromoService,
	bookings *services.BookingService,
	reports *services.ReportService,
) *AdminController {
	return &AdminController{
		DB:        db,
		Rooms:     rooms,
		Inventory: inventory,
		Promos:    promos,
		Bookings:  bookings,
		Reports:   reports,
	}
}

// ---------------- Rooms ----------------

func (ac *AdminController) ListRooms(c *gin.Context) {
	rooms, err := ac.Rooms.List(nil, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ac *AdminController) CreateRoom(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	room, err := ac.Rooms.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ac *AdminController) UpdateRoom(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	room, err := ac.Rooms.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ac *AdminController) DeleteRoom(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ---------------- Inventory ----------------

type setInventoryPayload struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Quantity int    `json:"quantity"`
	IsActive *bool  `json:"is_active"`
}

func (ac *AdminController) SetInventory(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var payload setInventoryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	from, err := parseDate(payload.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
		return
	}
	to, err := parseDate(payload.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date, want YYYY-MM-DD")
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	rows, err := ac.Inventory.SetRange(roomID, from, to, payload.Quantity, active)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (ac *AdminController) ListInventory(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	from, err := parseDateQuery(c, "from")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := ac.Inventory.ListForRoom(roomID, from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

// ---------------- Promo codes ----------------

type createPromoPayload struct {
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
	ExpiryDate         string `json:"expiry_date"`
}

func (ac *AdminController) CreatePromo(c *gin.Context) {
	var payload createPromoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	expiry, err := parseDate(payload.ExpiryDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid expiry_date, want YYYY-MM-DD")
		return
	}

	promo, err := ac.Promos.Create(payload.Code, payload.DiscountPercentage, expiry)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, promo)
}

func (ac *AdminController) ListPromos(c *gin.Context) {
	promos, err := ac.Promos.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promos)
}

type patchPromoPayload struct {
	IsActive *bool `json:"is_active"`
}

func (ac *AdminController) PatchPromo(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var payload patchPromoPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsActive == nil {
		utils.JSONError(c, http.StatusBadRequest, "is_active is required")
		return
	}

	promo, err := ac.Promos.SetActive(id, *payload.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, promo)
}

func (ac *AdminController) DeletePromo(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.Promos.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ---------------- Bookings ----------------

func (ac *AdminController) ListBookings(c *gin.Context) {
	page, limit := parsePageQuery(c)
	status := models.BookingStatus(strings.TrimSpace(c.Query("status")))

	bookings, total, err := ac.Bookings.AdminList(status, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONPage(c, http.StatusOK, bookings, total, page, limit)
}

func (ac *AdminController) RejectBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.Bookings.AdminReject(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"rejected": true})
}

func (ac *AdminController) DeleteBooking(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ac.Bookings.AdminDelete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ---------------- Users ----------------

func (ac *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ac.DB.Order("id ASC").Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res := ac.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if res.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}

// ---------------- Reports ----------------

func (ac *AdminController) ReportSummary(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := ac.Reports.Summary(from, to)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}

func (ac *AdminController) TopRooms(c *gin.Context) {
	from, err := parseDateQuery(c, "from")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	rooms, err := ac.Reports.TopRooms(from, to, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
