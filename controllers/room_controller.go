package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/services"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

type RoomController struct {
	Rooms   *services.RoomService
	Reviews *services.ReviewService
}

func NewRoomController(rooms *services.RoomService, reviews *services.ReviewService) *RoomController {
	return &RoomController{Rooms: rooms, Reviews: reviews}
}

// ListRooms is the public catalog. checkInDate/checkOutDate must be given
// together; with them each room carries its availability for the range.
func (rc *RoomController) ListRooms(c *gin.Context) {
	checkIn, err := parseDateQuery(c, "checkInDate")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := parseDateQuery(c, "checkOutDate")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if checkIn.IsZero() != checkOut.IsZero() {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate and checkOutDate must be given together")
		return
	}

	var in, out *time.Time
	if !checkIn.IsZero() {
		in, out = &checkIn, &checkOut
	}

	rooms, err := rc.Rooms.List(in, out)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := rc.Rooms.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	reviews, err := rc.Reviews.ListForRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"room": room, "reviews": reviews})
}
