package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/services"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

const dateLayout = "2006-01-02"

// respondServiceError translates the services error taxonomy into HTTP
// statuses. Anything unrecognized is a 500 with a generic body; the detail
// only goes to the server log.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInsufficientAvailability):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter; zero time when
// absent.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s, want YYYY-MM-DD", name)
	}
	return t, nil
}

func parsePageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
