package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Affsyamf/pemesananhotel-sub000/middleware"
	"github.com/Affsyamf/pemesananhotel-sub000/services"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: reviews}
}

func (rv *ReviewController) ListReviews(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	reviews, err := rv.Reviews.ListForRoom(roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (rv *ReviewController) CanReview(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	p, _ := middleware.CurrentPrincipal(c)

	ok, err := rv.Reviews.CanReview(p.UserID, roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"can_review": ok})
}

type reviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (rv *ReviewController) SubmitReview(c *gin.Context) {
	roomID, err := parseIDParam(c, "id")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	var payload reviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	p, _ := middleware.CurrentPrincipal(c)

	review, err := rv.Reviews.Submit(p.UserID, roomID, payload.Rating, payload.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, review)
}
