package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	PropertyID uint   `json:"property_id" binding:"required"`
	UserID     uint   `json:"user_id" binding:"required"`
	BookingID  *uint  `json:"booking_id"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

type ReviewController struct {
	ReviewSvc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{ReviewSvc: svc}
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	review := models.Review{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		BookingID:  req.BookingID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := rc.ReviewSvc.Create(&review); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			utils.JSONError(c, http.StatusBadRequest, "rating must be between 1 and 5")
		case errors.Is(err, services.ErrStayNotCompleted):
			utils.JSONError(c, http.StatusUnprocessableEntity, "only guests with a completed stay can review")
		case errors.Is(err, services.ErrAlreadyReviewed):
			utils.JSONError(c, http.StatusConflict, "this stay has already been reviewed")
		default:
			log.Printf("❌ CreateReview failed: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "failed to create review")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, review)
}

func (rc *ReviewController) GetPropertyReviews(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	reviews, err := rc.ReviewSvc.ListByProperty(uint(id))
	if err != nil {
		log.Printf("❌ GetPropertyReviews failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve reviews")
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	utils.JSONSuccess(c, http.StatusOK, reviews)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := rc.ReviewSvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrReviewNotFound) {
			utils.JSONError(c, http.StatusNotFound, "review not found")
			return
		}
		log.Printf("❌ DeleteReview failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete review")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
