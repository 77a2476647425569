package services

import (
	"errors"
	"fmt"

	"rental-backend/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

var (
	ErrReviewNotFound   = errors.New("review_not_found")
	ErrStayNotCompleted = errors.New("stay_not_completed")
	ErrAlreadyReviewed  = errors.New("already_reviewed")
	ErrInvalidRating    = errors.New("invalid_rating")
)

// Create stores a review and recomputes the property's rating aggregate.
// Only a guest with a completed stay on the property may review it, and a
// booking can be reviewed once.
func (s *ReviewService) Create(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var completed models.Booking
		err := tx.
			Where("property_id = ? AND guest_id = ? AND status = ?",
				review.PropertyID, review.UserID, models.BookingStatusCompleted).
			Order("check_out DESC").
			First(&completed).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStayNotCompleted
			}
			return fmt.Errorf("failed to check completed stay: %w", err)
		}

		if review.BookingID == nil {
			review.BookingID = &completed.ID
		}

		var dup int64
		if err := tx.Model(&models.Review{}).
			Where("booking_id = ?", *review.BookingID).
			Count(&dup).Error; err != nil {
			return fmt.Errorf("failed to check existing review: %w", err)
		}
		if dup > 0 {
			return ErrAlreadyReviewed
		}

		if err := tx.Create(review).Error; err != nil {
			if isConflictError(err) {
				return ErrAlreadyReviewed
			}
			return fmt.Errorf("failed to create review: %w", err)
		}

		return recomputePropertyRating(tx, review.PropertyID)
	})
}

func (s *ReviewService) ListByProperty(propertyID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.
		Preload("User").
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReviewNotFound
			}
			return err
		}
		if err := tx.Delete(&review).Error; err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return recomputePropertyRating(tx, review.PropertyID)
	})
}

// recomputePropertyRating refreshes the denormalized aggregate on the
// property row from the surviving reviews.
func recomputePropertyRating(tx *gorm.DB, propertyID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	if err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("property_id = ?", propertyID).
		Scan(&agg).Error; err != nil {
		return fmt.Errorf("failed to aggregate reviews: %w", err)
	}
	return tx.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]interface{}{"rating": agg.Avg, "reviews_count": agg.Count}).Error
}
