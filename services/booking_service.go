// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

var (
	ErrPropertyNotFound  = errors.New("property_not_found")
	ErrGuestNotFound     = errors.New("guest_not_found")
	ErrBookingNotFound   = errors.New("booking_not_found")
	ErrPropertyInactive  = errors.New("property_inactive")
	ErrInvalidTransition = errors.New("invalid_status_transition")
)

// isConflictError reports whether a storage error came from a concurrent
// insert hitting a uniqueness/exclusion constraint.
func isConflictError(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

// CreateBooking runs the admission gates and persists the booking in a single
// transaction. The property row is locked FOR UPDATE before the overlap scan
// so concurrent requests for the same property serialize on the lock instead
// of racing between check and insert.
func (s *BookingService) CreateBooking(guestID, propertyID uint, checkIn, checkOut time.Time, guestsCount int) (*models.Booking, error) {
	var guest models.User
	if err := s.DB.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("db error checking guest %d: %w", guestID, err)
	}

	booking := &models.Booking{}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&property, propertyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPropertyNotFound
			}
			return fmt.Errorf("failed to load property %d: %w", propertyID, err)
		}
		if property.IsActive != nil && !*property.IsActive {
			return ErrPropertyInactive
		}

		var existing []models.Booking
		if err := tx.
			Where("property_id = ? AND status IN ?", propertyID, models.ActiveBookingStatuses).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load active bookings: %w", err)
		}

		draft, err := EvaluateBooking(property, checkIn, checkOut, guestsCount, existing)
		if err != nil {
			return err
		}

		ref, err := utils.GenerateBookingReference()
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}

		*booking = models.Booking{
			PropertyID:    propertyID,
			GuestID:       guestID,
			ReferenceCode: ref,
			CheckIn:       truncateToDate(checkIn),
			CheckOut:      truncateToDate(checkOut),
			Nights:        draft.Nights,
			GuestsCount:   guestsCount,
			PricePerNight: draft.PricePerNight,
			Subtotal:      draft.Subtotal,
			CleaningFee:   draft.CleaningFee,
			ServiceFee:    draft.ServiceFee,
			TotalPrice:    draft.TotalPrice,
			Status:        models.BookingStatusPending,
			PaymentStatus: models.PaymentStatusPending,
		}

		if err := tx.Create(booking).Error; err != nil {
			// A constraint trip here means another request won the race for
			// these dates; surface it as the same conflict the overlap gate
			// would have reported.
			if isConflictError(err) {
				return violation(RuleDateRangeConflict,
					"property was booked for these dates by another request")
			}
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	var result models.Booking
	if err := s.DB.
		Preload("Property").
		Preload("Property.Owner").
		Preload("Guest").
		First(&result, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", booking.ID, err)
	}

	// notify guest and owner (best-effort)
	if mailErr := utils.SendBookingRequestEmail(
		result.Guest.Email,
		result.Property.Owner.Email,
		result.ReferenceCode,
		result.Property.Title,
		result.CheckIn.Format("2006-01-02"),
		result.CheckOut.Format("2006-01-02"),
		result.TotalPrice,
	); mailErr != nil {
		log.Printf("warning: failed to send booking request email for %s: %v", result.ReferenceCode, mailErr)
	}

	return &result, nil
}

// UpdateStatus moves a booking along its lifecycle. Confirmation and
// cancellation notify the guest after commit; a cancellation of a paid
// booking also flips the payment status to refunded.
func (s *BookingService) UpdateStatus(bookingID uint, next string) (*models.Booking, error) {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("failed to load booking %d: %w", bookingID, err)
		}

		if !models.CanTransition(booking.Status, next) {
			return ErrInvalidTransition
		}

		updates := map[string]interface{}{"status": next}
		if next == models.BookingStatusCancelled && booking.PaymentStatus == models.PaymentStatusPaid {
			updates["payment_status"] = models.PaymentStatusRefunded
		}
		if err := tx.Model(&booking).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update booking %d: %w", bookingID, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	var updated models.Booking
	if err := s.DB.
		Preload("Property").
		Preload("Property.Owner").
		Preload("Guest").
		First(&updated, bookingID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking %d: %w", bookingID, err)
	}

	switch next {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusRejected:
		if mailErr := utils.SendBookingStatusEmail(
			updated.Guest.Email,
			updated.ReferenceCode,
			updated.Property.Title,
			next,
		); mailErr != nil {
			log.Printf("warning: failed to send status email for %s: %v", updated.ReferenceCode, mailErr)
		}
	}

	return &updated, nil
}

// BookingFilter narrows GetAllWithRelations. Zero values mean no filter.
type BookingFilter struct {
	PropertyID uint
	GuestID    uint
	Status     string
}

func (s *BookingService) GetAllWithRelations(filter BookingFilter) ([]models.Booking, error) {
	q := s.DB.
		Preload("Property").
		Preload("Guest").
		Order("created_at DESC")

	if filter.PropertyID != 0 {
		q = q.Where("property_id = ?", filter.PropertyID)
	}
	if filter.GuestID != 0 {
		q = q.Where("guest_id = ?", filter.GuestID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var list []models.Booking
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.
		Preload("Property").
		Preload("Property.Owner").
		Preload("Guest").
		First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}

// FindActiveByProperty returns the bookings that still occupy dates on the
// property, ordered by check-in.
func (s *BookingService) FindActiveByProperty(propertyID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.
		Where("property_id = ? AND status IN ?", propertyID, models.ActiveBookingStatuses).
		Order("check_in ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve active bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) Delete(bookingID uint) error {
	res := s.DB.Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
