package services

import (
	"errors"
	"strings"

	"rental-backend/config"
	"rental-backend/models"

	"gorm.io/gorm"
)

type PropertyService struct{}

// PropertyFilter narrows List. Zero values mean no filter.
type PropertyFilter struct {
	City       string
	RentalType string
	MinGuests  int
	ActiveOnly bool
}

func (s PropertyService) Create(property *models.Property) error {
	if property.RentalType == "" {
		property.RentalType = models.RentalTypeBoth
	}
	return config.DB.Create(property).Error
}

func (s PropertyService) List(filter PropertyFilter) ([]models.Property, error) {
	q := config.DB.Model(&models.Property{}).Preload("Owner")

	if city := strings.TrimSpace(filter.City); city != "" {
		q = q.Where("city = ?", city)
	}
	if filter.RentalType != "" {
		q = q.Where("rental_type IN ?", []string{filter.RentalType, models.RentalTypeBoth})
	}
	if filter.MinGuests > 0 {
		q = q.Where("max_guests >= ?", filter.MinGuests)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var properties []models.Property
	err := q.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (s PropertyService) GetByID(id uint) (models.Property, error) {
	var property models.Property
	err := config.DB.Preload("Owner").First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return property, ErrPropertyNotFound
	}
	return property, err
}

func (s PropertyService) Update(property models.Property) error {
	return config.DB.Model(&models.Property{}).Where("id = ?", property.ID).Updates(property).Error
}

func (s PropertyService) Delete(id uint) error {
	res := config.DB.Delete(&models.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}
