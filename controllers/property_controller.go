package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

var propertySvc services.PropertyService

// ----------------------------------------------------
// 1. Get Properties (GET /api/properties)
// ----------------------------------------------------

func GetProperties(c *gin.Context) {
	filter := services.PropertyFilter{
		City:       c.Query("city"),
		RentalType: c.Query("rental_type"),
		ActiveOnly: c.Query("active") == "true",
	}
	if v := c.Query("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid guests filter")
			return
		}
		filter.MinGuests = n
	}

	properties, err := propertySvc.List(filter)
	if err != nil {
		log.Printf("❌ GetProperties failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

// ----------------------------------------------------
// 2. Create Property (POST /api/properties)
// ----------------------------------------------------

func CreateProperty(c *gin.Context) {
	var property models.Property

	if err := c.ShouldBindJSON(&property); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	property.Title = strings.TrimSpace(property.Title)
	if property.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Title is required.",
		})
		return
	}
	if property.MaxGuests < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "max_guests must be at least 1.",
		})
		return
	}
	if property.PricePerNight < 0 || property.CleaningFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "price_per_night and cleaning_fee must not be negative.",
		})
		return
	}
	switch property.RentalType {
	case "", models.RentalTypeShortTerm, models.RentalTypeLongTerm, models.RentalTypeBoth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "rental_type must be short_term, long_term or both.",
		})
		return
	}

	if err := propertySvc.Create(&property); err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}

	c.JSON(http.StatusCreated, property)
}

// ----------------------------------------------------
// 3. Get Property (GET /api/properties/:id)
// ----------------------------------------------------

func GetPropertyByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	property, err := propertySvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		log.Printf("❌ GetPropertyByID failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve property")
		return
	}
	c.JSON(http.StatusOK, property)
}

// ----------------------------------------------------
// 4. Update Property (PUT /api/properties/:id)
// ----------------------------------------------------

func UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var property models.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	property.ID = uint(id)

	if err := propertySvc.Update(property); err != nil {
		log.Printf("❌ UpdateProperty failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update property")
		return
	}

	updated, err := propertySvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to reload property")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ----------------------------------------------------
// 5. Delete Property (DELETE /api/properties/:id)
// ----------------------------------------------------

func DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := propertySvc.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			utils.JSONError(c, http.StatusNotFound, "property not found")
			return
		}
		log.Printf("❌ DeleteProperty failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete property")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
