package controllers

import (
	"errors"
	"net/http"

	"rental-backend/config"
	"rental-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type siteSettingsPayload struct {
	SiteName string `json:"site_name"`
	Tagline  string `json:"tagline"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Logo     string `json:"logo"`
	Currency string `json:"currency"`
}

func GetSiteSettings(c *gin.Context) {
	var site models.SiteSetting
	if err := config.DB.First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"site": models.SiteSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

func UpdateSiteSettings(c *gin.Context) {
	var payload siteSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var site models.SiteSetting
	err := config.DB.First(&site).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			site = models.SiteSetting{
				SiteName: payload.SiteName,
				Tagline:  payload.Tagline,
				Address:  payload.Address,
				Phone:    payload.Phone,
				Email:    payload.Email,
				Logo:     payload.Logo,
				Currency: payload.Currency,
			}
			if err := config.DB.Create(&site).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"site": site})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	site.SiteName = payload.SiteName
	site.Tagline = payload.Tagline
	site.Address = payload.Address
	site.Phone = payload.Phone
	site.Email = payload.Email
	site.Logo = payload.Logo
	if payload.Currency != "" {
		site.Currency = payload.Currency
	}

	if err := config.DB.Save(&site).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}
