package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/utils"
)

type LocationController struct {
	DB *gorm.DB
}

func NewLocationController(db *gorm.DB) *LocationController {
	return &LocationController{DB: db}
}

func (lc *LocationController) GetAllLocations(c *gin.Context) {
	var locations []models.Location
	if err := lc.DB.Order("area asc").Find(&locations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Delivery locations", locations)
}

func (lc *LocationController) CreateLocation(c *gin.Context) {
	var req struct {
		Area                string   `json:"area" binding:"required"`
		DeliveryFee         *float64 `json:"delivery_fee" binding:"required,gte=0"`
		DeliveryTimeMinutes int      `json:"delivery_time_minutes" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	location := models.Location{
		Area:                req.Area,
		DeliveryFee:         *req.DeliveryFee,
		DeliveryTimeMinutes: req.DeliveryTimeMinutes,
	}
	if err := lc.DB.Create(&location).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Location created", location)
}

func (lc *LocationController) UpdateLocation(c *gin.Context) {
	var location models.Location
	if err := lc.DB.First(&location, c.Param("location_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Area                *string  `json:"area"`
		DeliveryFee         *float64 `json:"delivery_fee"`
		DeliveryTimeMinutes *int     `json:"delivery_time_minutes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Area != nil {
		location.Area = *req.Area
	}
	if req.DeliveryFee != nil {
		location.DeliveryFee = *req.DeliveryFee
	}
	if req.DeliveryTimeMinutes != nil {
		location.DeliveryTimeMinutes = *req.DeliveryTimeMinutes
	}

	if err := lc.DB.Save(&location).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Location updated", location)
}

func (lc *LocationController) DeleteLocation(c *gin.Context) {
	if err := lc.DB.Delete(&models.Location{}, c.Param("location_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Location deleted", nil)
}
