package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/utils"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

func (sc *SettingController) GetSettings(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings", setting)
}

func (sc *SettingController) UpdateSettings(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name                *string  `json:"name"`
		DefaultDeliveryFee  *float64 `json:"default_delivery_fee"`
		DeliveryTimeMinutes *int     `json:"delivery_time_minutes"`
		TaxPercent          *float64 `json:"tax_percent"`
		Timezone            *string  `json:"timezone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		setting.Name = *req.Name
	}
	if req.DefaultDeliveryFee != nil {
		if *req.DefaultDeliveryFee < 0 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("default_delivery_fee must not be negative"))
			return
		}
		setting.DefaultDeliveryFee = *req.DefaultDeliveryFee
	}
	if req.DeliveryTimeMinutes != nil {
		setting.DeliveryTimeMinutes = *req.DeliveryTimeMinutes
	}
	if req.TaxPercent != nil {
		if *req.TaxPercent < 0 || *req.TaxPercent > 100 {
			utils.RespondError(c, http.StatusBadRequest, errors.New("tax_percent must be between 0 and 100"))
			return
		}
		setting.TaxPercent = *req.TaxPercent
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown timezone"))
			return
		}
		setting.Timezone = *req.Timezone
	}

	if err := sc.DB.Save(&setting).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Settings updated", setting)
}
