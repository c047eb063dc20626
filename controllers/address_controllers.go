package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/utils"
)

type AddressController struct {
	DB *gorm.DB
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{DB: db}
}

func (ac *AddressController) ListMyAddresses(c *gin.Context) {
	var addresses []models.Address
	if err := ac.DB.Where("user_id = ?", currentUserID(c)).Find(&addresses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Addresses", addresses)
}

func (ac *AddressController) CreateAddress(c *gin.Context) {
	type request struct {
		Label  string `json:"label"`
		Street string `json:"street" binding:"required"`
		Area   string `json:"area" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	address := models.Address{
		UserID: currentUserID(c),
		Label:  req.Label,
		Street: req.Street,
		Area:   req.Area,
	}
	if err := ac.DB.Create(&address).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Address created", address)
}

func (ac *AddressController) DeleteAddress(c *gin.Context) {
	res := ac.DB.Where("user_id = ?", currentUserID(c)).
		Delete(&models.Address{}, c.Param("address_id"))
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, gorm.ErrRecordNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Address deleted", nil)
}
