package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/utils"
)

type OfferController struct {
	DB *gorm.DB
}

func NewOfferController(db *gorm.DB) *OfferController {
	return &OfferController{DB: db}
}

type offerRequest struct {
	Code              string     `json:"code" binding:"required"`
	Description       string     `json:"description"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=percentage flat free_delivery"`
	DiscountValue     float64    `json:"discount_value" binding:"gte=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount"`
	MinOrderValue     *float64   `json:"min_order_value"`
	ScopeType         string     `json:"scope_type" binding:"omitempty,oneof=category item"`
	ScopeID           *uint      `json:"scope_id"`
	FirstOrderOnly    bool       `json:"first_order_only"`
	MaxUsesPerUser    *int       `json:"max_uses_per_user"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidTo           *time.Time `json:"valid_to"`
	IsActive          *bool      `json:"is_active"`
}

func (req *offerRequest) validate() error {
	if req.DiscountType != models.DiscountFreeDeliver && req.DiscountValue <= 0 {
		return errors.New("discount_value must be positive for percentage and flat offers")
	}
	if req.MaxDiscountAmount != nil && *req.MaxDiscountAmount < 0 {
		return errors.New("max_discount_amount must not be negative")
	}
	if req.MaxUsesPerUser != nil && *req.MaxUsesPerUser <= 0 {
		return errors.New("max_uses_per_user must be positive when set")
	}
	if req.ScopeType != models.ScopeNone && req.ScopeID == nil {
		return errors.New("scope_id is required when scope_type is set")
	}
	if req.ScopeType == models.ScopeNone && req.ScopeID != nil {
		return errors.New("scope_type is required when scope_id is set")
	}
	if req.ValidFrom != nil && req.ValidTo != nil && req.ValidTo.Before(*req.ValidFrom) {
		return errors.New("valid_to must not be before valid_from")
	}
	return nil
}

func (oc *OfferController) GetAllOffers(c *gin.Context) {
	var offers []models.Offer
	if err := oc.DB.Find(&offers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of offers", offers)
}

// GetActiveOffers -> public list of currently usable offers
func (oc *OfferController) GetActiveOffers(c *gin.Context) {
	now := time.Now()
	var offers []models.Offer
	err := oc.DB.
		Where("is_active = ?", true).
		Where("valid_from IS NULL OR valid_from <= ?", now).
		Where("valid_to IS NULL OR valid_to >= ?", now).
		Find(&offers).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Active offers", offers)
}

func (oc *OfferController) CreateOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	offer := models.Offer{
		Code:              strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:       req.Description,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MaxDiscountAmount: req.MaxDiscountAmount,
		MinOrderValue:     req.MinOrderValue,
		ScopeType:         req.ScopeType,
		ScopeID:           req.ScopeID,
		FirstOrderOnly:    req.FirstOrderOnly,
		MaxUsesPerUser:    req.MaxUsesPerUser,
		ValidFrom:         req.ValidFrom,
		ValidTo:           req.ValidTo,
		IsActive:          true,
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := oc.DB.Create(&offer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Offer %s created (%s)", offer.Code, offer.DiscountType)
	utils.RespondJSON(c, http.StatusCreated, "Offer created", offer)
}

func (oc *OfferController) UpdateOffer(c *gin.Context) {
	var offer models.Offer
	if err := oc.DB.First(&offer, c.Param("offer_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	offer.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	offer.Description = req.Description
	offer.DiscountType = req.DiscountType
	offer.DiscountValue = req.DiscountValue
	offer.MaxDiscountAmount = req.MaxDiscountAmount
	offer.MinOrderValue = req.MinOrderValue
	offer.ScopeType = req.ScopeType
	offer.ScopeID = req.ScopeID
	offer.FirstOrderOnly = req.FirstOrderOnly
	offer.MaxUsesPerUser = req.MaxUsesPerUser
	offer.ValidFrom = req.ValidFrom
	offer.ValidTo = req.ValidTo
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}

	if err := oc.DB.Save(&offer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Offer updated", offer)
}

func (oc *OfferController) DeleteOffer(c *gin.Context) {
	if err := oc.DB.Delete(&models.Offer{}, c.Param("offer_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Offer deleted", nil)
}
