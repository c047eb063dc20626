package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/services"
	"github.com/feastly/ordering-app/utils"
)

type PricingController struct {
	DB     *gorm.DB
	engine *services.PricingEngine
}

func NewPricingController(db *gorm.DB) *PricingController {
	ledger := services.NewRedemptionLedger(db)
	return &PricingController{
		DB: db,
		engine: services.NewPricingEngine(db,
			services.NewAvailabilityResolver(db),
			services.NewOfferEvaluator(db, ledger)),
	}
}

type priceRequestBody struct {
	Items     []services.CartLine `json:"items" binding:"required,min=1,dive"`
	OfferCode string              `json:"offer_code"`
	AddressID uint                `json:"address_id"`
	Area      string              `json:"area"`
}

// resolveArea picks the delivery area: an address id owned by the user wins
// over a free-form area string.
func resolveArea(db *gorm.DB, userID uint, body *priceRequestBody) (string, error) {
	if body.AddressID == 0 {
		return body.Area, nil
	}
	var address models.Address
	if err := db.Where("id = ? AND user_id = ?", body.AddressID, userID).First(&address).Error; err != nil {
		return "", err
	}
	return address.Area, nil
}

// PriceOrder -> dry-run preview of the full price breakdown. No writes:
// previewing with an offer code never consumes redemption quota.
func (pc *PricingController) PriceOrder(c *gin.Context) {
	var body priceRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUserID(c)
	area, err := resolveArea(pc.DB, userID, &body)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	priced, err := pc.engine.Price(services.PriceRequest{
		Lines:     body.Items,
		OfferCode: body.OfferCode,
		UserID:    userID,
		Area:      area,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Price breakdown", priced)
}
