package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/services"
	"github.com/feastly/ordering-app/utils"
)

type OrderController struct {
	DB     *gorm.DB
	engine *services.PricingEngine
	ledger *services.RedemptionLedger
}

func NewOrderController(db *gorm.DB) *OrderController {
	ledger := services.NewRedemptionLedger(db)
	return &OrderController{
		DB:     db,
		ledger: ledger,
		engine: services.NewPricingEngine(db,
			services.NewAvailabilityResolver(db),
			services.NewOfferEvaluator(db, ledger)),
	}
}

type createOrderBody struct {
	Items     []services.CartLine `json:"items" binding:"required,min=1,dive"`
	OfferCode string              `json:"offer_code"`
	AddressID uint                `json:"address_id" binding:"required"`
}

// CreateOrder -> price the cart and persist the confirmed order. Pricing,
// order rows and the offer usage increment share one transaction, so a lost
// race on the usage limit rolls the whole order back.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body createOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	userID := currentUserID(c)

	var address models.Address
	if err := oc.DB.Where("id = ? AND user_id = ?", body.AddressID, userID).First(&address).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("address not found"))
		return
	}

	priced, err := oc.engine.Price(services.PriceRequest{
		Lines:     body.Items,
		OfferCode: body.OfferCode,
		UserID:    userID,
		Area:      address.Area,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	order := models.Order{
		UserID:         userID,
		AddressID:      address.ID,
		Status:         services.OrderStatusConfirmed,
		Subtotal:       utils.AmountToFloat(priced.Subtotal),
		DiscountAmount: utils.AmountToFloat(priced.DiscountAmount),
		DeliveryFee:    utils.AmountToFloat(priced.DeliveryFee),
		TaxAmount:      utils.AmountToFloat(priced.TaxAmount),
		GrandTotal:     utils.AmountToFloat(priced.GrandTotal),
	}
	if priced.OfferCode != "" {
		code := priced.OfferCode
		order.OfferCode = &code
	}
	for _, line := range priced.Lines {
		item := models.OrderItem{
			ItemID:    line.ItemID,
			SizeID:    line.SizeID,
			SizeLabel: line.SizeLabel,
			Quantity:  line.Quantity,
			UnitPrice: utils.AmountToFloat(line.UnitPrice),
			Notes:     line.Notes,
		}
		for _, addOn := range line.AddOns {
			item.AddOns = append(item.AddOns, models.OrderItemAddOn{
				AddOnID:   addOn.AddOnID,
				Name:      addOn.Name,
				UnitPrice: utils.AmountToFloat(addOn.UnitPrice),
			})
		}
		order.OrderItems = append(order.OrderItems, item)
	}

	err = oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if priced.AppliedOffer != nil {
			if _, err := oc.ledger.RecordUsage(tx, priced.AppliedOffer, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, services.ErrUsageLimitReached) {
			respondServiceError(c, err)
			return
		}
		utils.ErrorLogger.Printf("order creation failed for user %d: %v", userID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order #%d created for user %d (total %s)", order.ID, userID, utils.FormatCurrency(priced.GrandTotal))
	utils.RespondJSON(c, http.StatusCreated, "Order created", gin.H{
		"order":     order,
		"breakdown": priced,
	})
}

// GetMyOrders -> the authenticated user's order history
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	var orders []models.Order
	err := oc.DB.Preload("OrderItems").Preload("OrderItems.AddOns").
		Where("user_id = ?", currentUserID(c)).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Your orders", orders)
}

// GetOrderByID -> detail of one order, owner or staff only
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	err := oc.DB.Preload("OrderItems").Preload("OrderItems.AddOns").Preload("Address").
		First(&order, c.Param("order_id")).Error
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	role, _ := c.Get("role")
	if order.UserID != currentUserID(c) && role != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// GetAllOrders -> admin list, optionally filtered by status
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	q := oc.DB.Preload("OrderItems").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// UpdateOrderStatus -> admin moves a confirmed order to completed/cancelled
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := oc.DB.First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if order.Status != services.OrderStatusConfirmed {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("order is not in confirmed status"))
		return
	}

	order.Status = req.Status
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}
