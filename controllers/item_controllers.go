package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/utils"
)

type ItemController struct {
	DB *gorm.DB
}

func NewItemController(db *gorm.DB) *ItemController {
	return &ItemController{DB: db}
}

// GetMenu -> the customer-facing menu: active items with sizes and add-ons
func (ic *ItemController) GetMenu(c *gin.Context) {
	var items []models.Item
	q := ic.DB.Preload("Category").Preload("Sizes").Preload("AddOns").
		Where("is_active = ?", true)
	if category := c.Query("category_id"); category != "" {
		q = q.Where("category_id = ?", category)
	}
	if err := q.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu", items)
}

func (ic *ItemController) GetItemByID(c *gin.Context) {
	var item models.Item
	if err := ic.DB.Preload("Category").Preload("Sizes").Preload("AddOns").
		First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item detail", item)
}

type sizeInput struct {
	Label string  `json:"label" binding:"required"`
	Price float64 `json:"price" binding:"required,gte=0"`
}

type addOnInput struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gte=0"`
}

// CreateItem -> admin creates an item with its sizes and add-ons in one call
func (ic *ItemController) CreateItem(c *gin.Context) {
	type request struct {
		CategoryID  uint         `json:"category_id" binding:"required"`
		Name        string       `json:"name" binding:"required"`
		Description string       `json:"description"`
		IsVeg       bool         `json:"is_veg"`
		Sizes       []sizeInput  `json:"sizes" binding:"required,min=1"`
		AddOns      []addOnInput `json:"add_ons"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.Item{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		IsVeg:       req.IsVeg,
		IsActive:    true,
	}
	for _, s := range req.Sizes {
		item.Sizes = append(item.Sizes, models.ItemSize{Label: s.Label, Price: s.Price})
	}
	for _, a := range req.AddOns {
		item.AddOns = append(item.AddOns, models.AddOn{Name: a.Name, Price: a.Price})
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Item created", item)
}

func (ic *ItemController) UpdateItem(c *gin.Context) {
	var item models.Item
	if err := ic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type request struct {
		CategoryID  *uint   `json:"category_id"`
		Name        *string `json:"name"`
		Description *string `json:"description"`
		IsVeg       *bool   `json:"is_veg"`
		IsActive    *bool   `json:"is_active"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.IsVeg != nil {
		item.IsVeg = *req.IsVeg
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item updated", item)
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	if err := ic.DB.Delete(&models.Item{}, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Item deleted", nil)
}

// AddSize -> add a priced size variant to an existing item
func (ic *ItemController) AddSize(c *gin.Context) {
	var item models.Item
	if err := ic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req sizeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	size := models.ItemSize{ItemID: item.ID, Label: req.Label, Price: req.Price}
	if err := ic.DB.Create(&size).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Size added", size)
}

// AddAddOn -> add an add-on to an existing item
func (ic *ItemController) AddAddOn(c *gin.Context) {
	var item models.Item
	if err := ic.DB.First(&item, c.Param("item_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req addOnInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	addOn := models.AddOn{ItemID: item.ID, Name: req.Name, Price: req.Price}
	if err := ic.DB.Create(&addOn).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Add-on added", addOn)
}
