package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/feastly/ordering-app/models"
	"github.com/feastly/ordering-app/services"
	"github.com/feastly/ordering-app/utils"
)

type AvailabilityController struct {
	DB       *gorm.DB
	resolver *services.AvailabilityResolver
}

func NewAvailabilityController(db *gorm.DB) *AvailabilityController {
	return &AvailabilityController{
		DB:       db,
		resolver: services.NewAvailabilityResolver(db),
	}
}

// GetAvailability -> public check whether the store takes orders right now.
// ?area= narrows the delivery fee/time to a served area.
func (avc *AvailabilityController) GetAvailability(c *gin.Context) {
	decision, err := avc.resolver.Resolve(time.Time{}, c.Query("area"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Availability", decision)
}

// SetClosure -> admin manually closes or reopens the store. Appends a row;
// the latest row wins.
func (avc *AvailabilityController) SetClosure(c *gin.Context) {
	var req struct {
		IsClosed *bool  `json:"is_closed" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if *req.IsClosed && req.Reason == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("reason is required when closing the store"))
		return
	}

	closure := models.StoreClosure{
		IsClosed: *req.IsClosed,
		Reason:   req.Reason,
		ClosedBy: currentUserID(c),
	}
	if err := avc.DB.Create(&closure).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if closure.IsClosed {
		utils.InfoLogger.Printf("Store manually closed by user %d: %s", closure.ClosedBy, closure.Reason)
	} else {
		utils.InfoLogger.Printf("Store reopened by user %d", closure.ClosedBy)
	}
	utils.RespondJSON(c, http.StatusCreated, "Closure state updated", closure)
}

func (avc *AvailabilityController) GetSchedule(c *gin.Context) {
	var days []models.ScheduleDay
	if err := avc.DB.Order("weekday asc").Find(&days).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Weekly schedule", days)
}

// UpsertScheduleDay -> admin sets hours for one day of the week
func (avc *AvailabilityController) UpsertScheduleDay(c *gin.Context) {
	var req struct {
		Weekday   *int   `json:"weekday" binding:"required,gte=0,lte=6"`
		OpenTime  string `json:"open_time"`
		CloseTime string `json:"close_time"`
		IsClosed  bool   `json:"is_closed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !req.IsClosed && (req.OpenTime == "" || req.CloseTime == "") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("open_time and close_time are required for an open day"))
		return
	}

	var day models.ScheduleDay
	err := avc.DB.Where("weekday = ?", *req.Weekday).First(&day).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	day.Weekday = *req.Weekday
	day.OpenTime = req.OpenTime
	day.CloseTime = req.CloseTime
	day.IsClosed = req.IsClosed

	if err := avc.DB.Save(&day).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Schedule day saved", day)
}

func (avc *AvailabilityController) GetHolidays(c *gin.Context) {
	var holidays []models.Holiday
	if err := avc.DB.Order("date asc").Find(&holidays).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Holidays", holidays)
}

func (avc *AvailabilityController) CreateHoliday(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("date must be YYYY-MM-DD"))
		return
	}

	holiday := models.Holiday{Name: req.Name, Date: date}
	if err := avc.DB.Create(&holiday).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Holiday created", holiday)
}

func (avc *AvailabilityController) DeleteHoliday(c *gin.Context) {
	if err := avc.DB.Delete(&models.Holiday{}, c.Param("holiday_id")).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Holiday deleted", nil)
}
