package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

type workShiftHandler struct {
	workShiftService portssvc.WorkShiftSvcFacade
}

// registerWorkShiftRoutes registers routes related to work shifts.
func registerWorkShiftRoutes(rg *gin.RouterGroup, workShiftService portssvc.WorkShiftSvcFacade) {
	h := &workShiftHandler{workShiftService: workShiftService}

	shifts := rg.Group("/work-shifts")
	{
		shifts.GET("", h.listShifts)
		shifts.POST("", h.createShift)
		shifts.GET("/stats", h.getShiftStats)
		shifts.GET("/calendar/:year/:month", h.getCalendar)
		shifts.GET("/:id", h.getShift)
		shifts.PUT("/:id", h.updateShift)
		shifts.DELETE("/:id", h.deleteShift)
	}
}

// listShifts godoc
// @Summary List work shifts
// @Tags work-shifts
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   status query string false "Shift status" Enums(planned, completed)
// @Param   limit query int false "Page size" default(100)
// @Param   offset query int false "Rows to skip" default(0)
// @Success 200 {array} dto.WorkShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list work shifts"
// @Security BearerAuth
// @Router /work-shifts [get]
func (h *workShiftHandler) listShifts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListWorkShiftsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	shifts, err := h.workShiftService.ListShifts(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list work shifts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkShiftResponse(shifts))
}

// createShift godoc
// @Summary Create a work shift
// @Tags work-shifts
// @Accept  json
// @Produce  json
// @Param   shift body dto.CreateWorkShiftRequest true "Shift details"
// @Success 201 {object} dto.WorkShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create work shift"
// @Security BearerAuth
// @Router /work-shifts [post]
func (h *workShiftHandler) createShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	shift, err := h.workShiftService.CreateShift(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create work shift")
		return
	}

	logger.Info("Work shift created successfully", slog.Int64("shift_id", shift.ShiftID))
	c.JSON(http.StatusCreated, dto.ToWorkShiftResponse(shift))
}

// getShift godoc
// @Summary Get a work shift by ID
// @Tags work-shifts
// @Produce  json
// @Param   id path int true "Shift ID"
// @Success 200 {object} dto.WorkShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Work shift not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve work shift"
// @Security BearerAuth
// @Router /work-shifts/{id} [get]
func (h *workShiftHandler) getShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	shiftID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	shift, err := h.workShiftService.GetShiftByID(c.Request.Context(), userID, shiftID)
	if err != nil {
		respondError(c, logger.With(slog.Int64("shift_id", shiftID)), err, "Failed to retrieve work shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkShiftResponse(shift))
}

// updateShift godoc
// @Summary Update a work shift
// @Tags work-shifts
// @Accept  json
// @Produce  json
// @Param   id path int true "Shift ID"
// @Param   shift body dto.UpdateWorkShiftRequest true "Fields to update"
// @Success 200 {object} dto.WorkShiftResponse
// @Failure 400 {object} ErrorResponse "Invalid input or no fields to update"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Work shift not found"
// @Failure 500 {object} ErrorResponse "Failed to update work shift"
// @Security BearerAuth
// @Router /work-shifts/{id} [put]
func (h *workShiftHandler) updateShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	shiftID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "request format", err)
		return
	}

	shift, err := h.workShiftService.UpdateShift(c.Request.Context(), userID, shiftID, req)
	if err != nil {
		respondError(c, logger.With(slog.Int64("shift_id", shiftID)), err, "Failed to update work shift")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkShiftResponse(shift))
}

// deleteShift godoc
// @Summary Delete a work shift
// @Tags work-shifts
// @Param   id path int true "Shift ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Work shift not found"
// @Failure 500 {object} ErrorResponse "Failed to delete work shift"
// @Security BearerAuth
// @Router /work-shifts/{id} [delete]
func (h *workShiftHandler) deleteShift(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}
	shiftID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	if err := h.workShiftService.DeleteShift(c.Request.Context(), userID, shiftID); err != nil {
		respondError(c, logger.With(slog.Int64("shift_id", shiftID)), err, "Failed to delete work shift")
		return
	}

	c.Status(http.StatusNoContent)
}

// getShiftStats godoc
// @Summary Aggregated shift earnings
// @Tags work-shifts
// @Produce  json
// @Param   start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   status query string false "Shift status" Enums(planned, completed)
// @Success 200 {object} domain.ShiftStats
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute shift statistics"
// @Security BearerAuth
// @Router /work-shifts/stats [get]
func (h *workShiftHandler) getShiftStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	var params dto.ShiftStatsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "query parameters", err)
		return
	}

	stats, err := h.workShiftService.GetShiftStats(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute shift statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getCalendar godoc
// @Summary Shifts of one month
// @Tags work-shifts
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.CalendarResponse
// @Failure 400 {object} ErrorResponse "Invalid year or month"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load calendar"
// @Security BearerAuth
// @Router /work-shifts/calendar/{year}/{month} [get]
func (h *workShiftHandler) getCalendar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	if errYear != nil || errMonth != nil {
		logger.Warn("Invalid calendar parameters", slog.String("year", c.Param("year")), slog.String("month", c.Param("month")))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid year or month"})
		return
	}

	calendar, err := h.workShiftService.GetCalendar(c.Request.Context(), userID, year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to load calendar")
		return
	}

	c.JSON(http.StatusOK, calendar)
}
