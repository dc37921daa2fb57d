package public

import (
	"time"

	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateAppointmentRequest 预约创建请求
type CreateAppointmentRequest struct {
	StylistID uint      `json:"stylist_id" binding:"required"`
	ServiceID uint      `json:"service_id" binding:"required"`
	Date      time.Time `json:"date" binding:"required"`
	Notes     string    `json:"notes"`
}

// UpdateAppointmentRequest 预约更新请求
type UpdateAppointmentRequest struct {
	Date   *time.Time `json:"date"`
	Status *string    `json:"status"`
	Notes  *string    `json:"notes"`
}

var appointmentErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidAppointmentData, code: response.CodeBadRequest, msg: "invalid appointment data"},
	{target: service.ErrAppointmentInPast, code: response.CodeBadRequest, msg: "appointment date must be in the future"},
	{target: service.ErrStylistNotFound, code: response.CodeNotFound, msg: "stylist not found"},
	{target: service.ErrSalonServiceNotFound, code: response.CodeNotFound, msg: "service not found"},
	{target: service.ErrAppointmentNotFound, code: response.CodeNotFound, msg: "appointment not found"},
	{target: service.ErrAppointmentForbidden, code: response.CodeForbidden, msg: "appointment belongs to another member"},
}

// CreateAppointment 创建预约
func (h *Handler) CreateAppointment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	appointment, err := h.AppointmentService.Create(service.AppointmentInput{
		MemberID:  memberID,
		StylistID: req.StylistID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Notes:     req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, appointmentErrorRules, response.CodeInternal, "appointment create failed")
		return
	}

	response.SuccessWithMsg(c, "appointment booked", gin.H{"appointment": appointment})
}

// ListMyAppointments 我的预约列表
func (h *Handler) ListMyAppointments(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	appointments, err := h.AppointmentService.ListMine(memberID)
	if err != nil {
		respondError(c, response.CodeInternal, "appointment fetch failed", err)
		return
	}

	response.Success(c, gin.H{"appointments": appointments})
}

// GetAppointment 预约详情
func (h *Handler) GetAppointment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid appointment id", nil)
		return
	}

	appointment, err := h.AppointmentService.GetByID(id, memberID, isAdmin(c))
	if err != nil {
		respondWithMappedError(c, err, appointmentErrorRules, response.CodeInternal, "appointment fetch failed")
		return
	}

	response.Success(c, gin.H{"appointment": appointment})
}

// UpdateAppointment 更新预约（改期、取消）
func (h *Handler) UpdateAppointment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid appointment id", nil)
		return
	}
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	appointment, err := h.AppointmentService.Update(id, memberID, isAdmin(c), service.AppointmentUpdateInput{
		Date:   req.Date,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		respondWithMappedError(c, err, appointmentErrorRules, response.CodeInternal, "appointment update failed")
		return
	}

	response.SuccessWithMsg(c, "appointment updated", gin.H{"appointment": appointment})
}

// DeleteAppointment 删除预约
func (h *Handler) DeleteAppointment(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid appointment id", nil)
		return
	}

	if err := h.AppointmentService.Delete(id, memberID, isAdmin(c)); err != nil {
		respondWithMappedError(c, err, appointmentErrorRules, response.CodeInternal, "appointment delete failed")
		return
	}

	response.SuccessWithMsg(c, "appointment deleted", nil)
}
