package admin

import (
	"strings"

	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListAppointments 全部预约列表
func (h *Handler) ListAppointments(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	filter := repository.AppointmentListFilter{
		MemberID:  handlershared.ParseUintQuery(c, "member_id"),
		StylistID: handlershared.ParseUintQuery(c, "stylist_id"),
		Status:    strings.TrimSpace(c.Query("status")),
		Page:      page,
		PageSize:  pageSize,
	}

	appointments, total, err := h.AppointmentService.ListAll(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "appointment fetch failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"appointments": appointments}, response.NewPagination(page, pageSize, total))
}
