package admin

import (
	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// StylistCreateRequest 发型师创建请求
type StylistCreateRequest struct {
	Name            string `json:"name" binding:"required"`
	Expertise       string `json:"expertise"`
	ExperienceYears int    `json:"experience_years"`
	ProfilePicture  string `json:"profile_picture"`
	Education       string `json:"education"`
	CareerInterest  string `json:"career_interest"`
	Description     string `json:"description"`
}

// StylistUpdateRequest 发型师更新请求（nil 表示不修改）
type StylistUpdateRequest struct {
	Name            *string `json:"name"`
	Expertise       *string `json:"expertise"`
	ExperienceYears *int    `json:"experience_years"`
	ProfilePicture  *string `json:"profile_picture"`
	Education       *string `json:"education"`
	CareerInterest  *string `json:"career_interest"`
	Description     *string `json:"description"`
}

var stylistErrorRules = []mappedHandlerError{
	{target: service.ErrStylistNotFound, code: response.CodeNotFound, msg: "stylist not found"},
	{target: service.ErrInvalidCatalogData, code: response.CodeBadRequest, msg: "invalid stylist data"},
}

// CreateStylist 创建发型师
func (h *Handler) CreateStylist(c *gin.Context) {
	var req StylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	stylist, err := h.StylistService.Create(service.StylistInput{
		Name:            req.Name,
		Expertise:       req.Expertise,
		ExperienceYears: req.ExperienceYears,
		ProfilePicture:  req.ProfilePicture,
		Education:       req.Education,
		CareerInterest:  req.CareerInterest,
		Description:     req.Description,
	})
	if err != nil {
		respondWithMappedError(c, err, stylistErrorRules, response.CodeInternal, "stylist save failed")
		return
	}

	response.Success(c, gin.H{"stylist": stylist})
}

// UpdateStylist 更新发型师
func (h *Handler) UpdateStylist(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid stylist id", nil)
		return
	}
	var req StylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	stylist, err := h.StylistService.Update(id, service.StylistUpdateInput{
		Name:            req.Name,
		Expertise:       req.Expertise,
		ExperienceYears: req.ExperienceYears,
		ProfilePicture:  req.ProfilePicture,
		Education:       req.Education,
		CareerInterest:  req.CareerInterest,
		Description:     req.Description,
	})
	if err != nil {
		respondWithMappedError(c, err, stylistErrorRules, response.CodeInternal, "stylist save failed")
		return
	}

	response.Success(c, gin.H{"stylist": stylist})
}

// DeleteStylist 删除发型师
func (h *Handler) DeleteStylist(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid stylist id", nil)
		return
	}

	if err := h.StylistService.Delete(id); err != nil {
		respondWithMappedError(c, err, stylistErrorRules, response.CodeInternal, "stylist delete failed")
		return
	}

	response.SuccessWithMsg(c, "stylist deleted", nil)
}
