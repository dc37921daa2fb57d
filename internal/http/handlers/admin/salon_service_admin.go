package admin

import (
	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SalonServiceCreateRequest 服务项目创建请求
type SalonServiceCreateRequest struct {
	Name        string       `json:"name" binding:"required"`
	Description string       `json:"description"`
	Price       models.Money `json:"price" binding:"required"`
}

// SalonServiceUpdateRequest 服务项目更新请求（nil 表示不修改）
type SalonServiceUpdateRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *models.Money `json:"price"`
}

var salonServiceErrorRules = []mappedHandlerError{
	{target: service.ErrSalonServiceNotFound, code: response.CodeNotFound, msg: "service not found"},
	{target: service.ErrInvalidCatalogData, code: response.CodeBadRequest, msg: "invalid service data"},
}

// CreateSalonService 创建服务项目
func (h *Handler) CreateSalonService(c *gin.Context) {
	var req SalonServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	salonService, err := h.SalonServiceService.Create(service.SalonServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondWithMappedError(c, err, salonServiceErrorRules, response.CodeInternal, "service save failed")
		return
	}

	response.Success(c, gin.H{"service": salonService})
}

// UpdateSalonService 更新服务项目
func (h *Handler) UpdateSalonService(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid service id", nil)
		return
	}
	var req SalonServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	salonService, err := h.SalonServiceService.Update(id, service.SalonServiceUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		respondWithMappedError(c, err, salonServiceErrorRules, response.CodeInternal, "service save failed")
		return
	}

	response.Success(c, gin.H{"service": salonService})
}

// DeleteSalonService 删除服务项目
func (h *Handler) DeleteSalonService(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid service id", nil)
		return
	}

	if err := h.SalonServiceService.Delete(id); err != nil {
		respondWithMappedError(c, err, salonServiceErrorRules, response.CodeInternal, "service delete failed")
		return
	}

	response.SuccessWithMsg(c, "service deleted", nil)
}
