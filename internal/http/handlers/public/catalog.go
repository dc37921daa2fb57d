package public

import (
	"errors"
	"strings"

	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/repository"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表（仅上架商品）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	filter := repository.ProductListFilter{
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		Category:   strings.TrimSpace(c.Query("category")),
		OnlyActive: true,
		Page:       page,
		PageSize:   pageSize,
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.ProductService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.Success(c, gin.H{"product": product})
}

// ListSalonServices 服务项目列表
func (h *Handler) ListSalonServices(c *gin.Context) {
	services, err := h.SalonServiceService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "service fetch failed", err)
		return
	}
	response.Success(c, gin.H{"services": services})
}

// GetSalonService 服务项目详情
func (h *Handler) GetSalonService(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid service id", nil)
		return
	}

	salonService, err := h.SalonServiceService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrSalonServiceNotFound) {
			respondError(c, response.CodeNotFound, "service not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "service fetch failed", err)
		return
	}

	response.Success(c, gin.H{"service": salonService})
}

// ListStylists 发型师列表
func (h *Handler) ListStylists(c *gin.Context) {
	stylists, err := h.StylistService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "stylist fetch failed", err)
		return
	}
	response.Success(c, gin.H{"stylists": stylists})
}

// GetStylist 发型师详情
func (h *Handler) GetStylist(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid stylist id", nil)
		return
	}

	stylist, err := h.StylistService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrStylistNotFound) {
			respondError(c, response.CodeNotFound, "stylist not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "stylist fetch failed", err)
		return
	}

	response.Success(c, gin.H{"stylist": stylist})
}

// ListGalleryImages 作品集图片列表
func (h *Handler) ListGalleryImages(c *gin.Context) {
	images, err := h.GalleryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "gallery fetch failed", err)
		return
	}
	response.Success(c, gin.H{"images": images})
}
