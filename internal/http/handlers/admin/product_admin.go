package admin

import (
	"strings"

	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductCreateRequest 商品创建请求
type ProductCreateRequest struct {
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	Price         models.Money `json:"price" binding:"required"`
	Category      string       `json:"category"`
	StockQuantity int          `json:"stock_quantity"`
	ImageURL      string       `json:"image_url"`
}

// ProductUpdateRequest 商品更新请求（nil 表示不修改）
type ProductUpdateRequest struct {
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Price         *models.Money `json:"price"`
	Category      *string       `json:"category"`
	StockQuantity *int          `json:"stock_quantity"`
	ImageURL      *string       `json:"image_url"`
	IsActive      *bool         `json:"is_active"`
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInvalidCatalogData, code: response.CodeBadRequest, msg: "invalid product data"},
}

// ListProducts 商品列表（含下架）
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	filter := repository.ProductListFilter{
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Category: strings.TrimSpace(c.Query("category")),
		Page:     page,
		PageSize: pageSize,
	}

	products, total, err := h.ProductService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"products": products}, response.NewPagination(page, pageSize, total))
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.ProductService.Create(service.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product save failed")
		return
	}

	response.Success(c, gin.H{"product": product})
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	product, err := h.ProductService.Update(id, service.ProductUpdateInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product save failed")
		return
	}

	response.Success(c, gin.H{"product": product})
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product delete failed")
		return
	}

	response.SuccessWithMsg(c, "product deleted", nil)
}
