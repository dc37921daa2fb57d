package public

import (
	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求，数量缺省为 1
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// UpdateCartItemRequest 购物车项数量更新请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrCartNotFound, code: response.CodeNotFound, msg: "cart not found"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductUnavailable, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must be positive"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	view, err := h.CartService.GetCart(memberID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}

	response.Success(c, gin.H{"cart": view.Cart, "items": view.Items})
}

// AddCartItem 加入购物车（已存在则累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	view, item, err := h.CartService.AddItem(memberID, req.ProductID, quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}

	response.SuccessWithMsg(c, "item added to cart", gin.H{"cart": view.Cart, "item": item, "items": view.Items})
}

// UpdateCartItem 更新购物车项数量（0 或负数视为移除）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	itemID := handlershared.ParseUintParam(c, "itemId")
	if itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	view, err := h.CartService.UpdateItemQuantity(memberID, itemID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}

	response.SuccessWithMsg(c, "cart updated", gin.H{"cart": view.Cart, "items": view.Items})
}

// RemoveCartItem 移除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	itemID := handlershared.ParseUintParam(c, "itemId")
	if itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return
	}

	view, err := h.CartService.RemoveItem(memberID, itemID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}

	response.SuccessWithMsg(c, "item removed from cart", gin.H{"cart": view.Cart, "items": view.Items})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	view, err := h.CartService.ClearCart(memberID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart update failed")
		return
	}

	response.SuccessWithMsg(c, "cart cleared", gin.H{"cart": view.Cart, "items": view.Items})
}
