package admin

import (
	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// GalleryCreateRequest 作品集图片创建请求
type GalleryCreateRequest struct {
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

// GalleryUpdateRequest 作品集图片更新请求
type GalleryUpdateRequest struct {
	Caption string `json:"caption"`
}

var galleryErrorRules = []mappedHandlerError{
	{target: service.ErrGalleryImageNotFound, code: response.CodeNotFound, msg: "gallery image not found"},
	{target: service.ErrInvalidCatalogData, code: response.CodeBadRequest, msg: "invalid gallery data"},
}

// CreateGalleryImage 新增作品集图片
func (h *Handler) CreateGalleryImage(c *gin.Context) {
	var req GalleryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.GalleryService.Create(req.ImageURL, req.Caption)
	if err != nil {
		respondWithMappedError(c, err, galleryErrorRules, response.CodeInternal, "gallery save failed")
		return
	}

	response.Success(c, gin.H{"image": image})
}

// UpdateGalleryImage 更新作品集图片说明
func (h *Handler) UpdateGalleryImage(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid gallery image id", nil)
		return
	}
	var req GalleryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	image, err := h.GalleryService.UpdateCaption(id, req.Caption)
	if err != nil {
		respondWithMappedError(c, err, galleryErrorRules, response.CodeInternal, "gallery save failed")
		return
	}

	response.Success(c, gin.H{"image": image})
}

// DeleteGalleryImage 删除作品集图片
func (h *Handler) DeleteGalleryImage(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid gallery image id", nil)
		return
	}

	if err := h.GalleryService.Delete(id); err != nil {
		respondWithMappedError(c, err, galleryErrorRules, response.CodeInternal, "gallery delete failed")
		return
	}

	response.SuccessWithMsg(c, "gallery image deleted", nil)
}
