package admin

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadFile 文件上传
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "file missing", nil)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadFileTooLarge):
			respondError(c, response.CodeBadRequest, "file too large", nil)
		case errors.Is(err, service.ErrUploadTypeNotAllowed):
			respondError(c, response.CodeBadRequest, "file type not allowed", nil)
		case errors.Is(err, service.ErrUploadMissingFile):
			respondError(c, response.CodeBadRequest, "file missing", nil)
		default:
			respondError(c, response.CodeInternal, "upload failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
