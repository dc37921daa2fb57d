package admin

import (
	"errors"
	"strings"

	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"
	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/repository"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListMembers 会员列表
func (h *Handler) ListMembers(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)
	filter := repository.MemberListFilter{
		Keyword:  strings.TrimSpace(c.Query("keyword")),
		Status:   strings.TrimSpace(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	members, total, err := h.MemberService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "member fetch failed", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"members": members}, response.NewPagination(page, pageSize, total))
}

// DeleteMember 删除会员（连带清空其购物车）
func (h *Handler) DeleteMember(c *gin.Context) {
	id := handlershared.ParseUintParam(c, "id")
	if id == 0 {
		respondError(c, response.CodeBadRequest, "invalid member id", nil)
		return
	}

	if err := h.MemberService.Delete(id); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			respondError(c, response.CodeNotFound, "member not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "member delete failed", err)
		return
	}

	requestLog(c).Infow("admin_member_deleted", "member_id", id)
	response.SuccessWithMsg(c, "member deleted", nil)
}
