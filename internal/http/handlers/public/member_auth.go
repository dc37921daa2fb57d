package public

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/http/response"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberRegisterRequest 注册请求
type MemberRegisterRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	Password   string `json:"password" binding:"required"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// MemberRegister 会员注册
func (h *Handler) MemberRegister(c *gin.Context) {
	var req MemberRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	member, token, expiresAt, err := h.MemberService.Register(service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   req.Password,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "invalid email address", nil)
		case errors.Is(err, service.ErrEmailAlreadyExists):
			respondError(c, response.CodeBadRequest, "email already registered", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, "password does not meet requirements", nil)
		default:
			respondError(c, response.CodeInternal, "registration failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"member":     buildMemberView(member),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// MemberLoginRequest 登录请求
type MemberLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MemberLogin 会员登录
func (h *Handler) MemberLogin(c *gin.Context) {
	var req MemberLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	member, token, expiresAt, err := h.MemberService.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "invalid email or password", nil)
		case errors.Is(err, service.ErrMemberDisabled):
			respondError(c, response.CodeUnauthorized, "account disabled", nil)
		default:
			respondError(c, response.CodeInternal, "login failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"member":     buildMemberView(member),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// ForgotPasswordRequest 密码找回请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword 发起密码重置
// 无论邮箱是否存在均返回成功，避免账号枚举。
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.PasswordResetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, response.CodeInternal, "password reset request failed", err)
		return
	}

	response.SuccessWithMsg(c, "if the email exists, a reset link has been sent", nil)
}

// ResetPasswordRequest 密码重置请求
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ResetPassword 使用一次性令牌重置密码
func (h *Handler) ResetPassword(c *gin.Context) {
	token := c.Param("token")
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.PasswordResetService.ResetPassword(c.Request.Context(), token, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrResetTokenInvalid):
			respondError(c, response.CodeBadRequest, "reset link is invalid or has expired", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondError(c, response.CodeBadRequest, "password does not meet requirements", nil)
		default:
			respondError(c, response.CodeInternal, "password reset failed", err)
		}
		return
	}

	response.SuccessWithMsg(c, "password has been reset", nil)
}

// GetProfile 获取会员资料
func (h *Handler) GetProfile(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	member, err := h.MemberService.GetMemberByID(memberID)
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			respondError(c, response.CodeNotFound, "member not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "profile fetch failed", err)
		return
	}

	response.Success(c, gin.H{"member": buildMemberView(member)})
}

// UpdateProfileRequest 资料更新请求
type UpdateProfileRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Country    *string `json:"country"`
}

// UpdateProfile 更新会员资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	member, err := h.MemberService.UpdateProfile(memberID, service.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			respondError(c, response.CodeNotFound, "member not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "profile update failed", err)
		return
	}

	response.Success(c, gin.H{"member": buildMemberView(member)})
}

func buildMemberView(member *models.Member) gin.H {
	return gin.H{
		"id":          member.ID,
		"first_name":  member.FirstName,
		"last_name":   member.LastName,
		"email":       member.Email,
		"phone":       member.Phone,
		"address":     member.Address,
		"city":        member.City,
		"state":       member.State,
		"postal_code": member.PostalCode,
		"country":     member.Country,
		"is_admin":    member.IsAdmin,
		"status":      member.Status,
		"created_at":  member.CreatedAt,
	}
}
