package service

import "errors"

// 会员相关错误
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMemberNotFound     = errors.New("member not found")
	ErrMemberDisabled     = errors.New("member disabled")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password does not meet policy")
)

// 密码重置相关错误
var (
	ErrResetTokenInvalid = errors.New("reset token invalid or expired")
)

// 目录相关错误
var (
	ErrProductNotFound      = errors.New("product not found")
	ErrSalonServiceNotFound = errors.New("salon service not found")
	ErrStylistNotFound      = errors.New("stylist not found")
	ErrGalleryImageNotFound = errors.New("gallery image not found")
	ErrInvalidCatalogData   = errors.New("invalid catalog data")
)

// 购物车相关错误
var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrProductUnavailable = errors.New("product unavailable")
)

// 预约相关错误
var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrAppointmentInPast      = errors.New("appointment date must be in the future")
	ErrAppointmentForbidden   = errors.New("appointment belongs to another member")
	ErrInvalidAppointmentData = errors.New("invalid appointment data")
)

// 邮件相关错误
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)

// 上传相关错误
var (
	ErrUploadFileTooLarge   = errors.New("upload file too large")
	ErrUploadTypeNotAllowed = errors.New("upload file type not allowed")
	ErrUploadMissingFile    = errors.New("upload file missing")
)
