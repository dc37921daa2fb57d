package constants

// 预约状态常量
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCanceled  = "canceled"
)

// 会员状态常量
const (
	MemberStatusActive   = "active"
	MemberStatusDisabled = "disabled"
)

// 队列常量
const (
	QueueDefault                  = "default"
	QueueMail                     = "mail"
	TaskPasswordResetEmail        = "member:password_reset_email"
	TaskPasswordResetConfirmation = "member:password_reset_confirmation"
	TaskAppointmentConfirmation   = "appointment:confirmation_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "salon"
)

// 密码重置令牌常量
const (
	ResetTokenKeyPrefix = "reset_token"
	ResetTokenBytes     = 32
)
