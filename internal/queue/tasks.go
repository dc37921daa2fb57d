package queue

import (
	"encoding/json"

	"github.com/timeless-style/salon-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPasswordResetEmail 密码重置邮件任务
	TaskPasswordResetEmail = constants.TaskPasswordResetEmail
	// TaskPasswordResetConfirmation 密码重置成功通知任务
	TaskPasswordResetConfirmation = constants.TaskPasswordResetConfirmation
	// TaskAppointmentConfirmation 预约确认邮件任务
	TaskAppointmentConfirmation = constants.TaskAppointmentConfirmation
)

// PasswordResetEmailPayload 密码重置邮件任务载荷
type PasswordResetEmailPayload struct {
	MemberID  uint   `json:"member_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ResetLink string `json:"reset_link"`
}

// PasswordResetConfirmationPayload 密码重置成功通知任务载荷
type PasswordResetConfirmationPayload struct {
	MemberID uint   `json:"member_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// AppointmentConfirmationPayload 预约确认邮件任务载荷
type AppointmentConfirmationPayload struct {
	AppointmentID uint `json:"appointment_id"`
}

// NewPasswordResetEmailTask 创建密码重置邮件任务
func NewPasswordResetEmailTask(payload PasswordResetEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPasswordResetEmail, body), nil
}

// NewPasswordResetConfirmationTask 创建密码重置成功通知任务
func NewPasswordResetConfirmationTask(payload PasswordResetConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPasswordResetConfirmation, body), nil
}

// NewAppointmentConfirmationTask 创建预约确认邮件任务
func NewAppointmentConfirmationTask(payload AppointmentConfirmationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAppointmentConfirmation, body), nil
}
