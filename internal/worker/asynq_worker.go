package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/provider"
	"github.com/timeless-style/salon-api/internal/queue"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPasswordResetEmail, c.handlePasswordResetEmail)
	mux.HandleFunc(queue.TaskPasswordResetConfirmation, c.handlePasswordResetConfirmation)
	mux.HandleFunc(queue.TaskAppointmentConfirmation, c.handleAppointmentConfirmation)
}

func (c *Consumer) handlePasswordResetEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.PasswordResetEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_password_reset_email_unmarshal_failed", "error", err)
		return err
	}
	receiver := strings.TrimSpace(payload.Email)
	if receiver == "" || payload.ResetLink == "" {
		logger.Debugw("worker_password_reset_email_skip_invalid_payload", "member_id", payload.MemberID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_password_reset_email_skip_email_service_nil", "member_id", payload.MemberID)
		return nil
	}
	if err := c.EmailService.SendPasswordResetEmail(receiver, payload.Name, payload.ResetLink); err != nil {
		logger.Warnw("worker_password_reset_email_send_failed", "member_id", payload.MemberID, "error", err)
		return err
	}
	logger.Infow("worker_password_reset_email_sent", "member_id", payload.MemberID)
	return nil
}

func (c *Consumer) handlePasswordResetConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.PasswordResetConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_password_reset_confirmation_unmarshal_failed", "error", err)
		return err
	}
	receiver := strings.TrimSpace(payload.Email)
	if receiver == "" {
		logger.Debugw("worker_password_reset_confirmation_skip_empty_receiver", "member_id", payload.MemberID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_password_reset_confirmation_skip_email_service_nil", "member_id", payload.MemberID)
		return nil
	}
	if err := c.EmailService.SendPasswordResetConfirmation(receiver, payload.Name); err != nil {
		logger.Warnw("worker_password_reset_confirmation_send_failed", "member_id", payload.MemberID, "error", err)
		return err
	}
	logger.Infow("worker_password_reset_confirmation_sent", "member_id", payload.MemberID)
	return nil
}

func (c *Consumer) handleAppointmentConfirmation(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.AppointmentConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_appointment_confirmation_unmarshal_failed", "error", err)
		return err
	}
	if payload.AppointmentID == 0 {
		logger.Debugw("worker_appointment_confirmation_skip_invalid_payload")
		return nil
	}
	appointment, err := c.AppointmentRepo.GetByID(payload.AppointmentID)
	if err != nil {
		logger.Warnw("worker_appointment_confirmation_fetch_failed", "appointment_id", payload.AppointmentID, "error", err)
		return err
	}
	if appointment == nil {
		logger.Debugw("worker_appointment_confirmation_skip_not_found", "appointment_id", payload.AppointmentID)
		return nil
	}
	member, err := c.MemberRepo.GetByID(appointment.MemberID)
	if err != nil {
		logger.Warnw("worker_appointment_confirmation_fetch_member_failed", "appointment_id", appointment.ID, "member_id", appointment.MemberID, "error", err)
		return err
	}
	if member == nil || strings.TrimSpace(member.Email) == "" {
		logger.Debugw("worker_appointment_confirmation_skip_empty_receiver", "appointment_id", appointment.ID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_appointment_confirmation_skip_email_service_nil", "appointment_id", appointment.ID)
		return nil
	}
	input := buildAppointmentEmailInput(member.FirstName, appointment)
	if err := c.EmailService.SendAppointmentConfirmation(member.Email, input); err != nil {
		logger.Warnw("worker_appointment_confirmation_send_failed", "appointment_id", appointment.ID, "error", err)
		return err
	}
	logger.Infow("worker_appointment_confirmation_sent", "appointment_id", appointment.ID, "member_id", member.ID)
	return nil
}

func buildAppointmentEmailInput(memberName string, appointment *models.Appointment) service.AppointmentEmailInput {
	input := service.AppointmentEmailInput{
		MemberName: strings.TrimSpace(memberName),
		Date:       appointment.AppointmentDate,
	}
	if appointment.Stylist != nil {
		input.StylistName = appointment.Stylist.Name
	}
	if appointment.Service != nil {
		input.ServiceName = appointment.Service.Name
	}
	return input
}
