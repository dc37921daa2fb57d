package service

import (
	"strings"
	"time"

	"github.com/timeless-style/salon-api/internal/constants"
	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/queue"
	"github.com/timeless-style/salon-api/internal/repository"
)

// AppointmentInput 预约创建输入
type AppointmentInput struct {
	MemberID  uint
	StylistID uint
	ServiceID uint
	Date      time.Time
	Notes     string
}

// AppointmentUpdateInput 预约更新输入（nil 表示不修改）
type AppointmentUpdateInput struct {
	Date   *time.Time
	Status *string
	Notes  *string
}

// AppointmentService 预约服务
type AppointmentService struct {
	appointmentRepo repository.AppointmentRepository
	stylistRepo     repository.StylistRepository
	serviceRepo     repository.SalonServiceRepository
	memberRepo      repository.MemberRepository
	emailService    *EmailService
	queueClient     *queue.Client
}

// NewAppointmentService 创建预约服务
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	stylistRepo repository.StylistRepository,
	serviceRepo repository.SalonServiceRepository,
	memberRepo repository.MemberRepository,
	emailService *EmailService,
	queueClient *queue.Client,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		stylistRepo:     stylistRepo,
		serviceRepo:     serviceRepo,
		memberRepo:      memberRepo,
		emailService:    emailService,
		queueClient:     queueClient,
	}
}

// Create 创建预约
func (s *AppointmentService) Create(input AppointmentInput) (*models.Appointment, error) {
	if input.MemberID == 0 || input.StylistID == 0 || input.ServiceID == 0 {
		return nil, ErrInvalidAppointmentData
	}
	if !input.Date.After(time.Now()) {
		return nil, ErrAppointmentInPast
	}

	stylist, err := s.stylistRepo.GetByID(input.StylistID)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, ErrStylistNotFound
	}
	salonService, err := s.serviceRepo.GetByID(input.ServiceID)
	if err != nil {
		return nil, err
	}
	if salonService == nil {
		return nil, ErrSalonServiceNotFound
	}

	appointment := &models.Appointment{
		MemberID:        input.MemberID,
		StylistID:       input.StylistID,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.Date,
		Status:          constants.AppointmentStatusScheduled,
		Notes:           strings.TrimSpace(input.Notes),
	}
	if err := s.appointmentRepo.Create(appointment); err != nil {
		return nil, err
	}
	appointment.Stylist = stylist
	appointment.Service = salonService

	s.sendConfirmation(appointment, stylist, salonService)
	return appointment, nil
}

// sendConfirmation 发送预约确认邮件（失败不影响预约结果）
func (s *AppointmentService) sendConfirmation(appointment *models.Appointment, stylist *models.Stylist, salonService *models.SalonService) {
	if s.queueClient.Enabled() {
		payload := queue.AppointmentConfirmationPayload{AppointmentID: appointment.ID}
		if err := s.queueClient.EnqueueAppointmentConfirmation(payload); err != nil {
			logger.Warnw("appointment_confirmation_enqueue_failed", "appointment_id", appointment.ID, "error", err)
		}
		return
	}

	member, err := s.memberRepo.GetByID(appointment.MemberID)
	if err != nil || member == nil {
		logger.Warnw("appointment_confirmation_member_missing", "appointment_id", appointment.ID, "error", err)
		return
	}
	input := AppointmentEmailInput{
		MemberName:  member.FirstName,
		StylistName: stylist.Name,
		ServiceName: salonService.Name,
		Date:        appointment.AppointmentDate,
	}
	if err := s.emailService.SendAppointmentConfirmation(member.Email, input); err != nil {
		logger.Warnw("appointment_confirmation_send_failed", "appointment_id", appointment.ID, "error", err)
	}
}

// GetByID 获取预约（校验归属，管理员可跨会员）
func (s *AppointmentService) GetByID(id, memberID uint, isAdmin bool) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if !isAdmin && appointment.MemberID != memberID {
		return nil, ErrAppointmentForbidden
	}
	return appointment, nil
}

// ListMine 获取会员自己的预约
func (s *AppointmentService) ListMine(memberID uint) ([]models.Appointment, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}
	appointments, _, err := s.appointmentRepo.List(repository.AppointmentListFilter{MemberID: memberID})
	return appointments, err
}

// ListAll 获取全部预约（管理端）
func (s *AppointmentService) ListAll(filter repository.AppointmentListFilter) ([]models.Appointment, int64, error) {
	return s.appointmentRepo.List(filter)
}

// Update 更新预约（日期或状态）
func (s *AppointmentService) Update(id, memberID uint, isAdmin bool, input AppointmentUpdateInput) (*models.Appointment, error) {
	appointment, err := s.GetByID(id, memberID, isAdmin)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if !input.Date.After(time.Now()) {
			return nil, ErrAppointmentInPast
		}
		appointment.AppointmentDate = *input.Date
	}
	if input.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*input.Status))
		switch status {
		case constants.AppointmentStatusScheduled,
			constants.AppointmentStatusCompleted,
			constants.AppointmentStatusCanceled:
			appointment.Status = status
		default:
			return nil, ErrInvalidAppointmentData
		}
	}
	if input.Notes != nil {
		appointment.Notes = strings.TrimSpace(*input.Notes)
	}

	appointment.UpdatedAt = time.Now()
	if err := s.appointmentRepo.Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Delete 取消并删除预约
func (s *AppointmentService) Delete(id, memberID uint, isAdmin bool) error {
	if _, err := s.GetByID(id, memberID, isAdmin); err != nil {
		return err
	}
	return s.appointmentRepo.Delete(id)
}
