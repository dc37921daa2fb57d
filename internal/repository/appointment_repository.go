package repository

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/models"

	"gorm.io/gorm"
)

// AppointmentListFilter 预约列表查询条件
type AppointmentListFilter struct {
	MemberID  uint
	StylistID uint
	Status    string
	Page      int
	PageSize  int
}

// AppointmentRepository 预约数据访问接口
type AppointmentRepository interface {
	GetByID(id uint) (*models.Appointment, error)
	Create(appointment *models.Appointment) error
	Update(appointment *models.Appointment) error
	List(filter AppointmentListFilter) ([]models.Appointment, int64, error)
	Delete(id uint) error
}

// GormAppointmentRepository GORM 实现
type GormAppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository 创建预约仓库
func NewAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// GetByID 根据 ID 获取预约（带关联）
func (r *GormAppointmentRepository) GetByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Stylist").Preload("Service").First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// Create 创建预约
func (r *GormAppointmentRepository) Create(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// Update 更新预约
func (r *GormAppointmentRepository) Update(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// List 预约列表
func (r *GormAppointmentRepository) List(filter AppointmentListFilter) ([]models.Appointment, int64, error) {
	query := r.db.Model(&models.Appointment{})

	if filter.MemberID > 0 {
		query = query.Where("member_id = ?", filter.MemberID)
	}
	if filter.StylistID > 0 {
		query = query.Where("stylist_id = ?", filter.StylistID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var appointments []models.Appointment
	err := query.Preload("Stylist").Preload("Service").
		Order("appointment_date DESC").Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// Delete 删除预约（软删除）
func (r *GormAppointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}
