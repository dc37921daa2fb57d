package repository

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/models"

	"gorm.io/gorm"
)

// SalonServiceRepository 服务项目数据访问接口
type SalonServiceRepository interface {
	GetByID(id uint) (*models.SalonService, error)
	Create(service *models.SalonService) error
	Update(service *models.SalonService) error
	List() ([]models.SalonService, error)
	Delete(id uint) error
}

// GormSalonServiceRepository GORM 实现
type GormSalonServiceRepository struct {
	db *gorm.DB
}

// NewSalonServiceRepository 创建服务项目仓库
func NewSalonServiceRepository(db *gorm.DB) *GormSalonServiceRepository {
	return &GormSalonServiceRepository{db: db}
}

// GetByID 根据 ID 获取服务项目
func (r *GormSalonServiceRepository) GetByID(id uint) (*models.SalonService, error) {
	var service models.SalonService
	if err := r.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

// Create 创建服务项目
func (r *GormSalonServiceRepository) Create(service *models.SalonService) error {
	return r.db.Create(service).Error
}

// Update 更新服务项目
func (r *GormSalonServiceRepository) Update(service *models.SalonService) error {
	return r.db.Save(service).Error
}

// List 服务项目列表
func (r *GormSalonServiceRepository) List() ([]models.SalonService, error) {
	var services []models.SalonService
	if err := r.db.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// Delete 删除服务项目（软删除）
func (r *GormSalonServiceRepository) Delete(id uint) error {
	return r.db.Delete(&models.SalonService{}, id).Error
}
