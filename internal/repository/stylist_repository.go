package repository

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/models"

	"gorm.io/gorm"
)

// StylistRepository 发型师数据访问接口
type StylistRepository interface {
	GetByID(id uint) (*models.Stylist, error)
	Create(stylist *models.Stylist) error
	Update(stylist *models.Stylist) error
	List() ([]models.Stylist, error)
	Delete(id uint) error
}

// GormStylistRepository GORM 实现
type GormStylistRepository struct {
	db *gorm.DB
}

// NewStylistRepository 创建发型师仓库
func NewStylistRepository(db *gorm.DB) *GormStylistRepository {
	return &GormStylistRepository{db: db}
}

// GetByID 根据 ID 获取发型师
func (r *GormStylistRepository) GetByID(id uint) (*models.Stylist, error) {
	var stylist models.Stylist
	if err := r.db.First(&stylist, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &stylist, nil
}

// Create 创建发型师
func (r *GormStylistRepository) Create(stylist *models.Stylist) error {
	return r.db.Create(stylist).Error
}

// Update 更新发型师
func (r *GormStylistRepository) Update(stylist *models.Stylist) error {
	return r.db.Save(stylist).Error
}

// List 发型师列表
func (r *GormStylistRepository) List() ([]models.Stylist, error) {
	var stylists []models.Stylist
	if err := r.db.Order("id ASC").Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

// Delete 删除发型师（软删除）
func (r *GormStylistRepository) Delete(id uint) error {
	return r.db.Delete(&models.Stylist{}, id).Error
}
