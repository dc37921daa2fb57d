package repository

import (
	"errors"

	"github.com/timeless-style/salon-api/internal/models"

	"gorm.io/gorm"
)

// GalleryRepository 画廊图片数据访问接口
type GalleryRepository interface {
	GetByID(id uint) (*models.GalleryImage, error)
	Create(image *models.GalleryImage) error
	Update(image *models.GalleryImage) error
	List() ([]models.GalleryImage, error)
	Delete(id uint) error
}

// GormGalleryRepository GORM 实现
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository 创建画廊仓库
func NewGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// GetByID 根据 ID 获取图片
func (r *GormGalleryRepository) GetByID(id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := r.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Create 创建图片记录
func (r *GormGalleryRepository) Create(image *models.GalleryImage) error {
	return r.db.Create(image).Error
}

// Update 更新图片记录
func (r *GormGalleryRepository) Update(image *models.GalleryImage) error {
	return r.db.Save(image).Error
}

// List 图片列表（按上传时间倒序）
func (r *GormGalleryRepository) List() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.Order("uploaded_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Delete 删除图片记录（软删除）
func (r *GormGalleryRepository) Delete(id uint) error {
	return r.db.Delete(&models.GalleryImage{}, id).Error
}
