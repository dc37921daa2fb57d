package service

import (
	"strings"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"
)

// GalleryService 画廊服务
type GalleryService struct {
	galleryRepo repository.GalleryRepository
}

// NewGalleryService 创建画廊服务
func NewGalleryService(galleryRepo repository.GalleryRepository) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo}
}

// List 图片列表
func (s *GalleryService) List() ([]models.GalleryImage, error) {
	return s.galleryRepo.List()
}

// GetByID 获取图片
func (s *GalleryService) GetByID(id uint) (*models.GalleryImage, error) {
	image, err := s.galleryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, ErrGalleryImageNotFound
	}
	return image, nil
}

// Create 创建图片记录
func (s *GalleryService) Create(imageURL, caption string) (*models.GalleryImage, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrInvalidCatalogData
	}
	image := &models.GalleryImage{
		ImageURL: imageURL,
		Caption:  strings.TrimSpace(caption),
	}
	if err := s.galleryRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// UpdateCaption 更新图片说明
func (s *GalleryService) UpdateCaption(id uint, caption string) (*models.GalleryImage, error) {
	image, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	image.Caption = strings.TrimSpace(caption)
	if err := s.galleryRepo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete 删除图片记录
func (s *GalleryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.galleryRepo.Delete(id)
}
