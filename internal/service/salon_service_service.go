package service

import (
	"strings"
	"time"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"
)

// SalonServiceInput 服务项目创建输入
type SalonServiceInput struct {
	Name        string
	Description string
	Price       models.Money
}

// SalonServiceUpdateInput 服务项目更新输入（nil 表示不修改）
type SalonServiceUpdateInput struct {
	Name        *string
	Description *string
	Price       *models.Money
}

// SalonServiceService 美发服务项目服务
type SalonServiceService struct {
	serviceRepo repository.SalonServiceRepository
}

// NewSalonServiceService 创建服务项目服务
func NewSalonServiceService(serviceRepo repository.SalonServiceRepository) *SalonServiceService {
	return &SalonServiceService{serviceRepo: serviceRepo}
}

// List 服务项目列表
func (s *SalonServiceService) List() ([]models.SalonService, error) {
	return s.serviceRepo.List()
}

// GetByID 获取服务项目
func (s *SalonServiceService) GetByID(id uint) (*models.SalonService, error) {
	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrSalonServiceNotFound
	}
	return service, nil
}

// Create 创建服务项目
func (s *SalonServiceService) Create(input SalonServiceInput) (*models.SalonService, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCatalogData
	}
	service := &models.SalonService{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

// Update 更新服务项目（部分字段）
func (s *SalonServiceService) Update(id uint, input SalonServiceUpdateInput) (*models.SalonService, error) {
	service, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		service.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	service.UpdatedAt = time.Now()
	if err := s.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}

// Delete 删除服务项目
func (s *SalonServiceService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.serviceRepo.Delete(id)
}
