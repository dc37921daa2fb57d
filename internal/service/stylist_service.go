package service

import (
	"strings"
	"time"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"
)

// StylistInput 发型师创建输入
type StylistInput struct {
	Name            string
	Expertise       string
	ExperienceYears int
	ProfilePicture  string
	Education       string
	CareerInterest  string
	Description     string
}

// StylistUpdateInput 发型师更新输入（nil 表示不修改）
type StylistUpdateInput struct {
	Name            *string
	Expertise       *string
	ExperienceYears *int
	ProfilePicture  *string
	Education       *string
	CareerInterest  *string
	Description     *string
}

// StylistService 发型师服务
type StylistService struct {
	stylistRepo repository.StylistRepository
}

// NewStylistService 创建发型师服务
func NewStylistService(stylistRepo repository.StylistRepository) *StylistService {
	return &StylistService{stylistRepo: stylistRepo}
}

// List 发型师列表
func (s *StylistService) List() ([]models.Stylist, error) {
	return s.stylistRepo.List()
}

// GetByID 获取发型师
func (s *StylistService) GetByID(id uint) (*models.Stylist, error) {
	stylist, err := s.stylistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stylist == nil {
		return nil, ErrStylistNotFound
	}
	return stylist, nil
}

// Create 创建发型师
func (s *StylistService) Create(input StylistInput) (*models.Stylist, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCatalogData
	}
	stylist := &models.Stylist{
		Name:            name,
		Expertise:       strings.TrimSpace(input.Expertise),
		ExperienceYears: input.ExperienceYears,
		ProfilePicture:  strings.TrimSpace(input.ProfilePicture),
		Education:       input.Education,
		CareerInterest:  input.CareerInterest,
		Description:     input.Description,
	}
	if err := s.stylistRepo.Create(stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

// Update 更新发型师（部分字段）
func (s *StylistService) Update(id uint, input StylistUpdateInput) (*models.Stylist, error) {
	stylist, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		stylist.Name = strings.TrimSpace(*input.Name)
	}
	if input.Expertise != nil {
		stylist.Expertise = strings.TrimSpace(*input.Expertise)
	}
	if input.ExperienceYears != nil && *input.ExperienceYears >= 0 {
		stylist.ExperienceYears = *input.ExperienceYears
	}
	if input.ProfilePicture != nil {
		stylist.ProfilePicture = strings.TrimSpace(*input.ProfilePicture)
	}
	if input.Education != nil {
		stylist.Education = *input.Education
	}
	if input.CareerInterest != nil {
		stylist.CareerInterest = *input.CareerInterest
	}
	if input.Description != nil {
		stylist.Description = *input.Description
	}

	stylist.UpdatedAt = time.Now()
	if err := s.stylistRepo.Update(stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

// Delete 删除发型师
func (s *StylistService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.stylistRepo.Delete(id)
}
