package repository

import (
	"errors"
	"strings"

	"github.com/timeless-style/salon-api/internal/models"

	"gorm.io/gorm"
)

// MemberListFilter 会员列表查询条件
type MemberListFilter struct {
	Keyword  string
	Status   string
	Page     int
	PageSize int
}

// MemberRepository 会员数据访问接口
type MemberRepository interface {
	GetByEmail(email string) (*models.Member, error)
	GetByID(id uint) (*models.Member, error)
	Create(member *models.Member) error
	Update(member *models.Member) error
	List(filter MemberListFilter) ([]models.Member, int64, error)
	Delete(id uint) error
}

// GormMemberRepository GORM 实现
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓库
func NewMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// GetByEmail 根据邮箱获取会员
func (r *GormMemberRepository) GetByEmail(email string) (*models.Member, error) {
	var member models.Member
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.Where("email = ?", normalized).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// GetByID 根据 ID 获取会员
func (r *GormMemberRepository) GetByID(id uint) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// Create 创建会员
func (r *GormMemberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

// Update 更新会员
func (r *GormMemberRepository) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

// List 会员列表
func (r *GormMemberRepository) List(filter MemberListFilter) ([]models.Member, int64, error) {
	query := r.db.Model(&models.Member{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var members []models.Member
	if err := query.Order("id DESC").Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// Delete 删除会员（软删除）
func (r *GormMemberRepository) Delete(id uint) error {
	return r.db.Delete(&models.Member{}, id).Error
}
