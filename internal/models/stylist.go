package models

import (
	"time"

	"gorm.io/gorm"
)

// Stylist 发型师表
type Stylist struct {
	ID              uint           `gorm:"primarykey" json:"id"`                     // 主键
	Name            string         `gorm:"not null;index" json:"name"`               // 姓名
	Expertise       string         `gorm:"default:''" json:"expertise"`              // 擅长领域
	ExperienceYears int            `gorm:"not null;default:0" json:"experience_years"` // 从业年限
	ProfilePicture  string         `gorm:"default:''" json:"profile_picture"`        // 头像地址
	Education       string         `gorm:"type:text" json:"education"`               // 教育背景
	CareerInterest  string         `gorm:"type:text" json:"career_interest"`         // 职业方向
	Description     string         `gorm:"type:text" json:"description"`             // 个人介绍
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                               // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Stylist) TableName() string {
	return "stylists"
}
