package models

import (
	"time"

	"gorm.io/gorm"
)

// Member 会员表
type Member struct {
	ID                 uint           `gorm:"primarykey" json:"id"`              // 主键
	FirstName          string         `gorm:"not null" json:"first_name"`        // 名
	LastName           string         `gorm:"not null" json:"last_name"`         // 姓
	Email              string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	Phone              string         `gorm:"default:''" json:"phone"`           // 电话
	PasswordHash       string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	Address            string         `gorm:"default:''" json:"address"`         // 地址
	City               string         `gorm:"default:''" json:"city"`            // 城市
	State              string         `gorm:"default:''" json:"state"`           // 省/州
	PostalCode         string         `gorm:"default:''" json:"postal_code"`     // 邮编
	Country            string         `gorm:"default:''" json:"country"`         // 国家
	IsAdmin            bool           `gorm:"default:false" json:"is_admin"`     // 管理员标记
	Status             string         `gorm:"default:'active'" json:"status"`    // 账号状态
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`       // Token 版本（用于全量失效）
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                    // 该时间点前签发的 Token 失效
	LastLoginAt        *time.Time     `json:"last_login_at"`                     // 最后登录时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`           // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (Member) TableName() string {
	return "members"
}

// FullName 返回姓名拼接
func (m Member) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
