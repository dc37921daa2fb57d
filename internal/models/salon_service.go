package models

import (
	"time"

	"gorm.io/gorm"
)

// SalonService 美发服务项目表
type SalonService struct {
	ID          uint           `gorm:"primarykey" json:"id"`                               // 主键
	Name        string         `gorm:"not null;index" json:"name"`                         // 服务名称
	Description string         `gorm:"type:text" json:"description"`                       // 服务描述
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 价格
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间
}

// TableName 指定表名
func (SalonService) TableName() string {
	return "salon_services"
}
