package models

import (
	"time"

	"gorm.io/gorm"
)

// GalleryImage 作品展示图片表
type GalleryImage struct {
	ID         uint           `gorm:"primarykey" json:"id"`      // 主键
	ImageURL   string         `gorm:"not null" json:"image_url"` // 图片地址
	Caption    string         `gorm:"default:''" json:"caption"` // 说明文字
	UploadedAt time.Time      `gorm:"index;autoCreateTime" json:"uploaded_at"` // 上传时间
	UpdatedAt  time.Time      `json:"updated_at"`                // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`            // 软删除时间
}

// TableName 指定表名
func (GalleryImage) TableName() string {
	return "gallery_images"
}
