package models

import (
	"time"

	"gorm.io/gorm"
)

// Appointment 预约表
type Appointment struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                           // 主键
	MemberID        uint           `gorm:"not null;index" json:"member_id"`                                // 会员ID
	StylistID       uint           `gorm:"not null;index" json:"stylist_id"`                               // 发型师ID
	ServiceID       uint           `gorm:"not null;index" json:"service_id"`                               // 服务项目ID
	AppointmentDate time.Time      `gorm:"not null;index" json:"appointment_date"`                         // 预约时间
	Status          string         `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`    // 状态（scheduled/completed/canceled）
	Notes           string         `gorm:"type:text" json:"notes"`                                         // 备注
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                     // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                 // 软删除时间

	Member  *Member       `gorm:"foreignKey:MemberID" json:"member,omitempty"`   // 关联会员
	Stylist *Stylist      `gorm:"foreignKey:StylistID" json:"stylist,omitempty"` // 关联发型师
	Service *SalonService `gorm:"foreignKey:ServiceID" json:"service,omitempty"` // 关联服务项目
}

// TableName 指定表名
func (Appointment) TableName() string {
	return "appointments"
}
