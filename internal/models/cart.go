package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart 购物车表（每个会员至多一个活跃购物车）
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`                               // 主键
	MemberID  *uint          `gorm:"index" json:"member_id"`                             // 会员ID（保留空值位，暂不开放游客购物车）
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"` // 合计金额（由明细重算得出）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 关联明细
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项（同一购物车内商品唯一，删除为物理删除以配合唯一索引）
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                               // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"cart_id"`    // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_items_cart_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                           // 数量
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                 // 加入时的单价快照
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                            // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                            // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal 返回该行小计（单价 × 数量）
func (i CartItem) LineTotal() Money {
	return NewMoneyFromDecimal(i.Price.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity))))
}
