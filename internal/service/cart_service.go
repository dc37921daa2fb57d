package service

import (
	"strings"
	"time"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     models.Money    `json:"price"`
	LineTotal models.Money    `json:"line_total"`
	Product   *models.Product `json:"product,omitempty"`
}

// CartView 购物车视图（用于响应）
type CartView struct {
	Cart  *models.Cart     `json:"cart"`
	Items []CartItemDetail `json:"items"`
}

// CartService 购物车服务
type CartService struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(db *gorm.DB, cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart 获取会员购物车，不存在则创建
func (s *CartService) GetCart(memberID uint) (*CartView, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}
	cart, err := s.findOrCreateCart(s.cartRepo, memberID)
	if err != nil {
		return nil, err
	}
	return s.buildCartView(s.cartRepo, cart)
}

// AddItem 添加商品到购物车，返回整车视图与受影响的明细
// 同一商品重复添加时累加数量，单价保留首次加入时的快照
func (s *CartService) AddItem(memberID, productID uint, quantity int) (*CartView, *CartItemDetail, error) {
	if memberID == 0 {
		return nil, nil, ErrMemberNotFound
	}
	if productID == 0 {
		return nil, nil, ErrProductNotFound
	}
	if quantity <= 0 {
		return nil, nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, nil, ErrProductUnavailable
	}

	var view *CartView
	var affected *CartItemDetail
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := s.findOrCreateCart(repo, memberID)
		if err != nil {
			return err
		}

		item, err := s.upsertItem(repo, cart.ID, product, quantity)
		if err != nil {
			return err
		}
		if err := s.recalculateTotal(repo, cart); err != nil {
			return err
		}
		affected = &CartItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.LineTotal(),
			Product:   product,
		}
		view, err = s.buildCartView(repo, cart)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return view, affected, nil
}

// UpdateItemQuantity 更新购物车项数量
// 数量小于等于 0 时删除该项；明细必须属于该会员的购物车
func (s *CartService) UpdateItemQuantity(memberID, itemID uint, quantity int) (*CartView, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}

	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := s.findOrCreateCart(repo, memberID)
		if err != nil {
			return err
		}

		item, err := repo.GetItem(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.CartID != cart.ID {
			return ErrCartItemNotFound
		}

		if quantity <= 0 {
			if err := repo.DeleteItem(item.ID); err != nil {
				return err
			}
		} else {
			item.Quantity = quantity
			item.UpdatedAt = time.Now()
			if err := repo.UpdateItem(item); err != nil {
				return err
			}
		}

		if err := s.recalculateTotal(repo, cart); err != nil {
			return err
		}
		view, err = s.buildCartView(repo, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// RemoveItem 删除购物车项
func (s *CartService) RemoveItem(memberID, itemID uint) (*CartView, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}

	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := s.findOrCreateCart(repo, memberID)
		if err != nil {
			return err
		}

		item, err := repo.GetItem(itemID)
		if err != nil {
			return err
		}
		if item == nil || item.CartID != cart.ID {
			return ErrCartItemNotFound
		}

		if err := repo.DeleteItem(item.ID); err != nil {
			return err
		}
		if err := s.recalculateTotal(repo, cart); err != nil {
			return err
		}
		view, err = s.buildCartView(repo, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ClearCart 清空既有购物车；购物车不存在时返回未找到
// 对已空的购物车重复调用是幂等的
func (s *CartService) ClearCart(memberID uint) (*CartView, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}

	var view *CartView
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetByMember(memberID)
		if err != nil {
			return err
		}
		if cart == nil {
			return ErrCartNotFound
		}
		if err := repo.ClearItems(cart.ID); err != nil {
			return err
		}
		if err := s.recalculateTotal(repo, cart); err != nil {
			return err
		}
		view, err = s.buildCartView(repo, cart)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *CartService) findOrCreateCart(repo repository.CartRepository, memberID uint) (*models.Cart, error) {
	cart, err := repo.GetByMember(memberID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &models.Cart{
		MemberID: &memberID,
		Total:    models.NewMoneyFromDecimal(decimal.Zero),
	}
	if err := repo.Create(cart); err != nil {
		// 并发创建时回读既有购物车
		if isUniqueViolation(err) {
			existing, getErr := repo.GetByMember(memberID)
			if getErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}
	return cart, nil
}

// upsertItem 写入明细行并返回受影响的行，并发下唯一索引冲突时按累加重试一次
func (s *CartService) upsertItem(repo repository.CartRepository, cartID uint, product *models.Product, quantity int) (*models.CartItem, error) {
	existing, err := repo.GetItemByProduct(cartID, product.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		existing.UpdatedAt = time.Now()
		if err := repo.UpdateItem(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	now := time.Now()
	item := &models.CartItem{
		CartID:    cartID,
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.CreateItem(item); err != nil {
		if isUniqueViolation(err) {
			winner, getErr := repo.GetItemByProduct(cartID, product.ID)
			if getErr != nil {
				return nil, getErr
			}
			if winner != nil {
				winner.Quantity += quantity
				winner.UpdatedAt = time.Now()
				if err := repo.UpdateItem(winner); err != nil {
					return nil, err
				}
				return winner, nil
			}
		}
		return nil, err
	}
	return item, nil
}

// recalculateTotal 由明细重算合计，任何明细变更后都会调用
func (s *CartService) recalculateTotal(repo repository.CartRepository, cart *models.Cart) error {
	items, err := repo.ListItems(cart.ID)
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	cart.Total = models.NewMoneyFromDecimal(total)
	return repo.UpdateTotal(cart.ID, cart.Total)
}

func (s *CartService) buildCartView(repo repository.CartRepository, cart *models.Cart) (*CartView, error) {
	items, err := repo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		details = append(details, CartItemDetail{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.LineTotal(),
			Product:   item.Product,
		})
	}
	return &CartView{Cart: cart, Items: details}, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique") || strings.Contains(message, "duplicate key")
}
