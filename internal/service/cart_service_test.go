package service

import (
	"fmt"
	"testing"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var cartSvcDBSeq int

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	cartSvcDBSeq++
	dsn := fmt.Sprintf("file:cart_svc_%d?mode=memory&cache=shared", cartSvcDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	return NewCartService(db, cartRepo, productRepo), db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price string, active bool) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{
		Name:          name,
		Price:         amount,
		StockQuantity: 100,
		IsActive:      active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func assertCartTotal(t *testing.T, view *CartView, want string) {
	t.Helper()
	if got := view.Cart.Total.String(); got != want {
		t.Fatalf("cart total want %s got %s", want, got)
	}
}

func TestGetCartCreatesOnFirstAccess(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	view, err := svc.GetCart(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.Cart == nil || view.Cart.ID == 0 {
		t.Fatalf("want persisted cart got %+v", view.Cart)
	}
	if len(view.Items) != 0 {
		t.Fatalf("want empty cart got %d items", len(view.Items))
	}
	assertCartTotal(t, view, "0.00")

	// 再次访问复用同一购物车
	again, err := svc.GetCart(1)
	if err != nil {
		t.Fatalf("second get cart failed: %v", err)
	}
	if again.Cart.ID != view.Cart.ID {
		t.Fatalf("want same cart id %d got %d", view.Cart.ID, again.Cart.ID)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want 1 cart got %d", count)
	}
}

func TestAddItemCapturesPriceAndIncrementsQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Argan Oil Shampoo", "12.50", true)

	view, added, err := svc.AddItem(1, product.ID, 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("want 1 item got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", view.Items[0].Quantity)
	}
	if added == nil || added.ProductID != product.ID || added.Quantity != 2 {
		t.Fatalf("affected item want product %d qty 2 got %+v", product.ID, added)
	}
	if added.LineTotal.String() != "25.00" {
		t.Fatalf("affected line total want 25.00 got %s", added.LineTotal.String())
	}
	assertCartTotal(t, view, "25.00")

	// 商品价格变动不影响已捕获的单价
	product.Price = models.NewMoneyFromDecimal(decimal.NewFromInt(99))
	if err := db.Save(product).Error; err != nil {
		t.Fatalf("update product price failed: %v", err)
	}

	view, added, err = svc.AddItem(1, product.ID, 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("want single merged row got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", view.Items[0].Quantity)
	}
	if view.Items[0].Price.String() != "12.50" {
		t.Fatalf("captured price want 12.50 got %s", view.Items[0].Price.String())
	}
	if added == nil || added.Quantity != 3 || added.Price.String() != "12.50" {
		t.Fatalf("affected item want merged qty 3 at 12.50 got %+v", added)
	}
	assertCartTotal(t, view, "37.50")
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	inactive := createTestProduct(t, db, "Retired Pomade", "8.00", false)

	if _, _, err := svc.AddItem(1, 9999, 1); err != ErrProductNotFound {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
	if _, _, err := svc.AddItem(1, inactive.ID, 1); err != ErrProductUnavailable {
		t.Fatalf("want ErrProductUnavailable got %v", err)
	}
	active := createTestProduct(t, db, "Sea Salt Spray", "10.00", true)
	if _, _, err := svc.AddItem(1, active.ID, 0); err != ErrInvalidQuantity {
		t.Fatalf("want ErrInvalidQuantity got %v", err)
	}
	if _, _, err := svc.AddItem(1, active.ID, -3); err != ErrInvalidQuantity {
		t.Fatalf("want ErrInvalidQuantity got %v", err)
	}
}

func TestUpdateItemQuantityAndZeroDeletes(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Leave-in Conditioner", "15.00", true)

	view, _, err := svc.AddItem(1, product.ID, 1)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	itemID := view.Items[0].ID

	view, err = svc.UpdateItemQuantity(1, itemID, 4)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if view.Items[0].Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", view.Items[0].Quantity)
	}
	assertCartTotal(t, view, "60.00")

	// 数量降到 0 时删除该项
	view, err = svc.UpdateItemQuantity(1, itemID, 0)
	if err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("want item removed got %d items", len(view.Items))
	}
	assertCartTotal(t, view, "0.00")
}

func TestCartOwnershipIsolation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Texturizing Clay", "18.00", true)

	view, _, err := svc.AddItem(1, product.ID, 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	itemID := view.Items[0].ID

	// 其他会员不能操作该明细
	if _, err := svc.UpdateItemQuantity(2, itemID, 1); err != ErrCartItemNotFound {
		t.Fatalf("cross-member update want ErrCartItemNotFound got %v", err)
	}
	if _, err := svc.RemoveItem(2, itemID); err != ErrCartItemNotFound {
		t.Fatalf("cross-member remove want ErrCartItemNotFound got %v", err)
	}

	// 原会员购物车不受影响
	mine, err := svc.GetCart(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(mine.Items) != 1 || mine.Items[0].Quantity != 2 {
		t.Fatalf("owner cart changed unexpectedly: %+v", mine.Items)
	}
}

func TestRemoveItemRecalculatesTotal(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	shampoo := createTestProduct(t, db, "Shampoo", "10.00", true)
	brush := createTestProduct(t, db, "Brush", "5.50", true)

	if _, _, err := svc.AddItem(1, shampoo.ID, 2); err != nil {
		t.Fatalf("add shampoo failed: %v", err)
	}
	view, _, err := svc.AddItem(1, brush.ID, 1)
	if err != nil {
		t.Fatalf("add brush failed: %v", err)
	}
	assertCartTotal(t, view, "25.50")

	var brushItemID uint
	for _, item := range view.Items {
		if item.ProductID == brush.ID {
			brushItemID = item.ID
		}
	}
	view, err = svc.RemoveItem(1, brushItemID)
	if err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("want 1 item got %d", len(view.Items))
	}
	assertCartTotal(t, view, "20.00")

	if _, err := svc.RemoveItem(1, brushItemID); err != ErrCartItemNotFound {
		t.Fatalf("second remove want ErrCartItemNotFound got %v", err)
	}
}

func TestClearCartIsIdempotent(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createTestProduct(t, db, "Heat Protectant", "22.00", true)

	if _, _, err := svc.AddItem(1, product.ID, 3); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	view, err := svc.ClearCart(1)
	if err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("want empty cart got %d items", len(view.Items))
	}
	assertCartTotal(t, view, "0.00")

	view, err = svc.ClearCart(1)
	if err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	assertCartTotal(t, view, "0.00")
}

func TestClearCartWithoutCartReturnsNotFound(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	if _, err := svc.ClearCart(42); err != ErrCartNotFound {
		t.Fatalf("want ErrCartNotFound got %v", err)
	}

	// 清空不存在的购物车不得产生新购物车
	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("want 0 carts got %d", count)
	}
}

func TestCartTotalInvariantAcrossMutations(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	a := createTestProduct(t, db, "Product A", "3.33", true)
	b := createTestProduct(t, db, "Product B", "7.77", true)

	if _, _, err := svc.AddItem(1, a.ID, 3); err != nil {
		t.Fatalf("add a failed: %v", err)
	}
	view, _, err := svc.AddItem(1, b.ID, 2)
	if err != nil {
		t.Fatalf("add b failed: %v", err)
	}

	// 合计始终等于明细之和
	expected := decimal.Zero
	for _, item := range view.Items {
		expected = expected.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !view.Cart.Total.Decimal.Equal(expected) {
		t.Fatalf("total invariant broken: total=%s sum=%s", view.Cart.Total.String(), expected.StringFixed(2))
	}
	assertCartTotal(t, view, "25.53")
}
