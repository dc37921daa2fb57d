package repository

import (
	"fmt"
	"testing"

	"github.com/timeless-style/salon-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var cartTestDBSeq int

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	cartTestDBSeq++
	dsn := fmt.Sprintf("file:cart_repo_%d?mode=memory&cache=shared", cartTestDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartForMember(t *testing.T, repo *GormCartRepository, memberID uint) *models.Cart {
	t.Helper()
	cart := &models.Cart{MemberID: &memberID}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	return cart
}

func TestCartGetByMemberMissReturnsNil(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	cart, err := repo.GetByMember(42)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if cart != nil {
		t.Fatalf("want nil cart got id=%d", cart.ID)
	}
}

func TestCartItemLifecycle(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart := createCartForMember(t, repo, 1)

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: 7,
		Quantity:  2,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(19.90)),
	}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}

	got, err := repo.GetItemByProduct(cart.ID, 7)
	if err != nil {
		t.Fatalf("get item by product failed: %v", err)
	}
	if got == nil || got.Quantity != 2 {
		t.Fatalf("want quantity 2 got %+v", got)
	}

	got.Quantity = 5
	if err := repo.UpdateItem(got); err != nil {
		t.Fatalf("update item failed: %v", err)
	}

	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("want one item with quantity 5 got %+v", items)
	}

	if err := repo.DeleteItem(got.ID); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	missing, err := repo.GetItem(got.ID)
	if err != nil {
		t.Fatalf("get deleted item failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("want nil after delete got %+v", missing)
	}
}

func TestCartItemUniquePerProduct(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart := createCartForMember(t, repo, 2)

	first := &models.CartItem{CartID: cart.ID, ProductID: 3, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))}
	if err := repo.CreateItem(first); err != nil {
		t.Fatalf("create first item failed: %v", err)
	}
	dup := &models.CartItem{CartID: cart.ID, ProductID: 3, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))}
	if err := repo.CreateItem(dup); err == nil {
		t.Fatalf("want unique index violation for duplicate product row")
	}
}

func TestCartItemReaddAfterDelete(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart := createCartForMember(t, repo, 3)

	item := &models.CartItem{CartID: cart.ID, ProductID: 9, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(25))}
	if err := repo.CreateItem(item); err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	if err := repo.DeleteItem(item.ID); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}

	// 物理删除后同一商品可以重新加入
	again := &models.CartItem{CartID: cart.ID, ProductID: 9, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(25))}
	if err := repo.CreateItem(again); err != nil {
		t.Fatalf("re-add after delete failed: %v", err)
	}
}

func TestCartClearItems(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart := createCartForMember(t, repo, 4)

	for productID := uint(1); productID <= 3; productID++ {
		item := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(5))}
		if err := repo.CreateItem(item); err != nil {
			t.Fatalf("create item failed: %v", err)
		}
	}

	if err := repo.ClearItems(cart.ID); err != nil {
		t.Fatalf("clear items failed: %v", err)
	}
	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty cart got %d items", len(items))
	}

	// 清空是幂等的
	if err := repo.ClearItems(cart.ID); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}
