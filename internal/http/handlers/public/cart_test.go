package public

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/provider"
	"github.com/timeless-style/salon-api/internal/repository"
	"github.com/timeless-style/salon-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var cartHandlerDBSeq int

func setupCartHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cartHandlerDBSeq++
	dsn := fmt.Sprintf("file:cart_handler_%d?mode=memory&cache=shared", cartHandlerDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	container := &provider.Container{
		CartService: service.NewCartService(db, cartRepo, productRepo),
	}
	return New(container), db
}

func seedCartProduct(t *testing.T, db *gorm.DB, name, price string) *models.Product {
	t.Helper()
	amount, err := models.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("parse price failed: %v", err)
	}
	product := &models.Product{Name: name, Price: amount, StockQuantity: 10, IsActive: true}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

type cartEnvelope struct {
	StatusCode int    `json:"status_code"`
	Msg        string `json:"msg"`
	Data       struct {
		Cart  *models.Cart             `json:"cart"`
		Item  *service.CartItemDetail  `json:"item"`
		Items []service.CartItemDetail `json:"items"`
	} `json:"data"`
}

func invokeCartHandler(t *testing.T, memberID uint, method, body string, fn gin.HandlerFunc) cartEnvelope {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/v1/cart", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("member_id", memberID)
	fn(c)

	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	var envelope cartEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return envelope
}

func TestAddCartItemDefaultsQuantityToOne(t *testing.T) {
	h, db := setupCartHandlerTest(t)
	product := seedCartProduct(t, db, "Smoothing Serum", "19.00")

	body := fmt.Sprintf(`{"product_id": %d}`, product.ID)
	envelope := invokeCartHandler(t, 1, http.MethodPost, body, h.AddCartItem)
	if envelope.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d msg=%s", envelope.StatusCode, envelope.Msg)
	}
	if envelope.Data.Item == nil || envelope.Data.Item.Quantity != 1 {
		t.Fatalf("omitted quantity want item qty 1 got %+v", envelope.Data.Item)
	}
}

func TestAddCartItemExplicitZeroQuantityRejected(t *testing.T) {
	h, db := setupCartHandlerTest(t)
	product := seedCartProduct(t, db, "Curl Cream", "14.00")

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 0}`, product.ID)
	envelope := invokeCartHandler(t, 1, http.MethodPost, body, h.AddCartItem)
	if envelope.StatusCode != 400 {
		t.Fatalf("status_code want 400 got %d msg=%s", envelope.StatusCode, envelope.Msg)
	}
}

func TestAddCartItemResponseCarriesAffectedItem(t *testing.T) {
	h, db := setupCartHandlerTest(t)
	product := seedCartProduct(t, db, "Gloss Treatment", "30.00")

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, product.ID)
	envelope := invokeCartHandler(t, 1, http.MethodPost, body, h.AddCartItem)
	if envelope.StatusCode != 0 {
		t.Fatalf("status_code want 0 got %d msg=%s", envelope.StatusCode, envelope.Msg)
	}
	item := envelope.Data.Item
	if item == nil || item.ProductID != product.ID || item.Quantity != 2 {
		t.Fatalf("item want product %d qty 2 got %+v", product.ID, item)
	}
	if item.LineTotal.String() != "60.00" {
		t.Fatalf("item line total want 60.00 got %s", item.LineTotal.String())
	}
	if len(envelope.Data.Items) != 1 {
		t.Fatalf("items want 1 row got %d", len(envelope.Data.Items))
	}
	if envelope.Data.Cart == nil || envelope.Data.Cart.Total.String() != "60.00" {
		t.Fatalf("cart total want 60.00 got %+v", envelope.Data.Cart)
	}
}

func TestClearCartWithoutCartRespondsNotFound(t *testing.T) {
	h, db := setupCartHandlerTest(t)

	envelope := invokeCartHandler(t, 7, http.MethodDelete, "", h.ClearCart)
	if envelope.StatusCode != 404 {
		t.Fatalf("status_code want 404 got %d msg=%s", envelope.StatusCode, envelope.Msg)
	}
	if envelope.Msg != "cart not found" {
		t.Fatalf("msg want cart not found got %q", envelope.Msg)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("want 0 carts got %d", count)
	}
}
