package service

import (
	"fmt"
	"testing"

	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var memberSvcDBSeq int

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireNumber: true,
				RequireLetter: true,
			},
		},
		Reset: config.ResetConfig{TokenTTLMinutes: 60, LinkBaseURL: "http://localhost:3000/reset-password/"},
	}
}

func setupMemberServiceTest(t *testing.T) (*MemberService, *gorm.DB) {
	t.Helper()
	memberSvcDBSeq++
	dsn := fmt.Sprintf("file:member_svc_%d?mode=memory&cache=shared", memberSvcDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Member{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate member tables failed: %v", err)
	}
	memberRepo := repository.NewMemberRepository(db)
	cartRepo := repository.NewCartRepository(db)
	return NewMemberService(testConfig(), memberRepo, cartRepo), db
}

func registerTestMember(t *testing.T, svc *MemberService, email string) *models.Member {
	t.Helper()
	member, _, _, err := svc.Register(RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  "sunshine42",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return member
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupMemberServiceTest(t)

	member, token, _, err := svc.Register(RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.COM",
		Password:  "sunshine42",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if member.Email != "ada@example.com" {
		t.Fatalf("email not normalized: %s", member.Email)
	}
	if token == "" {
		t.Fatalf("want jwt token on register")
	}

	logged, token, _, err := svc.Login("ada@example.com", "sunshine42")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != member.ID || token == "" {
		t.Fatalf("login returned wrong member or empty token")
	}

	claims, err := svc.ParseMemberJWT(token)
	if err != nil {
		t.Fatalf("parse jwt failed: %v", err)
	}
	if claims.MemberID != member.ID || claims.Email != member.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := setupMemberServiceTest(t)
	registerTestMember(t, svc, "dup@example.com")

	_, _, _, err := svc.Register(RegisterInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "DUP@example.com",
		Password:  "sunshine42",
	})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("want ErrEmailAlreadyExists got %v", err)
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	svc, _ := setupMemberServiceTest(t)

	cases := []string{"short1", "allletters", "123456789"}
	for _, password := range cases {
		_, _, _, err := svc.Register(RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "weak@example.com",
			Password:  password,
		})
		if err != ErrWeakPassword {
			t.Fatalf("password %q want ErrWeakPassword got %v", password, err)
		}
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	svc, _ := setupMemberServiceTest(t)
	registerTestMember(t, svc, "ada@example.com")

	// 未知邮箱与错误密码返回同一个错误
	if _, _, _, err := svc.Login("missing@example.com", "sunshine42"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("ada@example.com", "wrongpass1"); err != ErrInvalidCredentials {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
}

func TestUpdateProfilePartialFields(t *testing.T) {
	svc, _ := setupMemberServiceTest(t)
	member := registerTestMember(t, svc, "ada@example.com")

	phone := "555-0101"
	city := "London"
	updated, err := svc.UpdateProfile(member.ID, UpdateProfileInput{Phone: &phone, City: &city})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Phone != phone || updated.City != city {
		t.Fatalf("profile not updated: %+v", updated)
	}
	if updated.FirstName != "Ada" {
		t.Fatalf("untouched field changed: %s", updated.FirstName)
	}
}

func TestDeleteMemberClearsCartItems(t *testing.T) {
	svc, db := setupMemberServiceTest(t)
	member := registerTestMember(t, svc, "ada@example.com")

	memberID := member.ID
	cart := &models.Cart{MemberID: &memberID}
	if err := db.Create(cart).Error; err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	item := &models.CartItem{CartID: cart.ID, ProductID: 1, Quantity: 2}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}

	if err := svc.Delete(member.ID); err != nil {
		t.Fatalf("delete member failed: %v", err)
	}

	if _, err := svc.GetMemberByID(member.ID); err != ErrMemberNotFound {
		t.Fatalf("want ErrMemberNotFound after delete got %v", err)
	}
	var itemCount int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("want cart items cleared got %d", itemCount)
	}
}
