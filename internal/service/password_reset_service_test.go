package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/timeless-style/salon-api/internal/cache"
	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/constants"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/queue"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var resetSvcDBSeq int

func setupPasswordResetTest(t *testing.T) (*PasswordResetService, *MemberService, *cache.MemoryKeyValueStore, *gorm.DB) {
	t.Helper()
	resetSvcDBSeq++
	dsn := fmt.Sprintf("file:reset_svc_%d?mode=memory&cache=shared", resetSvcDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Member{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate tables failed: %v", err)
	}

	cfg := testConfig()
	memberRepo := repository.NewMemberRepository(db)
	cartRepo := repository.NewCartRepository(db)
	store := cache.NewMemoryKeyValueStore()
	emailService := NewEmailService(&config.EmailConfig{Enabled: false})
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("create queue client failed: %v", err)
	}

	resetSvc := NewPasswordResetService(cfg, memberRepo, store, emailService, queueClient)
	memberSvc := NewMemberService(cfg, memberRepo, cartRepo)
	return resetSvc, memberSvc, store, db
}

func findStoredToken(t *testing.T, store *cache.MemoryKeyValueStore, memberID uint) string {
	t.Helper()
	// 令牌是随机的，从存储内容反查
	prefix := constants.ResetTokenKeyPrefix + ":"
	for key, value := range store.Items() {
		if strings.HasPrefix(key, prefix) && value == fmt.Sprintf("%d", memberID) {
			return strings.TrimPrefix(key, prefix)
		}
	}
	t.Fatalf("no stored token for member %d", memberID)
	return ""
}

func TestRequestResetStoresTokenForKnownEmail(t *testing.T) {
	resetSvc, memberSvc, store, _ := setupPasswordResetTest(t)
	member := registerTestMember(t, memberSvc, "ada@example.com")

	if err := resetSvc.RequestReset(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}
	token := findStoredToken(t, store, member.ID)
	if len(token) == 0 {
		t.Fatalf("want token stored")
	}
}

func TestRequestResetSilentForUnknownEmail(t *testing.T) {
	resetSvc, _, store, _ := setupPasswordResetTest(t)

	if err := resetSvc.RequestReset(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("unknown email should not error: %v", err)
	}
	if count := len(store.Items()); count != 0 {
		t.Fatalf("want no tokens stored got %d", count)
	}

	// 非法邮箱同样静默成功
	if err := resetSvc.RequestReset(context.Background(), "not-an-email"); err != nil {
		t.Fatalf("invalid email should not error: %v", err)
	}
}

func TestResetPasswordFullFlow(t *testing.T) {
	resetSvc, memberSvc, store, db := setupPasswordResetTest(t)
	member := registerTestMember(t, memberSvc, "ada@example.com")
	oldVersion := member.TokenVersion

	if err := resetSvc.RequestReset(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}
	token := findStoredToken(t, store, member.ID)

	if err := resetSvc.ResetPassword(context.Background(), token, "newsecret9"); err != nil {
		t.Fatalf("reset password failed: %v", err)
	}

	var updated models.Member
	if err := db.First(&updated, member.ID).Error; err != nil {
		t.Fatalf("reload member failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newsecret9")); err != nil {
		t.Fatalf("new password not set: %v", err)
	}
	if updated.TokenVersion != oldVersion+1 {
		t.Fatalf("token version want %d got %d", oldVersion+1, updated.TokenVersion)
	}
	if updated.TokenInvalidBefore == nil {
		t.Fatalf("token invalid before not set")
	}

	// 令牌一次性：复用必须失败
	if err := resetSvc.ResetPassword(context.Background(), token, "another99pass"); err != ErrResetTokenInvalid {
		t.Fatalf("token reuse want ErrResetTokenInvalid got %v", err)
	}

	// 新密码可登录
	if _, _, _, err := memberSvc.Login("ada@example.com", "newsecret9"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestResetPasswordRejectsBadToken(t *testing.T) {
	resetSvc, _, _, _ := setupPasswordResetTest(t)

	if err := resetSvc.ResetPassword(context.Background(), "", "newsecret9"); err != ErrResetTokenInvalid {
		t.Fatalf("empty token want ErrResetTokenInvalid got %v", err)
	}
	if err := resetSvc.ResetPassword(context.Background(), "deadbeef", "newsecret9"); err != ErrResetTokenInvalid {
		t.Fatalf("unknown token want ErrResetTokenInvalid got %v", err)
	}
}

func TestResetPasswordEnforcesPolicyBeforeTokenBurn(t *testing.T) {
	resetSvc, memberSvc, store, _ := setupPasswordResetTest(t)
	member := registerTestMember(t, memberSvc, "ada@example.com")

	if err := resetSvc.RequestReset(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}
	token := findStoredToken(t, store, member.ID)

	if err := resetSvc.ResetPassword(context.Background(), token, "weak"); err != ErrWeakPassword {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}

	// 弱密码尝试不消耗令牌
	if err := resetSvc.ResetPassword(context.Background(), token, "strongpass7"); err != nil {
		t.Fatalf("reset after weak attempt failed: %v", err)
	}
}

func TestResetTokenExpires(t *testing.T) {
	resetSvc, memberSvc, store, _ := setupPasswordResetTest(t)
	member := registerTestMember(t, memberSvc, "ada@example.com")

	now := time.Now()
	store.Now = func() time.Time { return now }

	if err := resetSvc.RequestReset(context.Background(), "ada@example.com"); err != nil {
		t.Fatalf("request reset failed: %v", err)
	}
	token := findStoredToken(t, store, member.ID)

	now = now.Add(61 * time.Minute)
	if err := resetSvc.ResetPassword(context.Background(), token, "newsecret9"); err != ErrResetTokenInvalid {
		t.Fatalf("expired token want ErrResetTokenInvalid got %v", err)
	}
}
