package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/timeless-style/salon-api/internal/cache"
	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/constants"
	"github.com/timeless-style/salon-api/internal/logger"
	"github.com/timeless-style/salon-api/internal/queue"
	"github.com/timeless-style/salon-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// PasswordResetService 密码重置服务
type PasswordResetService struct {
	cfg          *config.Config
	memberRepo   repository.MemberRepository
	tokenStore   cache.KeyValueStore
	emailService *EmailService
	queueClient  *queue.Client
}

// NewPasswordResetService 创建密码重置服务
func NewPasswordResetService(cfg *config.Config, memberRepo repository.MemberRepository, tokenStore cache.KeyValueStore, emailService *EmailService, queueClient *queue.Client) *PasswordResetService {
	return &PasswordResetService{
		cfg:          cfg,
		memberRepo:   memberRepo,
		tokenStore:   tokenStore,
		emailService: emailService,
		queueClient:  queueClient,
	}
}

// RequestReset 发起密码重置
// 无论邮箱是否存在都返回成功，避免暴露注册状态
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil
	}
	member, err := s.memberRepo.GetByEmail(normalized)
	if err != nil {
		return err
	}
	if member == nil {
		logger.Infow("password_reset_requested_for_unknown_email", "email", normalized)
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}
	ttl := s.tokenTTL()
	if err := s.tokenStore.Put(ctx, resetTokenKey(token), strconv.FormatUint(uint64(member.ID), 10), ttl); err != nil {
		return err
	}

	resetLink := s.cfg.Reset.LinkBaseURL + token
	payload := queue.PasswordResetEmailPayload{
		MemberID:  member.ID,
		Email:     member.Email,
		Name:      member.FirstName,
		ResetLink: resetLink,
	}
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueuePasswordResetEmail(payload); err != nil {
			logger.Errorw("password_reset_email_enqueue_failed", "member_id", member.ID, "error", err)
			return err
		}
		return nil
	}
	if err := s.emailService.SendPasswordResetEmail(member.Email, member.FirstName, resetLink); err != nil {
		// SMTP 未配置时仅记录，令牌已生效
		if errors.Is(err, ErrEmailServiceDisabled) || errors.Is(err, ErrEmailServiceNotConfigured) {
			logger.Warnw("password_reset_email_skipped", "member_id", member.ID, "error", err)
			return nil
		}
		logger.Errorw("password_reset_email_send_failed", "member_id", member.ID, "error", err)
		return err
	}
	return nil
}

// ResetPassword 使用令牌重置密码
func (s *PasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	value, ok, err := s.tokenStore.Get(ctx, resetTokenKey(token))
	if err != nil {
		return err
	}
	if !ok {
		return ErrResetTokenInvalid
	}
	memberID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return ErrResetTokenInvalid
	}

	member, err := s.memberRepo.GetByID(uint(memberID))
	if err != nil {
		return err
	}
	if member == nil {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	member.PasswordHash = string(hashedPassword)
	member.UpdatedAt = now
	member.TokenVersion++
	member.TokenInvalidBefore = &now
	if err := s.memberRepo.Update(member); err != nil {
		return err
	}
	_ = cache.SetMemberAuthState(ctx, cache.BuildMemberAuthState(member))

	// 令牌只能使用一次
	if err := s.tokenStore.Delete(ctx, resetTokenKey(token)); err != nil {
		logger.Warnw("reset_token_delete_failed", "member_id", member.ID, "error", err)
	}

	payload := queue.PasswordResetConfirmationPayload{
		MemberID: member.ID,
		Email:    member.Email,
		Name:     member.FirstName,
	}
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueuePasswordResetConfirmation(payload); err != nil {
			logger.Warnw("password_reset_confirmation_enqueue_failed", "member_id", member.ID, "error", err)
		}
		return nil
	}
	if err := s.emailService.SendPasswordResetConfirmation(member.Email, member.FirstName); err != nil {
		logger.Warnw("password_reset_confirmation_send_failed", "member_id", member.ID, "error", err)
	}
	return nil
}

func (s *PasswordResetService) tokenTTL() time.Duration {
	minutes := s.cfg.Reset.TokenTTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

func resetTokenKey(token string) string {
	return fmt.Sprintf("%s:%s", constants.ResetTokenKeyPrefix, token)
}

func generateResetToken() (string, error) {
	buf := make([]byte, constants.ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
