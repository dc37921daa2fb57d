package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/timeless-style/salon-api/internal/cache"
	"github.com/timeless-style/salon-api/internal/config"
	"github.com/timeless-style/salon-api/internal/constants"
	"github.com/timeless-style/salon-api/internal/models"
	"github.com/timeless-style/salon-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// MemberService 会员账号服务
type MemberService struct {
	cfg        *config.Config
	memberRepo repository.MemberRepository
	cartRepo   repository.CartRepository
}

// NewMemberService 创建会员服务
func NewMemberService(cfg *config.Config, memberRepo repository.MemberRepository, cartRepo repository.CartRepository) *MemberService {
	return &MemberService{
		cfg:        cfg,
		memberRepo: memberRepo,
		cartRepo:   cartRepo,
	}
}

// MemberJWTClaims 会员 JWT 声明
type MemberJWTClaims struct {
	MemberID     uint   `json:"member_id"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// RegisterInput 注册输入
type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Password   string
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

// UpdateProfileInput 资料更新输入（nil 表示不修改）
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Phone      *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// GenerateMemberJWT 生成会员 JWT Token
func (s *MemberService) GenerateMemberJWT(member *models.Member) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := MemberJWTClaims{
		MemberID:     member.ID,
		Email:        member.Email,
		IsAdmin:      member.IsAdmin,
		TokenVersion: member.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseMemberJWT 解析会员 JWT Token
func (s *MemberService) ParseMemberJWT(tokenString string) (*MemberJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &MemberJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*MemberJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Register 会员注册
func (s *MemberService) Register(input RegisterInput) (*models.Member, string, time.Time, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, "", time.Time{}, err
	}

	exist, err := s.memberRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if exist != nil {
		return nil, "", time.Time{}, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	member := &models.Member{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        normalized,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: string(hashedPassword),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		State:        strings.TrimSpace(input.State),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		Country:      strings.TrimSpace(input.Country),
		Status:       constants.MemberStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateMemberJWT(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	member.LastLoginAt = &now
	if err := s.memberRepo.Update(member); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetMemberAuthState(context.Background(), cache.BuildMemberAuthState(member))

	return member, token, expiresAt, nil
}

// Login 会员登录
func (s *MemberService) Login(email, password string) (*models.Member, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	member, err := s.memberRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if member == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if strings.ToLower(member.Status) != constants.MemberStatusActive {
		return nil, "", time.Time{}, ErrMemberDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateMemberJWT(member)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	member.LastLoginAt = &now
	if err := s.memberRepo.Update(member); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetMemberAuthState(context.Background(), cache.BuildMemberAuthState(member))

	return member, token, expiresAt, nil
}

// GetMemberByID 获取会员信息
func (s *MemberService) GetMemberByID(id uint) (*models.Member, error) {
	if id == 0 {
		return nil, ErrMemberNotFound
	}
	member, err := s.memberRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// UpdateProfile 更新会员资料
func (s *MemberService) UpdateProfile(memberID uint, input UpdateProfileInput) (*models.Member, error) {
	member, err := s.GetMemberByID(memberID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	applyString(&member.FirstName, input.FirstName)
	applyString(&member.LastName, input.LastName)
	applyString(&member.Phone, input.Phone)
	applyString(&member.Address, input.Address)
	applyString(&member.City, input.City)
	applyString(&member.State, input.State)
	applyString(&member.PostalCode, input.PostalCode)
	applyString(&member.Country, input.Country)

	member.UpdatedAt = time.Now()
	if err := s.memberRepo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// List 会员列表（管理端）
func (s *MemberService) List(filter repository.MemberListFilter) ([]models.Member, int64, error) {
	return s.memberRepo.List(filter)
}

// Delete 删除会员（管理端），同时清理其购物车明细
func (s *MemberService) Delete(memberID uint) error {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	cart, err := s.cartRepo.GetByMember(memberID)
	if err != nil {
		return err
	}
	if cart != nil {
		if err := s.cartRepo.ClearItems(cart.ID); err != nil {
			return err
		}
	}

	if err := s.memberRepo.Delete(memberID); err != nil {
		return err
	}
	_ = cache.DelMemberAuthState(context.Background(), memberID)
	return nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength <= 0 && !policy.RequireNumber && !policy.RequireLetter {
		return nil
	}
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return ErrWeakPassword
	}

	var hasNumber, hasLetter bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}
	if policy.RequireNumber && !hasNumber {
		return ErrWeakPassword
	}
	if policy.RequireLetter && !hasLetter {
		return ErrWeakPassword
	}
	return nil
}
