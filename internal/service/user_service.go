package service

import (
	"context"
	"strings"

	"go-rent-market/internal/core/auth"
	"go-rent-market/internal/domain"
	"go-rent-market/pkg/utils"
)

const (
	passwordMinLen = 8
	passwordMaxLen = 72 // bcrypt 输入上限
)

// dummyHash 查无此人时也跑一次 bcrypt，避免用时长探测邮箱是否注册过
var dummyHash = utils.HashPassword("no-such-user-padding")

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ZipCode   string `json:"zipCode"`
}

type UserService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewUserService(users domain.UserRepository, jwter *auth.JWTer) *UserService {
	return &UserService{users: users, jwter: jwter}
}

// Register 按固定字段顺序校验，报出第一个不合法的字段；入库的只有 bcrypt 散列
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	ordered := []struct{ name, val string }{
		{"email", in.Email},
		{"password", in.Password},
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"zipCode", in.ZipCode},
	}
	for _, f := range ordered {
		if f.val == "" {
			return nil, domain.Missing(f.name)
		}
	}
	for _, f := range ordered[:2] { // email / password 不允许首尾空白
		if f.val != strings.TrimSpace(f.val) {
			return nil, domain.Invalid(f.name, "Cannot start or end with whitespace")
		}
	}
	if len(in.Password) < passwordMinLen {
		return nil, domain.Invalid("password", "Must be at least 8 characters long")
	}
	if len(in.Password) > passwordMaxLen {
		return nil, domain.Invalid("password", "Must be at most 72 characters long")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		ZipCode:      in.ZipCode,
		Role:         domain.RoleUser, // 注册永远是普通用户
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login 查无此人和密码不对返回同一个错误，不让调用方枚举用户
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		utils.CheckPassword(password, dummyHash)
		return "", nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	tok, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return tok, u, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if !utils.ValidID(id) {
		return nil, domain.ErrInvalidID
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

// Delete 只许本人或管理员。不级联：该用户名下的 items/offers 保留原 id 快照
func (s *UserService) Delete(ctx context.Context, callerID, callerRole, id string) error {
	if !utils.ValidID(id) {
		return domain.ErrInvalidID
	}
	if callerID != id && callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}
	return s.users.Delete(ctx, id)
}
