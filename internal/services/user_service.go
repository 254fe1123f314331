package services

import (
	"context"
	"fmt"

	"dj-backend/internal/auth"
	"dj-backend/internal/cache"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/timeutil"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{Repo: repo, JWTManager: jwtManager}
}

// Signup registers a new account. Self-signup can only produce CUSTOMER or
// CREW accounts; admin accounts are created by an existing admin or the
// seed script.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	role := req.Role
	switch role {
	case "":
		role = models.RoleCustomer
	case models.RoleCustomer, models.RoleCrew:
	default:
		return nil, fmt.Errorf("role %q cannot be self-assigned", req.Role)
	}

	if _, err := s.Repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("email %s is already registered", req.Email)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         role,
		JoinedDate:   timeutil.Now(),
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUserCaches(ctx)

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a JWT. Valid credentials are cached
// briefly so dashboard re-logins skip the bcrypt cost.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	var user *models.User

	if userID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); ok {
		if cached, err := s.Repo.Get(ctx, int(userID)); err == nil {
			user = cached
		}
	}

	if user == nil {
		found, err := s.Repo.GetByEmail(ctx, req.Email)
		if err != nil {
			return nil, fmt.Errorf("invalid email or password")
		}
		if !auth.VerifyPassword(found.PasswordHash, req.Password) {
			return nil, fmt.Errorf("invalid email or password")
		}
		user = found
		cache.CacheAuth(ctx, req.Email, req.Password, int64(user.ID))
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is suspended")
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, role string) ([]*models.User, error) {
	return s.Repo.List(ctx, role)
}

// CreateUser is the admin path: any role, optional salary for crew.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleAdmin && role != models.RoleCrew && role != models.RoleCustomer {
		return nil, fmt.Errorf("unknown role %q", req.Role)
	}

	hash := ""
	if req.Password != "" {
		var err error
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		WhatsApp:     req.WhatsApp,
		PasswordHash: hash,
		Role:         role,
		Pincode:      req.Pincode,
		City:         req.City,
		State:        req.State,
		JoinedDate:   timeutil.Now(),
		Salary:       req.Salary,
		Avatar:       req.Avatar,
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUserCaches(ctx)
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if req.Role != "" {
		if req.Role != models.RoleAdmin && req.Role != models.RoleCrew && req.Role != models.RoleCustomer {
			return nil, fmt.Errorf("unknown role %q", req.Role)
		}
		user.Role = req.Role
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.WhatsApp != "" {
		user.WhatsApp = req.WhatsApp
	}
	if req.Pincode != "" {
		user.Pincode = req.Pincode
	}
	if req.City != "" {
		user.City = req.City
	}
	if req.State != "" {
		user.State = req.State
	}
	if req.Salary != 0 {
		user.Salary = req.Salary
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUserCaches(ctx)
	return user, nil
}

// DeleteUser removes the account. The repository detaches the user's
// bookings in the same transaction, so their history stays in the ledger
// under the customer name.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateUserCaches(ctx)
	return nil
}
