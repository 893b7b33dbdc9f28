package user

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/auth"
	"github.com/mlefevre/quizzlab/internal/config"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*ProfileResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	GetByID(ctx context.Context, id uint) (*ProfileResponse, error)
	Update(ctx context.Context, id, requesterID uint, dto UpdateDTO) (*ProfileResponse, error)
	Delete(ctx context.Context, id, requesterID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*ProfileResponse, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		return nil, &apperror.ValidationError{Message: "name, email and password are required"}
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &apperror.ConflictError{Message: "email already in use"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.repo.Create(&u); err != nil {
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("account created")
	return s.toProfile(&u), nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	if dto.Email == "" || dto.Password == "" {
		return nil, &apperror.ValidationError{Message: "email and password are required"}
	}
	if !emailRe.MatchString(dto.Email) {
		return nil, &apperror.ValidationError{Message: "invalid email format"}
	}

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &apperror.AuthenticationError{Message: "invalid credentials"}
	}
	if !u.IsActive {
		return nil, &apperror.AuthenticationError{Message: "account is deactivated"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, &apperror.AuthenticationError{Message: "invalid credentials"}
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, auth.TokenTTL)
	if err != nil {
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("login successful")
	return &LoginResponse{Message: "login successful", Username: u.Name, Token: token}, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*ProfileResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("user")
	}
	return s.toProfile(u), nil
}

func (s *service) Update(ctx context.Context, id, requesterID uint, dto UpdateDTO) (*ProfileResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("user")
	}
	if u.ID != requesterID {
		return nil, &apperror.ForbiddenError{Message: "access denied"}
	}

	if dto.Name != nil && *dto.Name != "" {
		u.Name = *dto.Name
	}
	if dto.Email != nil && *dto.Email != "" {
		u.Email = *dto.Email
	}
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return s.toProfile(u), nil
}

func (s *service) Delete(ctx context.Context, id, requesterID uint) error {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperror.NotFound("user")
	}
	if u.ID != requesterID {
		return &apperror.ForbiddenError{Message: "access denied"}
	}

	return s.repo.Delete(id)
}

func (s *service) toProfile(u *User) *ProfileResponse {
	return &ProfileResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
