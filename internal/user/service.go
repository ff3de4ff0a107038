package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/config"
)

const sessionDuration = 30 * 24 * time.Hour

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("invalid user")
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*SessionResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error)
	Me(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(dto.Mobile) == "" {
		return nil, fmt.Errorf("%w: mobile number is required", ErrValidation)
	}

	if _, err := s.repo.FindByMobile(dto.Mobile); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	u := User{
		ID:               uuid.New(),
		Name:             dto.Name,
		BusinessName:     dto.BusinessName,
		BusinessCategory: dto.BusinessCategory,
		Mobile:           dto.Mobile,
		Email:            dto.Email,
		ProfileImage:     dto.ProfileImage,
	}

	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to register user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return s.session(&u)
}

// Login asserts identity by mobile number. The OTP round-trip that proves
// ownership of the number is an external concern; this endpoint is its
// trusted callback.
func (s *service) Login(ctx context.Context, dto LoginDTO) (*SessionResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByMobile(dto.Mobile)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.WithError(err).Error("Failed to look up user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in")
	return s.session(u)
}

func (s *service) Me(ctx context.Context) (*User, error) {
	userID, err := s.sessionUserID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.BusinessName != nil {
		u.BusinessName = *dto.BusinessName
	}
	if dto.BusinessCategory != nil {
		u.BusinessCategory = *dto.BusinessCategory
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Address != nil {
		u.Address = *dto.Address
	}
	if dto.Website != nil {
		u.Website = *dto.Website
	}
	if dto.ProfileImage != nil {
		u.ProfileImage = *dto.ProfileImage
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update profile")
		return nil, err
	}
	return u, nil
}

func (s *service) session(u *User) (*SessionResponse, error) {
	token, err := auth.GenerateJWT(u.ID.String(), sessionDuration)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{Token: token, User: *u}, nil
}

func (s *service) sessionUserID(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
