package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"templify/internal/models/db_models"
	"templify/internal/models/request_models"
	"templify/internal/models/response_models"
	"templify/internal/repositories"
	"templify/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	// Login verifies credentials, refreshes any supplied profile fields
	// (the upsert-on-login contract) and issues a token.
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("signup: lookup email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:        request.Email,
		PasswordHash: hashed,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
	}
	if err := a.userRepo.CreateUser(ctx, user); err != nil {
		log.Printf("signup: create user: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := toAccountResponse(*user)
	return &response, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.Printf("login: lookup email: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if request.FirstName != "" || request.LastName != "" || request.ProfileImageURL != "" {
		if request.FirstName != "" {
			user.FirstName = request.FirstName
		}
		if request.LastName != "" {
			user.LastName = request.LastName
		}
		if request.ProfileImageURL != "" {
			user.ProfileImageURL = request.ProfileImageURL
		}
		if err := a.userRepo.UpdateProfile(ctx, user); err != nil {
			log.Printf("login: refresh profile for %s: %v", user.ID, err)
		}
	}

	token, err := utils.CreateToken(user.ID, user.IsAdmin)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(*user),
	}, nil
}

func (a *AccountService) GetAccount(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	user, err := a.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("get account %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	response := toAccountResponse(*user)
	return &response, nil
}

func toAccountResponse(user db_models.User) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		IsAdmin:         user.IsAdmin,
		CreatedAt:       user.CreatedAt,
	}
}
