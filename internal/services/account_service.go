package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"travelai/internal/models/db_models"
	"travelai/internal/models/request_models"
	"travelai/internal/models/response_models"
	"travelai/internal/repositories"
	"travelai/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	// Logout revokes the token until it would have expired.
	Logout(ctx context.Context, claims *utils.Claims) error
	GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	denylist    repositories.TokenDenylist
	jwtManager  *utils.JWTManager
	log         zerolog.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, denylist repositories.TokenDenylist, jwtManager *utils.JWTManager, log zerolog.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		denylist:    denylist,
		jwtManager:  jwtManager,
		log:         log,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)
	if len(request.Password) < 6 {
		return nil, utils.InvalidInput("password must be at least 6 characters")
	}

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error().Err(err).Msg("find account by email")
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	newAccount := &db_models.Account{
		Name:         strings.TrimSpace(request.DisplayName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleUser,
	}
	if err := a.accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, utils.ErrEmailAlreadyExists
		}
		a.log.Error().Err(err).Msg("create account")
		return nil, utils.ErrDatabaseError
	}

	return toAccountResponse(newAccount), nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error().Err(err).Msg("find account by email")
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, claims, err := a.jwtManager.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}
	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func (a *AccountService) Logout(ctx context.Context, claims *utils.Claims) error {
	if claims == nil || claims.ID == "" {
		return utils.ErrUnauthorized
	}
	if err := a.denylist.Revoke(ctx, claims.ID, a.jwtManager.Remaining(claims)); err != nil {
		a.log.Error().Err(err).Str("jti", claims.ID).Msg("revoke token")
		return utils.ErrStoreError
	}
	return nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		a.log.Error().Err(err).Msg("find account by id")
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:    a.ID.String(),
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
