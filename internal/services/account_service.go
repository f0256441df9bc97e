package services

import (
	"context"
	"log"
	"strings"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/internal/repositories"
	"wayfare/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Me(ctx context.Context, userID string) (*response_models.UserProfile, error)
	Logout(ctx context.Context, userID string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	notifier    *AuthNotifier
}

func NewAccountService(accountRepo repositories.AccountRepository, notifier *AuthNotifier) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		notifier:    notifier,
	}
}

// Register creates the account and signs it straight in, so clients get a
// usable session without a second login round trip.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountLoginResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Email:        request.Email,
		PasswordHash: hashed,
		DisplayName:  request.DisplayName,
		GivenName:    request.GivenName,
		FamilyName:   request.FamilyName,
		FullName:     request.FullName,
		AvatarURL:    request.AvatarURL,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	profile := DeriveProfile(account)
	a.notifier.Emit(AuthEventSignedIn, profile)
	log.Printf("account %s registered and signed in", account.ID)

	return &response_models.AccountLoginResponse{Token: token, User: profile}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	profile := DeriveProfile(account)
	a.notifier.Emit(AuthEventSignedIn, profile)
	log.Printf("account %s signed in", account.ID)

	return &response_models.AccountLoginResponse{Token: token, User: profile}, nil
}

func (a *AccountService) Me(ctx context.Context, userID string) (*response_models.UserProfile, error) {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	profile := DeriveProfile(account)
	return &profile, nil
}

func (a *AccountService) Logout(ctx context.Context, userID string) error {
	account, err := a.accountRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}
	a.notifier.Emit(AuthEventSignedOut, DeriveProfile(account))
	log.Printf("account %s signed out", account.ID)
	return nil
}

// DeriveProfile builds the display profile from the richest name data
// available, falling back step by step until the email local part, so
// FirstName is never empty for a valid account.
func DeriveProfile(account *db_models.Account) response_models.UserProfile {
	first, last := account.GivenName, account.FamilyName

	if first == "" {
		first, last = splitName(account.FullName)
	}
	if first == "" {
		first, last = splitName(account.DisplayName)
	}
	if first == "" {
		if at := strings.Index(account.Email, "@"); at > 0 {
			first = account.Email[:at]
		}
	}
	if first == "" {
		first = "User"
	}

	return response_models.UserProfile{
		ID:        account.ID.String(),
		FirstName: first,
		LastName:  last,
		Email:     account.Email,
		Avatar:    account.AvatarURL,
	}
}

func splitName(name string) (first string, last string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
