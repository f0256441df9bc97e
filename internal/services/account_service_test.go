package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfare/internal/models/db_models"
	"wayfare/internal/models/request_models"
	"wayfare/internal/models/response_models"
	"wayfare/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*db_models.Account)}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.byEmail {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	return f.byEmail[email], nil
}

func TestRegisterSignsInImmediately(t *testing.T) {
	notifier := NewAuthNotifier()
	var events []AuthEvent
	var profiles []response_models.UserProfile
	notifier.Subscribe(func(event AuthEvent, profile response_models.UserProfile) {
		events = append(events, event)
		profiles = append(profiles, profile)
	})

	svc := NewAccountService(newFakeAccountRepo(), notifier)

	result, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Email:     "ada@example.com",
		Password:  "hunter22",
		GivenName: "Ada",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ada", result.User.FirstName)
	require.Equal(t, []AuthEvent{AuthEventSignedIn}, events)
	assert.Equal(t, "ada@example.com", profiles[0].Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := NewAccountService(repo, NewAuthNotifier())

	_, err := svc.Register(context.Background(), request_models.SignUpRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), request_models.SignUpRequest{
		Email:    "ada@example.com",
		Password: "different",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestDeriveProfilePrefersStructuredNames(t *testing.T) {
	profile := DeriveProfile(&db_models.Account{
		Email:       "ada@example.com",
		GivenName:   "Ada",
		FamilyName:  "Lovelace",
		FullName:    "A. Lovelace",
		DisplayName: "ada_l",
	})

	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
}

func TestDeriveProfileFallbackChain(t *testing.T) {
	cases := []struct {
		name      string
		account   db_models.Account
		wantFirst string
		wantLast  string
	}{
		{
			name:      "full name split",
			account:   db_models.Account{Email: "x@example.com", FullName: "Grace Brewster Hopper"},
			wantFirst: "Grace",
			wantLast:  "Brewster Hopper",
		},
		{
			name:      "display name split",
			account:   db_models.Account{Email: "x@example.com", DisplayName: "Alan Turing"},
			wantFirst: "Alan",
			wantLast:  "Turing",
		},
		{
			name:      "email local part",
			account:   db_models.Account{Email: "katherine@example.com"},
			wantFirst: "katherine",
			wantLast:  "",
		},
		{
			name:      "nothing at all",
			account:   db_models.Account{},
			wantFirst: "User",
			wantLast:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profile := DeriveProfile(&tc.account)
			assert.Equal(t, tc.wantFirst, profile.FirstName)
			assert.Equal(t, tc.wantLast, profile.LastName)
		})
	}
}

func TestAuthNotifierSubscribeAndUnsubscribe(t *testing.T) {
	notifier := NewAuthNotifier()

	var events []AuthEvent
	handle := notifier.Subscribe(func(event AuthEvent, _ response_models.UserProfile) {
		events = append(events, event)
	})

	notifier.Emit(AuthEventSignedIn, response_models.UserProfile{ID: "u1"})
	notifier.Unsubscribe(handle)
	notifier.Emit(AuthEventSignedOut, response_models.UserProfile{ID: "u1"})

	assert.Equal(t, []AuthEvent{AuthEventSignedIn}, events)
}
