package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"sharedbid/internal/auth"
	"sharedbid/internal/biddingerrors"
	model "sharedbid/internal/models"
	"sharedbid/internal/repository"
	"sharedbid/utils"
)

// Registration is the input for a new account
type Registration struct {
	Name     string     `validate:"required,max=100"`
	Email    string     `validate:"required,email,max=254"`
	Password string     `validate:"min=8,max=72"` // bcrypt ignores bytes past 72
	Role     model.Role `validate:"oneof=seller bidder"`
}

// Session is a signed-in user and their access token
type Session struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// AccountService registers and authenticates marketplace users
type AccountService struct {
	repo       repository.AuctionDB
	tokens     *auth.TokenIssuer
	validate   *validator.Validate
	bcryptCost int
}

// NewAccountService creates a new AccountService instance
func NewAccountService(repo repository.AuctionDB, tokens *auth.TokenIssuer, bcryptCost int) *AccountService {
	return &AccountService{
		repo:       repo,
		tokens:     tokens,
		validate:   validator.New(),
		bcryptCost: bcryptCost,
	}
}

// Register creates an account and signs the new user in
func (s *AccountService) Register(ctx context.Context, reg Registration) (Session, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	if err := s.validate.Struct(reg); err != nil {
		return Session{}, fmt.Errorf("accounts: %w - %v", biddingerrors.ErrInvalidUser, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.bcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("accounts: failed to hash password: %w", err)
	}

	user := model.User{
		UserID:       utils.GenerateID(),
		Name:         reg.Name,
		Email:        reg.Email,
		Role:         reg.Role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return Session{}, fmt.Errorf("accounts: failed to register %s: %w", reg.Email, err)
	}

	utils.Info("user registered", map[string]any{
		"user_id": user.UserID,
		"role":    user.Role,
	})
	return s.session(user)
}

// Login verifies credentials for the given role. Unknown users, wrong roles and
// wrong passwords are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string, role model.Role) (Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, biddingerrors.ErrUserNotFound) {
		return Session{}, fmt.Errorf("accounts: %w", biddingerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return Session{}, fmt.Errorf("accounts: failed to look up %s: %w", email, err)
	}

	if user.Role != role {
		return Session{}, fmt.Errorf("accounts: %w", biddingerrors.ErrInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Session{}, fmt.Errorf("accounts: %w", biddingerrors.ErrInvalidCredentials)
	}
	return s.session(user)
}

// GetUser returns a user without credentials
func (s *AccountService) GetUser(ctx context.Context, userID string) (model.User, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("accounts: failed to get user %s: %w", userID, err)
	}
	return user.Public(), nil
}

func (s *AccountService) session(user model.User) (Session, error) {
	token, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	return Session{User: user.Public(), Token: token}, nil
}
