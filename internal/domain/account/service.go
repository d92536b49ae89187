package account

import (
	"context"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/healthrec/healthrec/internal/platform/apperr"
	"github.com/healthrec/healthrec/internal/platform/auth"
)

type Service struct {
	users  Repository
	issuer *auth.Issuer
}

func NewService(users Repository, issuer *auth.Issuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// AuthResult is the user plus the token pair issued for it.
type AuthResult struct {
	User   *User
	Tokens *auth.TokenPair
}

func validateRegister(in *RegisterInput) *apperr.ValidationError {
	v := &apperr.ValidationError{}
	if in.Name == "" {
		v.Add("name", "this field is required")
	}
	if in.Email == "" {
		v.Add("email", "this field is required")
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		v.Add("email", "enter a valid email address")
	}
	if in.Username == "" {
		v.Add("username", "this field is required")
	}
	if in.Password == "" {
		v.Add("password", "this field is required")
	} else if len(in.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if in.PasswordConfirm == "" {
		v.Add("password_confirm", "this field is required")
	} else if in.Password != "" && in.Password != in.PasswordConfirm {
		v.Add("password_confirm", "passwords do not match")
	}
	if v.HasErrors() {
		return v
	}
	return nil
}

func (s *Service) Register(ctx context.Context, in *RegisterInput) (*AuthResult, error) {
	if v := validateRegister(in); v != nil {
		return nil, v
	}
	emailTaken, err := s.users.EmailInUse(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperr.NewValidation("email", "a user with this email already exists")
	}
	usernameTaken, err := s.users.UsernameInUse(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, apperr.NewValidation("username", "a user with this username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		Name:         in.Name,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	tokens, err := s.issuer.IssuePair(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Tokens: tokens}, nil
}

// Login authenticates by email and password. The failure message never says
// whether the email exists.
func (s *Service) Login(ctx context.Context, in *LoginInput) (*AuthResult, error) {
	v := &apperr.ValidationError{}
	if in.Email == "" {
		v.Add("email", "this field is required")
	}
	if in.Password == "" {
		v.Add("password", "this field is required")
	}
	if v.HasErrors() {
		return nil, v
	}

	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NewValidation("non_field_errors", "invalid email or password")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperr.NewValidation("non_field_errors", "invalid email or password")
	}
	tokens, err := s.issuer.IssuePair(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, Tokens: tokens}, nil
}
