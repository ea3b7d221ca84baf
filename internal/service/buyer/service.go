package buyer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tienda/internal/domain"
	"tienda/internal/identity"
	buyerrepo "tienda/internal/repository/buyer"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidIdentityNumber rejects a DNI/NIE/CIF failing format or checksum.
	ErrInvalidIdentityNumber = errors.New("invalid identity number")
)

// Service handles buyer and company account flows.
type Service struct {
	repo        buyerrepo.Repository
	passwordMin int
}

func New(repo buyerrepo.Repository) *Service {
	return &Service{repo: repo, passwordMin: 8}
}

// SignupInput captures fields expected by the signup endpoint. Company
// accounts carry a CIF, person accounts a DNI or NIE.
type SignupInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IdentityNumber string `json:"identityNumber"`
	Company        bool   `json:"company"`
}

// Signup registers a new account. The identity number is checksum-validated
// before acceptance: CIF for companies, DNI/NIE for persons. A person may
// sign up without one and attach it later via profile edit.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Buyer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.ValidationError("email required")
	}
	password := strings.TrimSpace(in.Password)
	if err := validatePassword(password, s.passwordMin); err != nil {
		return nil, err
	}

	idNumber := strings.ToUpper(strings.TrimSpace(in.IdentityNumber))
	if in.Company {
		if !identity.ValidateCIFOrNIF(idNumber) {
			return nil, ErrInvalidIdentityNumber
		}
	} else if idNumber != "" && !identity.ValidateDNIOrNIE(idNumber) {
		return nil, ErrInvalidIdentityNumber
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, domain.Buyer{
		Email:          email,
		PasswordHash:   string(hashed),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		IdentityNumber: idNumber,
		Company:        in.Company,
	})
}

// Login validates credentials and returns the matching account.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Buyer, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	b, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(b.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, ErrInvalidCredentials
	}
	return b, nil
}

// Get returns the account for an id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Buyer, error) {
	if id <= 0 {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func validatePassword(p string, min int) error {
	if len(p) < min {
		return domain.ValidationError(fmt.Sprintf("password must be at least %d characters", min))
	}
	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return domain.ValidationError("password must contain at least 1 uppercase letter, 1 lowercase letter, and 1 number")
	}
	return nil
}
