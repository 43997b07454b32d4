package services

import (
	"github.com/musiconnect/musiconnect-api/internal/apperr"
	"github.com/musiconnect/musiconnect-api/internal/catalog"
	"github.com/musiconnect/musiconnect-api/internal/models"
	"github.com/musiconnect/musiconnect-api/internal/repository"
	"github.com/musiconnect/musiconnect-api/internal/security"
	"github.com/musiconnect/musiconnect-api/internal/token"
)

// AuthService handles registration and login. Hashing and token minting are
// external ports; this service only applies the registration rules.
type AuthService struct {
	users    repository.UserRepository
	catalogs repository.CatalogRepository
	hasher   security.PasswordHasher
	issuer   token.Issuer
}

func NewAuthService(users repository.UserRepository, catalogs repository.CatalogRepository, hasher security.PasswordHasher, issuer token.Issuer) *AuthService {
	return &AuthService{users: users, catalogs: catalogs, hasher: hasher, issuer: issuer}
}

// AuthResult is what both Register and Login hand back to the caller.
type AuthResult struct {
	Token        string `json:"token"`
	UserID       uint64 `json:"user_id"`
	ArtisticName string `json:"artistic_name"`
}

// Registration carries the registration inputs. Availability is optional
// and defaults to true; the genre list may be empty.
type Registration struct {
	Email        string
	Password     string
	ArtisticName string
	Instruments  string
	Bio          string
	Location     string
	Available    *bool
	RoleID       uint64
	Genres       []string
}

func (s *AuthService) Register(reg Registration) (*AuthResult, error) {
	taken, err := s.users.ExistsByEmail(reg.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("a profile with this email already exists")
	}

	if _, ok, err := s.users.FindByArtisticName(reg.ArtisticName); err != nil {
		return nil, err
	} else if ok {
		return nil, apperr.Conflict("this artistic name is already taken")
	}

	role, ok, err := s.catalogs.FindRoleByID(reg.RoleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("role not found")
	}
	if role.Name != catalog.RoleMusician && role.Name != catalog.RoleProducer {
		return nil, apperr.RuleViolation("only MUSICIAN or PRODUCER roles can register")
	}

	genres, err := resolveGenres(s.catalogs, reg.Genres)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, err
	}

	available := true
	if reg.Available != nil {
		available = *reg.Available
	}

	user := &models.User{
		Email:        reg.Email,
		Password:     hashed,
		ArtisticName: reg.ArtisticName,
		Instruments:  reg.Instruments,
		Bio:          reg.Bio,
		Location:     reg.Location,
		Available:    available,
		RoleID:       role.ID,
		Role:         *role,
		Genres:       genres,
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}

	signed, err := s.issuer.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: signed, UserID: user.ID, ArtisticName: user.ArtisticName}, nil
}

// Login reports the same "invalid credentials" failure for an unknown email
// and a wrong password, so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	user, ok, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !s.hasher.Matches(password, user.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	signed, err := s.issuer.Issue(user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: signed, UserID: user.ID, ArtisticName: user.ArtisticName}, nil
}
