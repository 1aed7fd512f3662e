package auth

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/techstore-api/internal/application/dto"
	"github.com/jhoicas/techstore-api/internal/domain"
	"github.com/jhoicas/techstore-api/internal/domain/entity"
	"github.com/jhoicas/techstore-api/internal/domain/repository"
	"github.com/jhoicas/techstore-api/pkg/jwt"
	"github.com/jhoicas/techstore-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y siembra del admin.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Register crea un usuario: hashea password con bcrypt, persiste y devuelve un
// token ya emitido. Devuelve ErrEmailAlreadyExists si el email está tomado.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthenticationResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleAdmin && role != entity.RoleUser {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("usuario registrado")

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthenticationResponse{Token: token}, nil
}

// Authenticate verifica email/password y genera el JWT. Usuario inexistente y
// contraseña incorrecta devuelven el mismo ErrUnauthorized: el llamador no
// debe poder distinguir un caso del otro.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.AuthenticationRequest) (*dto.AuthenticationResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthenticationResponse{Token: token}, nil
}

// EnsureAdmin siembra el usuario administrador inicial si no existe todavía.
// Se invoca al arranque; es idempotente.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, password, firstName, lastName string) error {
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		uc.log.Info().Str("email", email).Msg("el usuario admin ya existe")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	uc.log.Info().Str("email", email).Msg("usuario admin creado")
	return nil
}
