package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/domain"
	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
	"github.com/jhoicas/inventory-ledger/internal/domain/repository"
	"github.com/jhoicas/inventory-ledger/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase compuerta de credenciales: verificación usuario/contraseña y emisión de JWT.
// El inventario no depende de este caso de uso; solo lo consume la capa HTTP.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SeedDefault crea la credencial por defecto solo si la tabla de usuarios está vacía.
// Devuelve true si la sembró.
func (uc *AuthUseCase) SeedDefault(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, domain.NewValidationError("username", "usuario y contraseña por defecto son requeridos")
	}
	n, err := uc.userRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	err = uc.userRepo.Create(ctx, &entity.User{Username: username, PasswordHash: string(hash)})
	if errors.Is(err, domain.ErrDuplicate) {
		// otra instancia la sembró primero
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate indica si el par usuario/contraseña es válido. Los errores de store cuentan como no autenticado.
func (uc *AuthUseCase) Authenticate(ctx context.Context, username, password string) bool {
	_, err := uc.verify(ctx, username, password)
	return err == nil
}

// Login verifica credenciales, genera JWT y retorna el token.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.verify(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Username:  user.Username,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
	}, nil
}

func (uc *AuthUseCase) verify(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
