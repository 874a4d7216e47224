package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticación: registro (con secreto de
// administrador) y login (token con snapshot del usuario, ventana de 24h).
type AuthUseCase struct {
	userRepo    repository.UserRepository
	adminSecret string
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, adminSecret string, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, adminSecret: adminSecret, jwtCfg: jwtCfg}
}

// Register crea un vendedor. Exige el secreto de administrador (valor fuera
// de banda) y rechaza emails duplicados antes de persistir.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.AdminSecret != uc.adminSecret {
		return nil, domain.ErrInvalidAdminToken
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Lastname:     in.Lastname,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password contra el hash almacenado y emite un token
// con el snapshot completo del usuario embebido.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Name, user.Lastname,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Lastname:  u.Lastname,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
