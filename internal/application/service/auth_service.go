package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stallworks/stallpos-api/internal/config"
	"github.com/stallworks/stallpos-api/pkg/apperror"
	"github.com/stallworks/stallpos-api/pkg/utils"
)

// AuthService authenticates the stall operator and gates destructive
// maintenance. There is a single operator identity; the PIN and the
// maintenance passkey come from configuration and are held only as
// bcrypt hashes.
type AuthService struct {
	jwtManager  *utils.JWTManager
	pinHash     string
	passkeyHash string
	operatorID  uuid.UUID
	register    string
}

// NewAuthService creates a new auth service. The configured secrets are
// hashed once up front so no plain value stays resident.
func NewAuthService(cfg *config.AuthConfig, jwtManager *utils.JWTManager) (*AuthService, error) {
	pinHash, err := utils.HashSecret(cfg.OperatorPIN)
	if err != nil {
		return nil, fmt.Errorf("failed to hash operator PIN: %w", err)
	}

	passkeyHash, err := utils.HashSecret(cfg.MaintenancePasskey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash maintenance passkey: %w", err)
	}

	return &AuthService{
		jwtManager:  jwtManager,
		pinHash:     pinHash,
		passkeyHash: passkeyHash,
		operatorID:  uuid.New(),
		register:    cfg.Register,
	}, nil
}

// LoginOutput represents the login output
type LoginOutput struct {
	OperatorID   uuid.UUID `json:"operator_id"`
	Register     string    `json:"register"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// Login checks the operator PIN and returns a token pair
func (s *AuthService) Login(pin string) (*LoginOutput, error) {
	if !utils.CheckSecretHash(pin, s.pinHash) {
		return nil, apperror.ErrInvalidPIN
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(s.operatorID, s.register)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(s.operatorID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		OperatorID:   s.operatorID,
		Register:     s.register,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (s *AuthService) RefreshToken(refreshToken string) (*LoginOutput, error) {
	operatorID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(operatorID, s.register)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.jwtManager.GenerateRefreshToken(operatorID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		OperatorID:   operatorID,
		Register:     s.register,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// VerifyPasskey checks the maintenance passkey that gates date-wise
// deletion of the ledger. A wrong passkey is a Forbidden rejection with
// no state change.
func (s *AuthService) VerifyPasskey(passkey string) error {
	if !utils.CheckSecretHash(passkey, s.passkeyHash) {
		return apperror.ErrInvalidPasskey
	}
	return nil
}
