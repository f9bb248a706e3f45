package service

import (
	"context"
	"log"

	"github.com/stallworks/stallpos-api/internal/domain/repository"
	"github.com/stallworks/stallpos-api/pkg/apperror"
)

// AuthorizationGate guards destructive maintenance operations. Injected
// so the policy (a passkey today) is never compared inline in the logic.
type AuthorizationGate interface {
	VerifyPasskey(passkey string) error
}

// MaintenanceService performs guarded bulk deletion of ledger entries
type MaintenanceService struct {
	saleRepo repository.SaleRepository
	gate     AuthorizationGate
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(saleRepo repository.SaleRepository, gate AuthorizationGate) *MaintenanceService {
	return &MaintenanceService{saleRepo: saleRepo, gate: gate}
}

// PurgeDate deletes every sale recorded on the business date. Two steps
// guard it: the maintenance passkey must match and the caller must have
// confirmed explicitly. The deletion itself is all-or-nothing for the
// matched subset; other dates are never touched.
func (s *MaintenanceService) PurgeDate(ctx context.Context, date, passkey string, confirmed bool) (int64, error) {
	if err := ValidateDate(date); err != nil {
		return 0, err
	}

	if err := s.gate.VerifyPasskey(passkey); err != nil {
		return 0, err
	}

	if !confirmed {
		return 0, apperror.NewBadRequestError("Deletion not confirmed")
	}

	deleted, err := s.saleRepo.DeleteByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	log.Printf("Purged %d sales for %s", deleted, date)
	return deleted, nil
}
