package asset

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	domain "assettrack-backend/internal/domain/asset"
	"assettrack-backend/internal/domain/audit"
	"assettrack-backend/internal/domain/uow"
	"assettrack-backend/pkg/id"
)

// Usecase covers asset registry management. It never flips an asset between
// AVAILABLE and IN_USE; that pair of transitions belongs to the borrow
// workflow engine. Manual status changes are refused while any active
// request is outstanding.
type Usecase struct {
	assets domain.Repository
	uow    uow.UnitOfWork
}

func NewUsecase(assets domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{assets: assets, uow: tx}
}

var reSerial = regexp.MustCompile(`^[A-Z0-9-]+$`)

func (u *Usecase) Create(ctx context.Context, in CreateAssetInput) (*AssetDTO, error) {
	if len(in.Name) < 2 || len(in.Name) > 100 {
		return nil, errors.New("name must be between 2 and 100 characters")
	}
	if !reSerial.MatchString(in.SerialNumber) {
		return nil, errors.New("serial number must contain only uppercase letters, numbers, and hyphens")
	}
	if in.Cost <= 0 {
		return nil, errors.New("cost must be positive")
	}

	var dto *AssetDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a := &domain.Asset{
			AssetID:      id.NewID32(),
			Name:         in.Name,
			SerialNumber: in.SerialNumber,
			Category:     in.Category,
			Cost:         in.Cost,
			PurchaseDate: in.PurchaseDate,
			ImageURL:     in.ImageURL,
			Status:       domain.StatusAvailable,
		}
		if err := r.Assets.Create(ctx, a); err != nil {
			return err
		}
		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "Asset",
			EntityID:    a.AssetID,
			Action:      audit.ActionAssetCreated,
			NewValue:    fmt.Sprintf("asset %q serial %s", a.Name, a.SerialNumber),
			PerformedBy: in.CreatedBy,
			PerformedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, assetID string) (*AssetDTO, error) {
	a, err := u.assets.GetByAssetID(ctx, assetID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context) ([]AssetDTO, error) {
	rows, err := u.assets.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AssetDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toDTO(&rows[i]))
	}
	return out, nil
}

// SetStatus applies a manual status change (maintenance, damaged, retired,
// back to available). Refused while an active request references the asset,
// so the workflow engine's IN_USE bookkeeping is never clobbered.
func (u *Usecase) SetStatus(ctx context.Context, in SetStatusInput) (*AssetDTO, error) {
	status := domain.Status(in.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	var dto *AssetDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Assets.GetByAssetIDForUpdate(ctx, in.AssetID)
		if err != nil {
			return domain.ErrNotFound
		}
		if a.Status == status {
			dto = toDTO(a)
			return nil
		}

		reserved, err := r.Requests.HasActiveRequestForAsset(ctx, a.AssetID)
		if err != nil {
			return err
		}
		if reserved {
			return domain.ErrReserved
		}

		old := a.Status
		a.Status = status
		if err := r.Assets.Save(ctx, a); err != nil {
			return err
		}
		if err := r.Audits.Create(ctx, &audit.Entry{
			EntityName:  "Asset",
			EntityID:    a.AssetID,
			Action:      audit.ActionStatusChanged,
			OldValue:    string(old),
			NewValue:    string(status),
			PerformedBy: in.ActorID,
			PerformedAt: time.Now().UTC(),
		}); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(a *domain.Asset) *AssetDTO {
	return &AssetDTO{
		AssetID:      a.AssetID,
		Name:         a.Name,
		SerialNumber: a.SerialNumber,
		Category:     a.Category,
		Cost:         a.Cost,
		PurchaseDate: a.PurchaseDate,
		ImageURL:     a.ImageURL,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
	}
}
