package mysql

import (
	"context"

	assetDomain "assettrack-backend/internal/domain/asset"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssetRepository struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) *AssetRepository { return &AssetRepository{db: db} }

func (r *AssetRepository) Create(ctx context.Context, a *assetDomain.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssetRepository) Save(ctx context.Context, a *assetDomain.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AssetRepository) GetByAssetID(ctx context.Context, assetID string) (*assetDomain.Asset, error) {
	var out assetDomain.Asset
	res := r.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&out)
	return &out, res.Error
}

// GetByAssetIDForUpdate takes a row lock; only meaningful inside a
// transaction.
func (r *AssetRepository) GetByAssetIDForUpdate(ctx context.Context, assetID string) (*assetDomain.Asset, error) {
	var out assetDomain.Asset
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("asset_id = ?", assetID).
		First(&out)
	return &out, res.Error
}

func (r *AssetRepository) List(ctx context.Context) ([]assetDomain.Asset, error) {
	var out []assetDomain.Asset
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}
