package repositoryImp

import (
	"gorm.io/gorm"

	"graze/entities"
	"graze/pkg/feature/repository"
)

type featureRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FeatureRepository { return &featureRepo{db} }

func (r *featureRepo) List(uid string) ([]entities.Feature, error) {
	var out []entities.Feature
	if err := r.db.Where("user_id = ?", uid).Order("feature_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll swaps the user's boundary set wholesale; features are immutable
// after import except by full replacement.
func (r *featureRepo) ReplaceAll(uid string, feats []entities.Feature) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uid).Delete(&entities.Feature{}).Error; err != nil {
			return err
		}
		if len(feats) == 0 {
			return nil
		}
		return tx.Create(&feats).Error
	})
}
