package repositoryImp

import (
	"gorm.io/gorm"

	"graze/entities"
	"graze/pkg/draft/repository"
)

type draftRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.DraftRepository { return &draftRepo{db} }

func (r *draftRepo) Create(d *entities.Draft) error { return r.db.Create(d).Error }

func (r *draftRepo) FindByID(id uint, uid string) (*entities.Draft, error) {
	var d entities.Draft
	if err := r.db.Where("draft_id = ? AND user_id = ?", id, uid).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *draftRepo) List(uid string) ([]entities.Draft, error) {
	var out []entities.Draft
	if err := r.db.Where("user_id = ?", uid).Order("year ASC, draft_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *draftRepo) Delete(id uint, uid string) error {
	return r.db.Where("draft_id = ? AND user_id = ?", id, uid).Delete(&entities.Draft{}).Error
}
