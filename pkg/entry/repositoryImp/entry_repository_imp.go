package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"graze/entities"
	"graze/pkg/entry/repository"
)

type entryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EntryRepository { return &entryRepo{db} }

func (r *entryRepo) List(uid string) ([]entities.Entry, error) {
	var out []entities.Entry
	if err := r.db.Where("user_id = ?", uid).Order("pos ASC, entry_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *entryRepo) FindByID(id uint, uid string) (*entities.Entry, error) {
	var e entities.Entry
	if err := r.db.Where("entry_id = ? AND user_id = ?", id, uid).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) Create(e *entities.Entry) error { return r.db.Create(e).Error }

func (r *entryRepo) Update(e *entities.Entry) error { return r.db.Save(e).Error }

func (r *entryRepo) Delete(id uint, uid string) error {
	return r.db.Where("entry_id = ? AND user_id = ?", id, uid).Delete(&entities.Entry{}).Error
}

// ReplaceAll swaps the user's whole list in one transaction. Incoming rows
// are inserted as-is, so callers control whether IDs are fresh.
func (r *entryRepo) ReplaceAll(uid string, entries []entities.Entry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", uid).Delete(&entities.Entry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *entryRepo) SaveAll(entries []entities.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Save(&entries).Error
}

func (r *entryRepo) SeasonStart(uid string) (string, error) {
	var s entities.Setting
	if err := r.db.Where("user_id = ?", uid).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return s.SeasonStart, nil
}

func (r *entryRepo) SetSeasonStart(uid, start string) error {
	s := entities.Setting{UserID: uid, SeasonStart: start}
	return r.db.Save(&s).Error
}
