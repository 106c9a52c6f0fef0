package repository

import "graze/entities"

type EntryRepository interface {
	List(uid string) ([]entities.Entry, error) // ordered by pos
	FindByID(id uint, uid string) (*entities.Entry, error)
	Create(e *entities.Entry) error
	Update(e *entities.Entry) error
	Delete(id uint, uid string) error
	ReplaceAll(uid string, entries []entities.Entry) error
	SaveAll(entries []entities.Entry) error

	SeasonStart(uid string) (string, error)
	SetSeasonStart(uid, start string) error
}
