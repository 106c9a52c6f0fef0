package repository

import "graze/entities"

type DraftRepository interface {
	Create(d *entities.Draft) error
	FindByID(id uint, uid string) (*entities.Draft, error)
	List(uid string) ([]entities.Draft, error) // append order within each year
	Delete(id uint, uid string) error
}
