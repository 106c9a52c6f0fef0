package service

import "graze/entities"

type DraftService interface {
	// Save snapshots the live list and season start under a year key.
	Save(uid, label string) (*entities.Draft, error)
	// ListByYear groups the user's drafts by year, append order preserved.
	ListByYear(uid string) (map[int][]entities.Draft, error)
	// Load replaces the live list and season start wholesale; restored
	// entries get fresh identities.
	Load(uid string, draftID uint) error
	Delete(uid string, draftID uint) error
}
