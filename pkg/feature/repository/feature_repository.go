package repository

import "graze/entities"

type FeatureRepository interface {
	List(uid string) ([]entities.Feature, error)
	ReplaceAll(uid string, feats []entities.Feature) error
}
