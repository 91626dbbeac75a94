package repository

import "morafo/entities"

type SupplierRepository interface {
	All() []entities.FeedSupplier
	ByDistrict(district string) []entities.FeedSupplier
}
