package repositoryImp

import (
	"sync"

	"morafo/entities"
	"morafo/pkg/feed/repository"
)

// Directory is an in-memory supplier table that a watcher may swap at runtime.
type Directory struct {
	mu        sync.RWMutex
	suppliers []entities.FeedSupplier
}

var _ repository.SupplierRepository = (*Directory)(nil)

func NewDirectory(suppliers []entities.FeedSupplier) *Directory {
	return &Directory{suppliers: suppliers}
}

func (d *Directory) All() []entities.FeedSupplier {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]entities.FeedSupplier(nil), d.suppliers...)
}

// ByDistrict matches the district name exactly, keeping table order.
func (d *Directory) ByDistrict(district string) []entities.FeedSupplier {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := []entities.FeedSupplier{}
	for _, s := range d.suppliers {
		if s.District == district {
			out = append(out, s)
		}
	}
	return out
}

func (d *Directory) Replace(suppliers []entities.FeedSupplier) {
	d.mu.Lock()
	d.suppliers = suppliers
	d.mu.Unlock()
}
