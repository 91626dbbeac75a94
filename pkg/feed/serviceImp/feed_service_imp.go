package serviceImp

import (
	"strings"

	"morafo/entities"
	repo "morafo/pkg/feed/repository"
	"morafo/pkg/feed/service"
)

type feedSvc struct{ r repo.SupplierRepository }

func NewFeedService(r repo.SupplierRepository) service.FeedService { return &feedSvc{r} }

func (s *feedSvc) Districts() []string { return entities.Districts }

func (s *feedSvc) Suppliers(district string, lang entities.Language) service.Result {
	district = strings.TrimSpace(district)
	if district == "" {
		district = entities.DefaultDistrict
	}
	found := s.r.ByDistrict(district)
	res := service.Result{District: district, Suppliers: make([]service.Supplier, 0, len(found))}
	for _, f := range found {
		res.Suppliers = append(res.Suppliers, service.Supplier{FeedSupplier: f, Tel: service.TelLink(f.Phone)})
	}
	if len(res.Suppliers) == 0 {
		res.Hint = service.NoSuppliersHint(district, lang)
	}
	return res
}
