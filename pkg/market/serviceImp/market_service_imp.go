package serviceImp

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"morafo/entities"
	repo "morafo/pkg/market/repository"
	"morafo/pkg/market/service"
)

// fetcher is the slice of ai.Client the market needs.
type fetcher interface {
	MarketPrices(ctx context.Context) ([]entities.MarketItem, error)
	MarketListings(ctx context.Context) ([]entities.MarketListing, error)
}

// verifiedShare is the chance a generated listing is shown as verified.
const verifiedShare = 0.4

type marketSvc struct {
	r      repo.MarketRepository
	llm    fetcher
	log    *zap.Logger
	now    func() time.Time
	verify func() bool
}

func NewMarketService(r repo.MarketRepository, llm fetcher, log *zap.Logger) service.MarketService {
	return &marketSvc{
		r:      r,
		llm:    llm,
		log:    log,
		now:    time.Now,
		verify: func() bool { return rand.Float64() < verifiedShare },
	}
}

func (s *marketSvc) Snapshot(ctx context.Context, sessionID string) (*service.Snapshot, error) {
	prices, err := s.r.Prices(sessionID)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return s.Refresh(ctx, sessionID)
	}
	return s.load(sessionID, prices)
}

func (s *marketSvc) Refresh(ctx context.Context, sessionID string) (*service.Snapshot, error) {
	var (
		g         errgroup.Group
		prices    []entities.MarketItem
		generated []entities.MarketListing
	)
	g.Go(func() error {
		p, err := s.llm.MarketPrices(ctx)
		if err != nil || len(p) == 0 {
			s.log.Warn("market prices unavailable, using fallback", zap.Error(err))
			p = service.FallbackPrices()
		}
		prices = p
		return nil
	})
	g.Go(func() error {
		l, err := s.llm.MarketListings(ctx)
		if err != nil || len(l) == 0 {
			s.log.Warn("market listings unavailable, using fallback", zap.Error(err))
			generated = service.FallbackListings()
			return nil
		}
		for i := range l {
			l[i].IsVerified = s.verify()
		}
		generated = l
		return nil
	})
	_ = g.Wait()

	current, err := s.r.Listings(sessionID)
	if err != nil {
		return nil, err
	}
	rekey(current, generated)

	if err := s.r.ReplacePrices(sessionID, prices); err != nil {
		return nil, err
	}
	if err := s.r.ReplaceGenerated(sessionID, generated); err != nil {
		return nil, err
	}
	return s.load(sessionID, nil)
}

// rekey gives generated listings ids that are non-empty and unique against
// the session's own listings and each other.
func rekey(current, generated []entities.MarketListing) {
	seen := make(map[string]bool, len(current)+len(generated))
	for _, l := range current {
		if l.IsUserListing {
			seen[l.ID] = true
		}
	}
	for i := range generated {
		generated[i].IsUserListing = false
		if generated[i].ID == "" || seen[generated[i].ID] {
			generated[i].ID = uuid.NewString()
		}
		seen[generated[i].ID] = true
	}
}

func (s *marketSvc) load(sessionID string, prices []entities.MarketItem) (*service.Snapshot, error) {
	var err error
	if prices == nil {
		if prices, err = s.r.Prices(sessionID); err != nil {
			return nil, err
		}
	}
	listings, err := s.r.Listings(sessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range listings {
		if listings[i].IsUserListing {
			listings[i].Time = timeLabel(listings[i].CreatedAt, now)
		}
	}
	profile, err := s.r.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	return &service.Snapshot{Prices: prices, Listings: listings, Profile: profile}, nil
}

func timeLabel(created, now time.Time) string {
	if now.Sub(created) < time.Minute {
		return "Just now"
	}
	return humanize.RelTime(created, now, "ago", "from now")
}

func (s *marketSvc) Profile(sessionID string) (*entities.FarmerProfile, error) {
	return s.r.Profile(sessionID)
}

func (s *marketSvc) Register(sessionID string, lang entities.Language, form service.RegisterForm) (*entities.FarmerProfile, error) {
	p, err := validateRegistration(form, lang)
	if err != nil {
		return nil, err
	}
	p.SessionID = sessionID
	if err := s.r.SaveProfile(p); err != nil {
		return nil, err
	}
	s.log.Info("farmer registered", zap.String("session", sessionID), zap.String("district", p.District))
	return p, nil
}

func (s *marketSvc) AddListing(sessionID string, lang entities.Language, form service.ListingForm) (*entities.MarketListing, error) {
	p, err := s.r.Profile(sessionID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, service.ErrNotRegistered
	}
	if err := validateListing(&form, lang); err != nil {
		return nil, err
	}

	seller := p.FarmName
	if seller == "" {
		seller = p.Name
	}
	location := form.Location
	if location == "" {
		location = p.Village + ", " + p.District
	}
	l := &entities.MarketListing{
		SessionID:     sessionID,
		ID:            uuid.NewString(),
		Item:          form.Item,
		Price:         "M " + form.Price,
		Location:      location,
		Seller:        seller,
		Type:          form.Type,
		IsUserListing: true,
		IsVerified:    true,
		Contact:       p.Phone,
		CreatedAt:     s.now(),
	}
	if err := s.r.AddListing(l); err != nil {
		return nil, err
	}
	l.Time = timeLabel(l.CreatedAt, s.now())
	return l, nil
}

func trimAll(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}
