package serviceImp

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"morafo/database/dbtest"
	"morafo/entities"
	"morafo/pkg/ai"
	"morafo/pkg/market/repositoryImp"
	"morafo/pkg/market/service"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
		// started by an init in the genai dependency tree
		goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
	)
}

type stubFetcher struct {
	prices      []entities.MarketItem
	listings    []entities.MarketListing
	pricesErr   error
	listingsErr error
	calls       atomic.Int32
}

func (s *stubFetcher) MarketPrices(context.Context) ([]entities.MarketItem, error) {
	s.calls.Add(1)
	return s.prices, s.pricesErr
}

func (s *stubFetcher) MarketListings(context.Context) ([]entities.MarketListing, error) {
	s.calls.Add(1)
	// a fresh copy so the service's edits never leak between calls
	return append([]entities.MarketListing(nil), s.listings...), s.listingsErr
}

var (
	ignoreItemStorage    = cmpopts.IgnoreFields(entities.MarketItem{}, "RowID", "SessionID", "Position")
	ignoreListingStorage = cmpopts.IgnoreFields(entities.MarketListing{}, "RowID", "SessionID", "Position", "CreatedAt")
)

func newSvc(t *testing.T, f fetcher) *marketSvc {
	svc := NewMarketService(repositoryImp.New(dbtest.New(t)), f, zap.NewNop()).(*marketSvc)
	svc.verify = func() bool { return true }
	return svc
}

var validForm = service.RegisterForm{
	Name:       "Thabo Mokoena",
	FarmName:   "Mokoena Poultry",
	District:   "Leribe",
	Village:    "Hlotse",
	NationalID: "0123456789",
	Phone:      "+266 5800 1234",
}

func TestRefresh_BothFail(t *testing.T) {
	f := &stubFetcher{pricesErr: ai.ErrUnavailable, listingsErr: errors.New("boom")}
	svc := newSvc(t, f)
	ctx := context.Background()

	_, err := svc.Register("s1", entities.English, validForm)
	require.NoError(t, err)
	mine, err := svc.AddListing("s1", entities.English, service.ListingForm{Item: "Eggs", Price: "70"})
	require.NoError(t, err)

	snap, err := svc.Refresh(ctx, "s1")
	require.NoError(t, err)

	if diff := cmp.Diff(service.FallbackPrices(), snap.Prices, ignoreItemStorage); diff != "" {
		t.Errorf("prices (-want +got):\n%s", diff)
	}
	require.Len(t, snap.Listings, len(service.FallbackListings())+1)
	assert.Equal(t, mine.ID, snap.Listings[0].ID)
	assert.True(t, snap.Listings[0].IsUserListing)
	if diff := cmp.Diff(service.FallbackListings(), snap.Listings[1:], ignoreListingStorage); diff != "" {
		t.Errorf("listings (-want +got):\n%s", diff)
	}
}

func TestRefresh_EmptyResultsFallBack(t *testing.T) {
	svc := newSvc(t, &stubFetcher{})
	snap, err := svc.Refresh(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, snap.Prices, len(service.FallbackPrices()))
	assert.Len(t, snap.Listings, len(service.FallbackListings()))
}

func TestRefresh_IndependentFallbacks(t *testing.T) {
	f := &stubFetcher{
		prices:      []entities.MarketItem{{Name: "Egg Tray", Price: 80, Unit: "tray", Trend: entities.TrendUp}},
		listingsErr: ai.ErrMalformed,
	}
	snap, err := newSvc(t, f).Refresh(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snap.Prices, 1)
	assert.Equal(t, "Egg Tray", snap.Prices[0].Name)
	if diff := cmp.Diff(service.FallbackListings(), snap.Listings, ignoreListingStorage); diff != "" {
		t.Errorf("listings (-want +got):\n%s", diff)
	}
}

func TestRefresh_GeneratedListings(t *testing.T) {
	f := &stubFetcher{
		pricesErr: ai.ErrUnavailable,
		listings: []entities.MarketListing{
			{ID: "1", Item: "Cobb 500 chicks", Price: "M 12", Type: entities.ListingSelling},
			{ID: "", Item: "Drinkers", Price: "Negotiable", Type: entities.ListingBuying},
			{ID: "1", Item: "Boschveld", Price: "M 150", Type: entities.ListingSelling},
		},
	}
	svc := newSvc(t, f)
	var n int
	svc.verify = func() bool { n++; return n%2 == 1 }

	snap, err := svc.Refresh(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, snap.Listings, 3)
	assert.Equal(t, []string{"Cobb 500 chicks", "Drinkers", "Boschveld"},
		[]string{snap.Listings[0].Item, snap.Listings[1].Item, snap.Listings[2].Item})
	assert.Equal(t, "1", snap.Listings[0].ID)
	assert.NotEmpty(t, snap.Listings[1].ID)
	assert.NotEqual(t, "1", snap.Listings[2].ID)
	assert.Equal(t, []bool{true, false, true},
		[]bool{snap.Listings[0].IsVerified, snap.Listings[1].IsVerified, snap.Listings[2].IsVerified})
}

func TestRefresh_KeepsUserListingsAndReplacesGenerated(t *testing.T) {
	f := &stubFetcher{listings: []entities.MarketListing{{ID: "x", Item: "first batch"}}}
	svc := newSvc(t, f)
	ctx := context.Background()

	_, err := svc.Register("s1", entities.English, validForm)
	require.NoError(t, err)
	a, err := svc.AddListing("s1", entities.English, service.ListingForm{Item: "Rabbits", Price: "150"})
	require.NoError(t, err)
	b, err := svc.AddListing("s1", entities.English, service.ListingForm{Item: "Cages", Price: "900", Type: entities.ListingBuying})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, "s1")
	require.NoError(t, err)

	f.listings = []entities.MarketListing{{ID: a.ID, Item: "collides with a user listing"}, {ID: "y", Item: "second batch"}}
	snap, err := svc.Refresh(ctx, "s1")
	require.NoError(t, err)

	ids := make([]string, 0, len(snap.Listings))
	for _, l := range snap.Listings {
		ids = append(ids, l.ID)
	}
	require.Len(t, ids, 4)
	assert.Equal(t, []string{b.ID, a.ID}, ids[:2], "user listings first, newest first")
	assert.NotEqual(t, a.ID, ids[2])
	assert.Equal(t, "y", ids[3])
	for _, l := range snap.Listings[2:] {
		assert.NotEqual(t, "first batch", l.Item)
	}
}

func TestSnapshot_RefreshesOnlyOnce(t *testing.T) {
	f := &stubFetcher{pricesErr: ai.ErrUnavailable, listingsErr: ai.ErrUnavailable}
	svc := newSvc(t, f)
	ctx := context.Background()

	_, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	snap, err := svc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.calls.Load())
	assert.Nil(t, snap.Profile)
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name   string
		edit   func(f *service.RegisterForm)
		fields []string
	}{
		{"missing name", func(f *service.RegisterForm) { f.Name = " " }, []string{"name"}},
		{"missing farm", func(f *service.RegisterForm) { f.FarmName = "" }, []string{"farm_name"}},
		{"missing village", func(f *service.RegisterForm) { f.Village = "" }, []string{"village"}},
		{"default phone prefix only", func(f *service.RegisterForm) { f.Phone = "+266 " }, []string{"phone"}},
		{"short id", func(f *service.RegisterForm) { f.NationalID = "12345" }, []string{"national_id"}},
		{"unknown district", func(f *service.RegisterForm) { f.District = "Gauteng" }, []string{"district"}},
		{"unknown activity", func(f *service.RegisterForm) { f.ProductionType = "Mining" }, []string{"production_type"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSvc(t, &stubFetcher{})
			form := validForm
			tc.edit(&form)

			_, err := svc.Register("s1", entities.Sesotho, form)
			var ve *service.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.fields, ve.Fields)
			assert.Equal(t, "Ke kopa u tlatse lintlha tsohle.", ve.Message)

			p, err := svc.Profile("s1")
			require.NoError(t, err)
			assert.Nil(t, p)
		})
	}
}

func TestRegister_DefaultsAndReplace(t *testing.T) {
	svc := newSvc(t, &stubFetcher{})
	form := validForm
	form.District, form.ProductionType = "", ""

	p, err := svc.Register("s1", entities.English, form)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultDistrict, p.District)
	assert.Equal(t, "Livestock (Liphoofolo)", p.ProductionType)
	assert.True(t, p.IsVerified)

	form.FarmName = "Hlotse Hatchery"
	_, err = svc.Register("s1", entities.English, form)
	require.NoError(t, err)
	got, err := svc.Profile("s1")
	require.NoError(t, err)
	assert.Equal(t, "Hlotse Hatchery", got.FarmName)
}

func TestAddListing(t *testing.T) {
	svc := newSvc(t, &stubFetcher{})
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.AddListing("s1", entities.English, service.ListingForm{Item: "Eggs", Price: "70"})
	assert.ErrorIs(t, err, service.ErrNotRegistered)

	_, err = svc.Register("s1", entities.English, validForm)
	require.NoError(t, err)

	_, err = svc.AddListing("s1", entities.English, service.ListingForm{Item: "", Price: ""})
	var ve *service.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"item", "price"}, ve.Fields)

	l, err := svc.AddListing("s1", entities.English, service.ListingForm{Item: "Point of Lay", Price: "180"})
	require.NoError(t, err)
	assert.Equal(t, "M 180", l.Price)
	assert.Equal(t, "Hlotse, Leribe", l.Location)
	assert.Equal(t, "Mokoena Poultry", l.Seller)
	assert.Equal(t, entities.ListingSelling, l.Type)
	assert.Equal(t, "+266 5800 1234", l.Contact)
	assert.Equal(t, "Just now", l.Time)
	assert.True(t, l.IsUserListing)
	assert.True(t, l.IsVerified)
}

func TestTimeLabel(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", timeLabel(now.Add(-30*time.Second), now))
	assert.Equal(t, "5 minutes ago", timeLabel(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2 hours ago", timeLabel(now.Add(-2*time.Hour), now))
}
