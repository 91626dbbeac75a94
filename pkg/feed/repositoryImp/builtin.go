package repositoryImp

import "morafo/entities"

// Builtin is the supplier table used when no directory file is configured.
func Builtin() []entities.FeedSupplier {
	return []entities.FeedSupplier{
		{ID: "1", Name: "Maseru Mills", District: "Maseru", Location: "Industrial Area, near Station", Brands: []string{"Epol", "Nutri-Feeds"}, Phone: "+266 2231 1234"},
		{ID: "2", Name: "Lesotho Farm Feeds (Yates)", District: "Maseru", Location: "Main North 1, Motimposo", Brands: []string{"Meadow", "Nova"}, Phone: "+266 2232 5678"},
		{ID: "3", Name: "Agrifoods Maseru", District: "Maseru", Location: "Lakeside Area", Brands: []string{"Agrifoods", "Top Lay"}, Phone: "+266 2233 4455"},
		{ID: "4", Name: "Leribe Agrivet", District: "Leribe", Location: "Hlotse Main Street", Brands: []string{"Epol", "Meadow"}, Phone: "+266 2240 1122"},
		{ID: "5", Name: "Maputsoe Mills", District: "Leribe", Location: "Maputsoe Industrial", Brands: []string{"Nutri-Feeds"}, Phone: "+266 2243 3344"},
		{ID: "6", Name: "Mafeteng Farm Supplies", District: "Mafeteng", Location: "Next to Bus Stop", Brands: []string{"Agrifoods"}, Phone: "+266 2270 5566"},
		{ID: "7", Name: "Teyateyaneng Feeds", District: "Berea", Location: "TY Town Centre", Brands: []string{"Nova", "Epol"}, Phone: "+266 2250 8899"},
		{ID: "8", Name: "Mohales Hoek Co-op", District: "Mohale's Hoek", Location: "Main Road South", Brands: []string{"Meadow"}, Phone: "+266 2278 1100"},
		{ID: "9", Name: "Quthing General Dealer", District: "Quthing", Location: "Upper Moyeni", Brands: []string{"Epol", "Generic"}, Phone: "+266 2275 2233"},
		{ID: "10", Name: "Botha-Bothe Agric", District: "Butha-Buthe", Location: "Market Area", Brands: []string{"Nutri-Feeds", "Agrifoods"}, Phone: "+266 2246 1144"},
	}
}
