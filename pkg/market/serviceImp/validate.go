package serviceImp

import (
	"slices"
	"unicode/utf8"

	"morafo/entities"
	"morafo/pkg/market/service"
)

func validateRegistration(f service.RegisterForm, lang entities.Language) (*entities.FarmerProfile, error) {
	trimAll(&f.Name, &f.FarmName, &f.District, &f.Village, &f.NationalID, &f.Phone, &f.ProductionType)

	var bad []string
	if f.Name == "" {
		bad = append(bad, "name")
	}
	if f.FarmName == "" {
		bad = append(bad, "farm_name")
	}
	if f.Village == "" {
		bad = append(bad, "village")
	}
	if utf8.RuneCountInString(f.Phone) <= 8 {
		bad = append(bad, "phone")
	}
	if utf8.RuneCountInString(f.NationalID) <= 5 {
		bad = append(bad, "national_id")
	}
	if f.District == "" {
		f.District = entities.DefaultDistrict
	} else if !entities.IsDistrict(f.District) {
		bad = append(bad, "district")
	}
	if f.ProductionType == "" {
		f.ProductionType = service.ProductionTypes[0]
	} else if !slices.Contains(service.ProductionTypes, f.ProductionType) {
		bad = append(bad, "production_type")
	}
	if len(bad) > 0 {
		return nil, &service.ValidationError{
			Message: lang.Pick(
				"Please fill in all required fields (including Shop/Farm Name) to verify your account.",
				"Ke kopa u tlatse lintlha tsohle.",
			),
			Fields: bad,
		}
	}
	return &entities.FarmerProfile{
		Name:           f.Name,
		FarmName:       f.FarmName,
		District:       f.District,
		Village:        f.Village,
		NationalID:     f.NationalID,
		Phone:          f.Phone,
		ProductionType: f.ProductionType,
		IsVerified:     true,
	}, nil
}

func validateListing(f *service.ListingForm, lang entities.Language) error {
	trimAll(&f.Item, &f.Price, &f.Type, &f.Location)

	var bad []string
	if f.Item == "" {
		bad = append(bad, "item")
	}
	if f.Price == "" {
		bad = append(bad, "price")
	}
	switch f.Type {
	case "":
		f.Type = entities.ListingSelling
	case entities.ListingSelling, entities.ListingBuying:
	default:
		bad = append(bad, "type")
	}
	if len(bad) > 0 {
		return &service.ValidationError{
			Message: lang.Pick(
				"Please enter the item name and price.",
				"Ke kopa u kenye lebitso la sehlahisoa le theko.",
			),
			Fields: bad,
		}
	}
	return nil
}
