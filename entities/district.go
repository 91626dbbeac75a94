package entities

// Districts are the ten districts of Lesotho, in the order forms list them.
var Districts = []string{
	"Maseru", "Berea", "Leribe", "Butha-Buthe", "Mokhotlong",
	"Thaba-Tseka", "Qacha's Nek", "Quthing", "Mohale's Hoek", "Mafeteng",
}

const DefaultDistrict = "Maseru"

func IsDistrict(s string) bool {
	for _, d := range Districts {
		if d == s {
			return true
		}
	}
	return false
}
