package entities

type FeedSupplier struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	District string   `json:"district" yaml:"district"`
	Location string   `json:"location" yaml:"location"`
	Brands   []string `json:"brands" yaml:"brands"`
	Phone    string   `json:"phone,omitempty" yaml:"phone"`
}
