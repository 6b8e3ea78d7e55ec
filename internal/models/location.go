package models

// Location pertence a exatamente uma loja.
type Location struct {
	ID           string `json:"id"`
	ShopID       string `json:"shop_id"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
