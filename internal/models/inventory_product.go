package models

type InventoryProduct struct {
	ID          string `json:"id"`
	ShopID      string `json:"shop_id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`

	PriceCents       int `json:"price_cents"`
	StockOnHand      int `json:"stock_on_hand"`
	ReorderThreshold int `json:"reorder_threshold"`

	Active   bool   `json:"active"`
	ImageURL string `json:"image_url,omitempty"`
}
