package domain

// LineItem is one purchasable unit staged in the local cart. Everything but
// the quantity is a snapshot captured when the item was added; it is never
// re-fetched from the catalog afterwards.
type LineItem struct {
	VariantID string          `json:"variantId"`
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Price     Money           `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	Variant   VariantSnapshot `json:"variant"`
}

// VariantSnapshot is the add-time capture of the chosen variant, kept for
// display in the cart drawer.
type VariantSnapshot struct {
	Title           string           `json:"title"`
	SelectedOptions []SelectedOption `json:"selectedOptions"`
}

// RemoteCart is the checkout-platform-owned cart. The storefront creates one
// per checkout attempt, writes lines into it and follows its CheckoutURL; it
// never mutates one after handoff.
type RemoteCart struct {
	ID          string           `json:"id"`
	Lines       []RemoteCartLine `json:"lines"`
	TotalAmount Money            `json:"totalAmount"`
	CheckoutURL string           `json:"checkoutUrl"`
}

type RemoteCartLine struct {
	ID           string `json:"id"`
	Quantity     int    `json:"quantity"`
	VariantID    string `json:"variantId"`
	VariantTitle string `json:"variantTitle,omitempty"`
	ProductTitle string `json:"productTitle,omitempty"`
	Price        Money  `json:"price"`
	Image        string `json:"image,omitempty"`
}

// CartLineInput is what the platform accepts when adding or updating lines.
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}
