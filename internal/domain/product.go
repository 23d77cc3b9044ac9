package domain

type Product struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	DescriptionHTML string          `json:"descriptionHtml,omitempty"`
	Handle          string          `json:"handle"`
	ProductType     string          `json:"productType,omitempty"`
	Options         []ProductOption `json:"options,omitempty"`
	Images          []Image         `json:"images,omitempty"`
	MinPrice        Money           `json:"minPrice"`
	CompareAtPrice  *Money          `json:"compareAtPrice,omitempty"`
	Variants        []Variant       `json:"variants,omitempty"`
}

type ProductOption struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions,omitempty"`
	Image            *Image           `json:"image,omitempty"`
}

// SelectedOption is one name/value pair of a variant (e.g. Size: M). Display
// order matters, so options are always carried as a slice.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}
