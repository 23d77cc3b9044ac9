package shopify

import "storefront/internal/domain"

// The Storefront API wraps every list in edges/node pairs; these wire types
// exist only to flatten that shape into plain domain slices.

type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type wireProduct struct {
	ID              string                   `json:"id"`
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	DescriptionHTML string                   `json:"descriptionHtml"`
	Handle          string                   `json:"handle"`
	ProductType     string                   `json:"productType"`
	Options         []domain.ProductOption   `json:"options"`
	Images          connection[domain.Image] `json:"images"`
	PriceRange      struct {
		MinVariantPrice domain.Money `json:"minVariantPrice"`
	} `json:"priceRange"`
	CompareAtPriceRange struct {
		MinVariantPrice *domain.Money `json:"minVariantPrice"`
	} `json:"compareAtPriceRange"`
	Variants connection[wireVariant] `json:"variants"`
}

type wireVariant struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Price            domain.Money            `json:"price"`
	AvailableForSale bool                    `json:"availableForSale"`
	SelectedOptions  []domain.SelectedOption `json:"selectedOptions"`
	Image            *domain.Image           `json:"image"`
}

func (p wireProduct) toDomain() domain.Product {
	variants := make([]domain.Variant, 0, len(p.Variants.Edges))
	for _, v := range p.Variants.nodes() {
		variants = append(variants, domain.Variant{
			ID:               v.ID,
			Title:            v.Title,
			Price:            v.Price,
			AvailableForSale: v.AvailableForSale,
			SelectedOptions:  v.SelectedOptions,
			Image:            v.Image,
		})
	}
	return domain.Product{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DescriptionHTML: p.DescriptionHTML,
		Handle:          p.Handle,
		ProductType:     p.ProductType,
		Options:         p.Options,
		Images:          p.Images.nodes(),
		MinPrice:        p.PriceRange.MinVariantPrice,
		CompareAtPrice:  p.CompareAtPriceRange.MinVariantPrice,
		Variants:        variants,
	}
}

func flattenProducts(conn connection[wireProduct]) []domain.Product {
	out := make([]domain.Product, 0, len(conn.Edges))
	for _, p := range conn.nodes() {
		out = append(out, p.toDomain())
	}
	return out
}

type wireCollection struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Handle      string        `json:"handle"`
	Description string        `json:"description"`
	Image       *domain.Image `json:"image"`
}

type wireCart struct {
	ID    string                   `json:"id"`
	Lines connection[wireCartLine] `json:"lines"`
	Cost  struct {
		TotalAmount domain.Money `json:"totalAmount"`
	} `json:"cost"`
	CheckoutURL string `json:"checkoutUrl"`
}

type wireCartLine struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Merchandise struct {
		ID      string       `json:"id"`
		Title   string       `json:"title"`
		Price   domain.Money `json:"price"`
		Product struct {
			Title  string                   `json:"title"`
			Images connection[domain.Image] `json:"images"`
		} `json:"product"`
	} `json:"merchandise"`
}

func (c wireCart) toDomain() *domain.RemoteCart {
	lines := make([]domain.RemoteCartLine, 0, len(c.Lines.Edges))
	for _, l := range c.Lines.nodes() {
		line := domain.RemoteCartLine{
			ID:           l.ID,
			Quantity:     l.Quantity,
			VariantID:    l.Merchandise.ID,
			VariantTitle: l.Merchandise.Title,
			ProductTitle: l.Merchandise.Product.Title,
			Price:        l.Merchandise.Price,
		}
		if imgs := l.Merchandise.Product.Images.nodes(); len(imgs) > 0 {
			line.Image = imgs[0].URL
		}
		lines = append(lines, line)
	}
	return &domain.RemoteCart{
		ID:          c.ID,
		Lines:       lines,
		TotalAmount: c.Cost.TotalAmount,
		CheckoutURL: c.CheckoutURL,
	}
}
