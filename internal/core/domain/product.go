package domain

// Product is a catalog entry. Stock and SKUs live on the per-unit-size rows,
// not the product itself: the same paint can sell as a 1L tin and a gallon.
type Product struct {
	ProductID   string `json:"productID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	BrandID     string `json:"brandID"`
	BrandName   string `json:"brandName,omitempty"` // joined for display

	UnitSizes []ProductUnitSize `json:"unitSizes,omitempty"`
	AuditFields
}

// ProductUnitSize is one sellable variant of a product.
type ProductUnitSize struct {
	ProductUnitSizeID string `json:"productUnitSizeID"`
	ProductID         string `json:"productID"`
	UnitSizeID        string `json:"unitSizeID"`
	UnitSizeName      string `json:"unitSizeName,omitempty"` // joined for display
	SKU               string `json:"sku"`
	StockLevel        int    `json:"stockLevel"`
	MinStockLevel     int    `json:"minStockLevel"`
}

// IsLowStock reports whether the variant is at or below its reorder point.
func (p ProductUnitSize) IsLowStock() bool {
	return p.StockLevel < p.MinStockLevel
}
