package domain

// Brand is a product manufacturer or label.
type Brand struct {
	BrandID string `json:"brandID"`
	Name    string `json:"name"`
	AuditFields
}

// UnitSize is a sellable size variant (e.g. "1L", "Gallon", "Sachet").
// Products carry one stock level and SKU per unit size.
type UnitSize struct {
	UnitSizeID string `json:"unitSizeID"`
	Name       string `json:"name"`
	AuditFields
}

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory struct {
	ExpenseCategoryID string `json:"expenseCategoryID"`
	Name              string `json:"name"`
	AuditFields
}
