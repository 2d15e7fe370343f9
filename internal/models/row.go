package models

// Row is one spreadsheet record describing a single variant of a product.
// Rows are immutable once loaded.
type Row struct {
	ProductName string `validate:"required"`
	ProductID   int64  `validate:"required"`
	VariantID   int64  `validate:"required"`
	FrontDesign string `validate:"required,url"`
	BackDesign  string `validate:"required,url"`
	InsideLabel string `validate:"omitempty,url"`
	RetailPrice string

	// SourceLine is the 1-based line number in the input file, kept for
	// log lines only.
	SourceLine int
}

// HasLabel reports whether the row carries an inside-label design.
func (r Row) HasLabel() bool {
	return r.InsideLabel != ""
}

// VariantSubmission is a row whose artwork uploads all succeeded. A zero
// LabelFileID means the variant has no inside label.
type VariantSubmission struct {
	VariantID   int64
	FrontFileID int64
	BackFileID  int64
	LabelFileID int64
	RetailPrice string
}

// GroupKey identifies the product a set of rows belongs to.
type GroupKey struct {
	ProductName string
	ProductID   int64
}

// ProductGroup is the ordered set of rows destined to become variants of
// one created product.
type ProductGroup struct {
	Key  GroupKey
	Rows []Row
}

// GroupRows buckets rows by (product name, product id). Groups come back
// in first-seen order, rows within a group in input order.
func GroupRows(rows []Row) []ProductGroup {
	index := make(map[GroupKey]int)
	var groups []ProductGroup

	for _, row := range rows {
		key := GroupKey{ProductName: row.ProductName, ProductID: row.ProductID}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ProductGroup{Key: key})
		}
		groups[i].Rows = append(groups[i].Rows, row)
	}

	return groups
}
