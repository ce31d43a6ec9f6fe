package core

// Field identifies a canonical schema attribute of a line item.
// Raw header labels are mapped onto these via the synonym table.
type Field string

const (
	FieldPartNumber     Field = "partNumber"
	FieldDescription    Field = "description"
	FieldCategory       Field = "category"
	FieldQuantity       Field = "quantity"
	FieldUnit           Field = "unit"
	FieldUnitCost       Field = "unitCost"
	FieldSupplier       Field = "supplier"
	FieldLeadTime       Field = "leadTime"
	FieldDigikeyPN      Field = "digikeyPN"
	FieldManufacturerPN Field = "manufacturerPN"
	FieldMinStock       Field = "minStock"
	FieldStatus         Field = "status"
)

// FieldKind is the expected value kind for a canonical field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInteger
	KindCurrency
)

// fieldKinds maps each canonical field to its coercion rule.
var fieldKinds = map[Field]FieldKind{
	FieldPartNumber:     KindText,
	FieldDescription:    KindText,
	FieldCategory:       KindText,
	FieldQuantity:       KindInteger,
	FieldUnit:           KindText,
	FieldUnitCost:       KindCurrency,
	FieldSupplier:       KindText,
	FieldLeadTime:       KindInteger,
	FieldDigikeyPN:      KindText,
	FieldManufacturerPN: KindText,
	FieldMinStock:       KindInteger,
	FieldStatus:         KindText,
}

// Item is one normalized line item. Every canonical field is always present
// with a type-correct value: numeric fields default rather than staying unset,
// and ExtendedCost is recomputed from Quantity and UnitCost, never trusted
// from input.
type Item struct {
	PartNumber     string  `json:"partNumber"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Quantity       int     `json:"quantity"`
	Unit           string  `json:"unit"`
	UnitCost       float64 `json:"unitCost"`
	ExtendedCost   float64 `json:"extendedCost"`
	Supplier       string  `json:"supplier"`
	LeadTime       int     `json:"leadTime"`
	DigikeyPN      string  `json:"digikeyPN"`
	ManufacturerPN string  `json:"manufacturerPN"`
	MinStock       int     `json:"minStock"`
	Status         string  `json:"status"`
}

// ParseResult is the output of the natural-language extractor: one candidate
// item, the recognized specification tokens that produced it, and a confidence
// score in [0,1] reflecting how much of the input was recognized.
type ParseResult struct {
	Item       Item              `json:"item"`
	Confidence float64           `json:"confidence"`
	Input      string            `json:"input"`
	Specs      map[string]string `json:"specs"`
}

// CatalogItem is the slice of an existing catalog entry the similarity engine
// needs. Callers typically build these from stored inventory records.
type CatalogItem struct {
	PartNumber  string `json:"partNumber"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Suggestion references one catalog entry judged similar to a free-text input.
// CatalogIndex points back into the catalog slice passed to [Suggest], so the
// caller keeps item identity without copies.
type Suggestion struct {
	CatalogIndex int     `json:"catalogIndex"`
	PartNumber   string  `json:"partNumber"`
	Description  string  `json:"description"`
	Score        float64 `json:"score"`
	Reason       string  `json:"reason"`
}

// HeaderCandidate is one scored row from header inference. Candidates are
// returned as diagnostics when no header is found.
type HeaderCandidate struct {
	Index int      `json:"index"`
	Row   []string `json:"row"`
	Score int      `json:"score"`
}
