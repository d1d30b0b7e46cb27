package domain

// PackingCategory groups packing checklist items.
type PackingCategory string

const (
	PackingClothes     PackingCategory = "clothes"
	PackingToiletries  PackingCategory = "toiletries"
	PackingElectronics PackingCategory = "electronics"
	PackingDocuments   PackingCategory = "documents"
	PackingOther       PackingCategory = "other"
)

// PackingCategories lists every category in the fixed order used by packing
// progress breakdowns.
var PackingCategories = []PackingCategory{
	PackingClothes,
	PackingToiletries,
	PackingElectronics,
	PackingDocuments,
	PackingOther,
}

var packingCategoryInfo = map[PackingCategory]CategoryInfo{
	PackingClothes:     {Label: "Clothes", Glyph: "👕"},
	PackingToiletries:  {Label: "Toiletries", Glyph: "🧴"},
	PackingElectronics: {Label: "Electronics", Glyph: "📱"},
	PackingDocuments:   {Label: "Documents", Glyph: "📋"},
	PackingOther:       {Label: "Other", Glyph: "🎒"},
}

// Valid reports whether c is one of the known packing categories.
func (c PackingCategory) Valid() bool {
	_, ok := packingCategoryInfo[c]
	return ok
}

// Info returns the display metadata for c, falling back to "other".
func (c PackingCategory) Info() CategoryInfo {
	if info, ok := packingCategoryInfo[c]; ok {
		return info
	}
	return packingCategoryInfo[PackingOther]
}

// PackingItem is one entry on a trip's packing checklist.
type PackingItem struct {
	ID       string          `json:"id"`
	TripID   string          `json:"tripId"`
	Category PackingCategory `json:"category"`
	Item     string          `json:"item"`
	Quantity int             `json:"quantity"`
	Packed   bool            `json:"packed"`
}
