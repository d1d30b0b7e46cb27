package domain

// DocumentType classifies a stored travel document.
type DocumentType string

const (
	DocumentFlight    DocumentType = "flight"
	DocumentHotel     DocumentType = "hotel"
	DocumentInsurance DocumentType = "insurance"
	DocumentVisa      DocumentType = "visa"
	DocumentOther     DocumentType = "other"
)

// DocumentTypes lists every type in display order.
var DocumentTypes = []DocumentType{
	DocumentFlight,
	DocumentHotel,
	DocumentInsurance,
	DocumentVisa,
	DocumentOther,
}

var documentTypeInfo = map[DocumentType]CategoryInfo{
	DocumentFlight:    {Label: "Flight Ticket", Glyph: "✈️"},
	DocumentHotel:     {Label: "Hotel Booking", Glyph: "🏨"},
	DocumentInsurance: {Label: "Travel Insurance", Glyph: "🛡️"},
	DocumentVisa:      {Label: "Visa", Glyph: "📋"},
	DocumentOther:     {Label: "Other", Glyph: "📄"},
}

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	_, ok := documentTypeInfo[t]
	return ok
}

// Info returns the display metadata for t, falling back to "other".
func (t DocumentType) Info() CategoryInfo {
	if info, ok := documentTypeInfo[t]; ok {
		return info
	}
	return documentTypeInfo[DocumentOther]
}

// Document is a travel document attached to a trip: a ticket, a booking
// confirmation, an insurance policy, and so on. FileURL, when set, points at
// an externally stored file; the record itself holds only metadata.
type Document struct {
	ID                 string       `json:"id"`
	TripID             string       `json:"tripId"`
	Type               DocumentType `json:"type"`
	Title              string       `json:"title"`
	ConfirmationNumber string       `json:"confirmationNumber,omitempty"`
	FileURL            string       `json:"fileUrl,omitempty"`
	Notes              string       `json:"notes,omitempty"`
}
