package model

// SearchFilter represents structured search intent extracted from a natural
// language message. Every field is optional: a nil field adds no constraint,
// it never means "false".
type SearchFilter struct {
	MaxPrice       *float64        `json:"max_price,omitempty"`
	Bedrooms       *int            `json:"bedrooms,omitempty"`
	ZoneName       *string         `json:"zone_name,omitempty"`
	HasParking     *bool           `json:"has_parking,omitempty"`
	HasPets        *bool           `json:"has_pets,omitempty"`
	Smokes         *bool           `json:"smokes,omitempty"`
	EmploymentType *EmploymentType `json:"employment_type,omitempty"`
	NeedsParking   *bool           `json:"needs_parking,omitempty"`
}

// SearchResult is the response payload for an assistant search turn.
type SearchResult struct {
	ExtractedFilters *SearchFilter `json:"extracted_filters"`
	Properties       []Property    `json:"properties"`
}
