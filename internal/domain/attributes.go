package domain

// Style 户型风格
type Style string

const (
	StyleModern      Style = "modern"
	StyleTraditional Style = "traditional"
	StyleMinimal     Style = "minimal"
)

// Attributes is the structured reading of a free-text prompt.
// Counts are what the prompt said; minimums are applied later by the layout synthesizer.
type Attributes struct {
	Bedrooms  int   `json:"bedrooms" yaml:"bedrooms"`
	Bathrooms int   `json:"bathrooms" yaml:"bathrooms"`
	Kitchens  int   `json:"kitchens" yaml:"kitchens"`
	Halls     int   `json:"halls" yaml:"halls"`
	Style     Style `json:"style" yaml:"style"`
	Balcony   bool  `json:"balcony" yaml:"balcony"`
	Garden    bool  `json:"garden" yaml:"garden"`
	Parking   bool  `json:"parking" yaml:"parking"`
}
