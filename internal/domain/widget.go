package domain

import "github.com/google/uuid"

// WidgetKind enumerates the supported embeddable widget types.
type WidgetKind string

const (
	WidgetKindMenu    WidgetKind = "menu"
	WidgetKindHero    WidgetKind = "hero"
	WidgetKindSlider  WidgetKind = "slider"
	WidgetKindForm    WidgetKind = "form"
	WidgetKindGallery WidgetKind = "gallery"
	WidgetKindImage   WidgetKind = "image"
	WidgetKindText    WidgetKind = "text"
)

// Widget is a configurable block placed on a site page. Its stored
// configuration is a flat ordered list of typed key/value rows.
type Widget struct {
	ID     uuid.UUID
	SiteID uuid.UUID
	Kind   WidgetKind
	Title  string
	Config []ConfigRow
}

// ConfigRow is one stored configuration entry. Type is "string", "boolean"
// or "json"; boolean values are stored as "1"/"0".
type ConfigRow struct {
	Key   string
	Value string
	Type  string
}

// MenuItem is a navigation entry attached to a menu widget.
type MenuItem struct {
	ID    uuid.UUID
	Title string
	URL   string
	Type  string
	Order int
}

// HeroSlide is a full-bleed slide with optional call-to-action button and
// darkening overlay.
type HeroSlide struct {
	ID              uuid.UUID
	Title           string
	Subtitle        string
	BackgroundImage string
	ButtonText      string
	ButtonURL       string
	OverlayEnabled  bool
	OverlayOpacity  int
	Order           int
}

// SliderSlide is a carousel slide; same shape as a hero slide.
type SliderSlide struct {
	ID              uuid.UUID
	Title           string
	Subtitle        string
	BackgroundImage string
	ButtonText      string
	ButtonURL       string
	OverlayEnabled  bool
	OverlayOpacity  int
	Order           int
}

// FormField describes one input of a form widget.
type FormField struct {
	ID          uuid.UUID
	Name        string
	Label       string
	Type        string
	Required    bool
	Placeholder string
	Options     []string
	Order       int
}

// GalleryImage is one image of a gallery widget.
type GalleryImage struct {
	ID      uuid.UUID
	URL     string
	Alt     string
	Caption string
	Order   int
}

// ImageSettings is the single settings record of an image widget. Unlike the
// collection relations it is flattened into the top level of the rendered
// configuration.
type ImageSettings struct {
	Image        string
	AltText      string
	Caption      string
	Alignment    string
	Size         string
	LinkURL      string
	LinkType     string
	OpenInNewTab bool
}
