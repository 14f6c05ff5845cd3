// Package widgetcfg merges a widget's stored configuration with its
// optionally-loaded relation collections into one renderable config. Every
// injected value is kept in two representations that must always agree: the
// nested Injected map for new consumers and the flat compat list for legacy
// ones. The compat list is a pure projection of the nested data, never
// maintained by hand.
package widgetcfg

import (
	"encoding/json"

	"charityd/internal/domain"
	"charityd/internal/storage"
)

// Injection keys for the relation collections.
const (
	KeyMenuItems     = "menu_items"
	KeyHeroSlides    = "hero_slides"
	KeySliderSlides  = "slides"
	KeyFormFields    = "form_fields"
	KeyGalleryImages = "gallery_images"
)

// Config value types used in the flat compat representation.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeJSON    = "json"
)

// CompatEntry is one row of the flat key/value/type list expected by legacy
// widget consumers.
type CompatEntry struct {
	Key   string `json:"config_key"`
	Value string `json:"config_value"`
	Type  string `json:"config_type"`
}

// Injectables carries the relation collections for one widget. Each field is
// tri-state: not loaded, loaded empty, or loaded with records.
type Injectables struct {
	MenuItems     Maybe[[]domain.MenuItem]
	HeroSlides    Maybe[[]domain.HeroSlide]
	SliderSlides  Maybe[[]domain.SliderSlide]
	FormFields    Maybe[[]domain.FormField]
	Gallery       Maybe[[]domain.GalleryImage]
	ImageSettings Maybe[*domain.ImageSettings]
}

// NormalizedConfig is the renderable result. Base holds the stored config
// (plus the image-settings overlay), Injected the relation collections, and
// CompatList the flat projection of both.
type NormalizedConfig struct {
	Base       map[string]any `json:"base"`
	Injected   map[string]any `json:"injected"`
	CompatList []CompatEntry  `json:"compat_list"`
}

// Normalize builds the renderable configuration. It is deterministic:
// identical inputs always produce an identical result, so outputs are safe
// to cache and snapshot.
func Normalize(base []domain.ConfigRow, inj Injectables) NormalizedConfig {
	cfg := NormalizedConfig{
		Base:       make(map[string]any, len(base)),
		Injected:   map[string]any{},
		CompatList: make([]CompatEntry, 0, len(base)+8),
	}

	for _, row := range base {
		cfg.Base[row.Key] = decodeValue(row.Value, row.Type)
		cfg.CompatList = append(cfg.CompatList, CompatEntry{Key: row.Key, Value: row.Value, Type: row.Type})
	}

	if items, ok := inj.MenuItems.Get(); ok && len(items) > 0 {
		cfg.inject(KeyMenuItems, menuItemViews(items))
	}
	if slides, ok := inj.HeroSlides.Get(); ok && len(slides) > 0 {
		cfg.inject(KeyHeroSlides, heroSlideViews(slides))
	}
	if slides, ok := inj.SliderSlides.Get(); ok && len(slides) > 0 {
		cfg.inject(KeySliderSlides, sliderSlideViews(slides))
	}
	if fields, ok := inj.FormFields.Get(); ok && len(fields) > 0 {
		cfg.inject(KeyFormFields, formFieldViews(fields))
	}
	if images, ok := inj.Gallery.Get(); ok && len(images) > 0 {
		cfg.inject(KeyGalleryImages, galleryImageViews(images))
	}
	if settings, ok := inj.ImageSettings.Get(); ok && settings != nil {
		cfg.overlayImageSettings(settings)
	}

	return cfg
}

// inject writes one relation into both representations.
func (c *NormalizedConfig) inject(key string, value any) {
	c.Injected[key] = value
	c.CompatList = append(c.CompatList, CompatEntry{
		Key:   key,
		Value: encodeJSON(value),
		Type:  TypeJSON,
	})
}

// overlayImageSettings flattens the image widget's settings record into the
// top level of the config instead of nesting it under one key. Deployed
// image widgets read these fields flat; this is a deliberate exception to
// the one-key-per-relation rule.
func (c *NormalizedConfig) overlayImageSettings(s *domain.ImageSettings) {
	c.setString("image", storage.CanonicalURL(s.Image))
	c.setString("altText", s.AltText)
	c.setString("caption", s.Caption)
	c.setString("alignment", s.Alignment)
	c.setString("size", s.Size)
	c.setString("linkUrl", s.LinkURL)
	c.setString("linkType", s.LinkType)
	c.setBool("openInNewTab", s.OpenInNewTab)
}

func (c *NormalizedConfig) setString(key, value string) {
	c.Base[key] = value
	c.CompatList = append(c.CompatList, CompatEntry{Key: key, Value: value, Type: TypeString})
}

func (c *NormalizedConfig) setBool(key string, value bool) {
	c.Base[key] = value
	encoded := "0"
	if value {
		encoded = "1"
	}
	c.CompatList = append(c.CompatList, CompatEntry{Key: key, Value: encoded, Type: TypeBoolean})
}

// CompatMap decodes the flat list back into a nested map. Normalization
// guarantees CompatMap(CompatList) equals Base merged with Injected; tests
// rely on that round-trip.
func CompatMap(entries []CompatEntry) map[string]any {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		m[e.Key] = decodeValue(e.Value, e.Type)
	}
	return m
}

// decodeValue interprets a stored config value by its declared type. A
// malformed json value degrades to the raw string rather than failing the
// render.
func decodeValue(value, typ string) any {
	switch typ {
	case TypeBoolean:
		return value == "1"
	case TypeJSON:
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err != nil {
			return value
		}
		return decoded
	default:
		return value
	}
}

func encodeJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}
