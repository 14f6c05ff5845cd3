package widgetcfg

import (
	"charityd/internal/domain"
	"charityd/internal/storage"
)

// UI-shaped projections of the relation records. Field sets are part of the
// rendered widget contract consumed by the embed script; changing a json tag
// here is a breaking change for deployed widgets.

type MenuItemView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

type SlideView struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	BackgroundImage string `json:"background_image"`
	ButtonText      string `json:"button_text"`
	ButtonURL       string `json:"button_url"`
	OverlayEnabled  bool   `json:"overlay_enabled"`
	OverlayOpacity  int    `json:"overlay_opacity"`
	Order           int    `json:"order"`
}

type FormFieldView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder"`
	Options     []string `json:"options"`
	Order       int      `json:"order"`
}

type GalleryImageView struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

// menuItemViews drops entries with neither a title nor a target; one broken
// row must not abort the whole render.
func menuItemViews(items []domain.MenuItem) []MenuItemView {
	views := make([]MenuItemView, 0, len(items))
	for _, it := range items {
		if it.Title == "" && it.URL == "" {
			continue
		}
		views = append(views, MenuItemView{
			ID:    it.ID.String(),
			Title: it.Title,
			URL:   it.URL,
			Type:  it.Type,
		})
	}
	return views
}

func heroSlideViews(slides []domain.HeroSlide) []SlideView {
	views := make([]SlideView, 0, len(slides))
	for _, s := range slides {
		if s.Title == "" && s.BackgroundImage == "" {
			continue
		}
		views = append(views, SlideView{
			ID:              s.ID.String(),
			Title:           s.Title,
			Subtitle:        s.Subtitle,
			BackgroundImage: storage.CanonicalURL(s.BackgroundImage),
			ButtonText:      s.ButtonText,
			ButtonURL:       s.ButtonURL,
			OverlayEnabled:  s.OverlayEnabled,
			OverlayOpacity:  s.OverlayOpacity,
			Order:           s.Order,
		})
	}
	return views
}

func sliderSlideViews(slides []domain.SliderSlide) []SlideView {
	views := make([]SlideView, 0, len(slides))
	for _, s := range slides {
		if s.Title == "" && s.BackgroundImage == "" {
			continue
		}
		views = append(views, SlideView{
			ID:              s.ID.String(),
			Title:           s.Title,
			Subtitle:        s.Subtitle,
			BackgroundImage: storage.CanonicalURL(s.BackgroundImage),
			ButtonText:      s.ButtonText,
			ButtonURL:       s.ButtonURL,
			OverlayEnabled:  s.OverlayEnabled,
			OverlayOpacity:  s.OverlayOpacity,
			Order:           s.Order,
		})
	}
	return views
}

func formFieldViews(fields []domain.FormField) []FormFieldView {
	views := make([]FormFieldView, 0, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			continue
		}
		options := f.Options
		if options == nil {
			options = []string{}
		}
		views = append(views, FormFieldView{
			ID:          f.ID.String(),
			Name:        f.Name,
			Label:       f.Label,
			Type:        f.Type,
			Required:    f.Required,
			Placeholder: f.Placeholder,
			Options:     options,
			Order:       f.Order,
		})
	}
	return views
}

func galleryImageViews(images []domain.GalleryImage) []GalleryImageView {
	views := make([]GalleryImageView, 0, len(images))
	for _, img := range images {
		if img.URL == "" {
			continue
		}
		views = append(views, GalleryImageView{
			ID:      img.ID.String(),
			URL:     storage.CanonicalURL(img.URL),
			Alt:     img.Alt,
			Caption: img.Caption,
			Order:   img.Order,
		})
	}
	return views
}
