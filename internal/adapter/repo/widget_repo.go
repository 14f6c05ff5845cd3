package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"charityd/internal/domain"
	"charityd/internal/sqlinline"
	"charityd/internal/widgetcfg"
)

// WidgetRepositoryPG loads widgets with their stored config rows and the
// relation collections applicable to each widget kind. Relations that do not
// apply to the kind are left unloaded, which the normalizer distinguishes
// from loaded-but-empty.
type WidgetRepositoryPG struct {
	db DB
}

// NewWidgetRepository creates a new widget repo.
func NewWidgetRepository(db DB) *WidgetRepositoryPG {
	return &WidgetRepositoryPG{db: db}
}

// Widget loads a widget and its ordered config rows.
func (r *WidgetRepositoryPG) Widget(ctx context.Context, id uuid.UUID) (*domain.Widget, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetWidget, id)
	var w domain.Widget
	err := row.Scan(&w.ID, &w.SiteID, &w.Kind, &w.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlinline.QListWidgetConfigRows, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var cr domain.ConfigRow
		if err := rows.Scan(&cr.Key, &cr.Value, &cr.Type); err != nil {
			return nil, err
		}
		w.Config = append(w.Config, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &w, nil
}

// Relations loads the collections relevant to the widget's kind.
func (r *WidgetRepositoryPG) Relations(ctx context.Context, w *domain.Widget) (widgetcfg.Injectables, error) {
	var inj widgetcfg.Injectables
	switch w.Kind {
	case domain.WidgetKindMenu:
		items, err := r.menuItems(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.MenuItems = widgetcfg.Loaded(items)
	case domain.WidgetKindHero:
		slides, err := r.heroSlides(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.HeroSlides = widgetcfg.Loaded(slides)
	case domain.WidgetKindSlider:
		slides, err := r.sliderSlides(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.SliderSlides = widgetcfg.Loaded(slides)
	case domain.WidgetKindForm:
		fields, err := r.formFields(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.FormFields = widgetcfg.Loaded(fields)
	case domain.WidgetKindGallery:
		images, err := r.galleryImages(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.Gallery = widgetcfg.Loaded(images)
	case domain.WidgetKindImage:
		settings, err := r.imageSettings(ctx, w.ID)
		if err != nil {
			return inj, err
		}
		inj.ImageSettings = widgetcfg.Loaded(settings)
	}
	return inj, nil
}

func (r *WidgetRepositoryPG) menuItems(ctx context.Context, widgetID uuid.UUID) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWidgetMenuItems, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Title, &it.URL, &it.Type, &it.Order); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *WidgetRepositoryPG) heroSlides(ctx context.Context, widgetID uuid.UUID) ([]domain.HeroSlide, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWidgetHeroSlides, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slides := []domain.HeroSlide{}
	for rows.Next() {
		var s domain.HeroSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.BackgroundImage, &s.ButtonText, &s.ButtonURL, &s.OverlayEnabled, &s.OverlayOpacity, &s.Order); err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

func (r *WidgetRepositoryPG) sliderSlides(ctx context.Context, widgetID uuid.UUID) ([]domain.SliderSlide, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWidgetSliderSlides, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slides := []domain.SliderSlide{}
	for rows.Next() {
		var s domain.SliderSlide
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.BackgroundImage, &s.ButtonText, &s.ButtonURL, &s.OverlayEnabled, &s.OverlayOpacity, &s.Order); err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, rows.Err()
}

func (r *WidgetRepositoryPG) formFields(ctx context.Context, widgetID uuid.UUID) ([]domain.FormField, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWidgetFormFields, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := []domain.FormField{}
	for rows.Next() {
		var f domain.FormField
		if err := rows.Scan(&f.ID, &f.Name, &f.Label, &f.Type, &f.Required, &f.Placeholder, &f.Options, &f.Order); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func (r *WidgetRepositoryPG) galleryImages(ctx context.Context, widgetID uuid.UUID) ([]domain.GalleryImage, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListWidgetGalleryImages, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.GalleryImage{}
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.URL, &img.Alt, &img.Caption, &img.Order); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *WidgetRepositoryPG) imageSettings(ctx context.Context, widgetID uuid.UUID) (*domain.ImageSettings, error) {
	row := r.db.QueryRow(ctx, sqlinline.QGetWidgetImageSettings, widgetID)
	var s domain.ImageSettings
	err := row.Scan(&s.Image, &s.AltText, &s.Caption, &s.Alignment, &s.Size, &s.LinkURL, &s.LinkType, &s.OpenInNewTab)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
