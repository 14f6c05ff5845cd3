package sqlinline

const QGetWidget = `--sql 63b1afd7-aed6-415b-b073-2acecec5ac17
select id, site_id, kind, title
from widgets
where id = $1::uuid;
`

const QListWidgetConfigRows = `--sql 7549c5e6-d57f-4bc8-9c05-ad426d64d11b
select config_key, config_value, config_type
from widget_configs
where widget_id = $1::uuid
order by position asc;
`

const QListWidgetMenuItems = `--sql df712004-4e5f-486f-8819-d0c4da8f3900
select id, title, url, item_type, position
from widget_menu_items
where widget_id = $1::uuid
order by position asc;
`

const QListWidgetHeroSlides = `--sql deda98b8-af73-4be5-9cbb-80b6a0454e01
select id, title, subtitle, background_image, button_text, button_url, overlay_enabled, overlay_opacity, position
from widget_hero_slides
where widget_id = $1::uuid
order by position asc;
`

const QListWidgetSliderSlides = `--sql 83071f48-baca-4fb7-9b86-a34665f08b5b
select id, title, subtitle, background_image, button_text, button_url, overlay_enabled, overlay_opacity, position
from widget_slider_slides
where widget_id = $1::uuid
order by position asc;
`

const QListWidgetFormFields = `--sql 6d8378cf-bdfd-4f47-9025-9f210559f16e
select id, name, label, field_type, required, placeholder, options, position
from widget_form_fields
where widget_id = $1::uuid
order by position asc;
`

const QListWidgetGalleryImages = `--sql 72f753b4-7070-41c9-9dc9-ee30c29c2a1a
select id, url, alt, caption, position
from widget_gallery_images
where widget_id = $1::uuid
order by position asc;
`

const QGetWidgetImageSettings = `--sql 311383eb-39a9-4160-8635-2214683b8e6e
select image, alt_text, caption, alignment, size, link_url, link_type, open_in_new_tab
from widget_image_settings
where widget_id = $1::uuid;
`
