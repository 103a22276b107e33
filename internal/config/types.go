package config

import (
	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

// CurrentVersion is the configuration schema version this build reads.
const CurrentVersion = "1"

// Submit policies accepted by the submit_policy key.
const (
	SubmitPolicyClose    = "close"
	SubmitPolicyKeepOpen = "keep_open"
)

// Config represents the full parameters panel configuration document.
type Config struct {
	Version      string     `yaml:"version" validate:"required,eq=1"`
	SubmitPolicy string     `yaml:"submit_policy" validate:"required,oneof=close keep_open"`
	PanelWidth   int        `yaml:"panel_width" validate:"min=24,max=80"`
	PxPerColumn  int        `yaml:"px_per_column" validate:"min=1,max=200"`
	Article      Article    `yaml:"article"`
	Options      OptionSets `yaml:"options"`
	Defaults     Defaults   `yaml:"defaults"`
}

// Article is the text shown next to the panel.
type Article struct {
	Title string `yaml:"title,omitempty" validate:"max=200"`
	Body  string `yaml:"body,omitempty"`
}

// Option is one entry of an option list.
type Option struct {
	Title string `yaml:"title" validate:"required,max=60"`
	Value string `yaml:"value" validate:"required"`
	Class string `yaml:"class,omitempty" validate:"omitempty,oneof=sans serif display mono"`
}

// OptionSets lists the selectable options of every article field.
type OptionSets struct {
	FontFamily      []Option `yaml:"font_family" validate:"required,min=1,dive"`
	FontSize        []Option `yaml:"font_size" validate:"required,min=1,dive"`
	FontColor       []Option `yaml:"font_color" validate:"required,min=1,dive"`
	BackgroundColor []Option `yaml:"background_color" validate:"required,min=1,dive"`
	ContentWidth    []Option `yaml:"content_width" validate:"required,min=1,dive"`
}

// Defaults names the default option value of every field.
type Defaults struct {
	FontFamily      string `yaml:"font_family" validate:"required"`
	FontSize        string `yaml:"font_size" validate:"required"`
	FontColor       string `yaml:"font_color" validate:"required"`
	BackgroundColor string `yaml:"background_color" validate:"required"`
	ContentWidth    string `yaml:"content_width" validate:"required"`
}

// For returns the option list configured for field.
func (o OptionSets) For(field article.Field) []Option {
	switch field {
	case article.FieldFontFamily:
		return o.FontFamily
	case article.FieldFontSize:
		return o.FontSize
	case article.FieldFontColor:
		return o.FontColor
	case article.FieldBackgroundColor:
		return o.BackgroundColor
	case article.FieldContentWidth:
		return o.ContentWidth
	default:
		return nil
	}
}

// For returns the default value configured for field.
func (d Defaults) For(field article.Field) string {
	switch field {
	case article.FieldFontFamily:
		return d.FontFamily
	case article.FieldFontSize:
		return d.FontSize
	case article.FieldFontColor:
		return d.FontColor
	case article.FieldBackgroundColor:
		return d.BackgroundColor
	case article.FieldContentWidth:
		return d.ContentWidth
	default:
		return ""
	}
}

// Default returns the configuration matching the built-in catalog.
func Default() Config {
	catalog := article.DefaultCatalog()
	cfg := Config{
		Version:      CurrentVersion,
		SubmitPolicy: SubmitPolicyClose,
		PanelWidth:   36,
		PxPerColumn:  article.DefaultPxPerColumn,
		Options: OptionSets{
			FontFamily:      toOptions(catalog.OptionsFor(article.FieldFontFamily)),
			FontSize:        toOptions(catalog.OptionsFor(article.FieldFontSize)),
			FontColor:       toOptions(catalog.OptionsFor(article.FieldFontColor)),
			BackgroundColor: toOptions(catalog.OptionsFor(article.FieldBackgroundColor)),
			ContentWidth:    toOptions(catalog.OptionsFor(article.FieldContentWidth)),
		},
		Defaults: Defaults{
			FontFamily:      catalog.Defaults.FontFamily.Value,
			FontSize:        catalog.Defaults.FontSize.Value,
			FontColor:       catalog.Defaults.FontColor.Value,
			BackgroundColor: catalog.Defaults.BackgroundColor.Value,
			ContentWidth:    catalog.Defaults.ContentWidth.Value,
		},
	}
	return cfg
}

// Catalog converts the configuration into an article catalog. The
// configuration must have passed ValidateConfig.
func (c *Config) Catalog() article.Catalog {
	catalog := article.Catalog{Options: make(map[article.Field]article.OptionList, len(article.Fields()))}
	for _, field := range article.Fields() {
		list := make(article.OptionList, 0, len(c.Options.For(field)))
		for _, opt := range c.Options.For(field) {
			list = append(list, article.OptionValue{Title: opt.Title, Value: opt.Value, Class: opt.Class})
		}
		catalog.Options[field] = list
		if def, ok := list.Find(c.Defaults.For(field)); ok {
			catalog.Defaults = catalog.Defaults.With(field, def)
		}
	}
	return catalog
}

func toOptions(list article.OptionList) []Option {
	out := make([]Option, len(list))
	for i, opt := range list {
		out[i] = Option{Title: opt.Title, Value: opt.Value, Class: opt.Class}
	}
	return out
}
