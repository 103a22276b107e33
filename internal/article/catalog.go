package article

import "fmt"

// Catalog is the static configuration the panel works against: the
// enumeration of every field and the default parameter set.
type Catalog struct {
	Options  map[Field]OptionList
	Defaults ParameterSet
}

// OptionsFor returns the enumeration for a field.
func (c Catalog) OptionsFor(field Field) OptionList {
	return c.Options[field]
}

// Validate checks that every field has options with unique values and that
// every default is a member of its field's enumeration.
func (c Catalog) Validate() error {
	for _, field := range Fields() {
		options := c.Options[field]
		if len(options) == 0 {
			return fmt.Errorf("%s: no options", field)
		}
		seen := make(map[string]struct{}, len(options))
		for _, option := range options {
			if option.Value == "" {
				return fmt.Errorf("%s: option %q has an empty value", field, option.Title)
			}
			if _, dup := seen[option.Value]; dup {
				return fmt.Errorf("%s: duplicate option value %q", field, option.Value)
			}
			seen[option.Value] = struct{}{}
		}
		if def := c.Defaults.Get(field); !options.Contains(def) {
			return fmt.Errorf("%s: default %q is not a listed option", field, def.Value)
		}
	}
	return nil
}

// Reconcile returns params with every value that is no longer listed
// replaced by the default. Listed values are refreshed from the catalog so
// titles and classes follow configuration changes.
func (c Catalog) Reconcile(params ParameterSet) ParameterSet {
	for _, field := range Fields() {
		options := c.Options[field]
		idx := options.Index(params.Get(field))
		if idx < 0 {
			params = params.With(field, c.Defaults.Get(field))
			continue
		}
		params = params.With(field, options[idx])
	}
	return params
}

// Lookup resolves a value for a field against the catalog.
func (c Catalog) Lookup(field Field, value string) (OptionValue, bool) {
	return c.Options[field].Find(value)
}

var (
	fontFamilyOptions = OptionList{
		{Title: "Open Sans", Value: "open-sans", Class: "sans"},
		{Title: "Ubuntu", Value: "ubuntu", Class: "sans"},
		{Title: "Cormorant Garamond", Value: "cormorant-garamond", Class: "serif"},
		{Title: "Days One", Value: "days-one", Class: "display"},
		{Title: "Merriweather", Value: "merriweather", Class: "serif"},
	}

	fontSizeOptions = OptionList{
		{Title: "18px", Value: "18px"},
		{Title: "25px", Value: "25px"},
		{Title: "38px", Value: "38px"},
	}

	fontColorOptions = OptionList{
		{Title: "Black", Value: "#000000"},
		{Title: "White", Value: "#FFFFFF"},
		{Title: "Gray", Value: "#C4C4C4"},
		{Title: "Pink", Value: "#FEAFE8"},
		{Title: "Fuchsia", Value: "#FD24AF"},
		{Title: "Yellow", Value: "#FFC802"},
		{Title: "Green", Value: "#80D994"},
		{Title: "Blue", Value: "#6FC1FD"},
		{Title: "Purple", Value: "#5F00FF"},
	}

	backgroundColorOptions = OptionList{
		{Title: "White", Value: "#FFFFFF"},
		{Title: "Black", Value: "#000000"},
		{Title: "Gray", Value: "#C4C4C4"},
		{Title: "Pink", Value: "#FEAFE8"},
		{Title: "Fuchsia", Value: "#FD24AF"},
		{Title: "Yellow", Value: "#FFC802"},
		{Title: "Green", Value: "#80D994"},
		{Title: "Blue", Value: "#6FC1FD"},
		{Title: "Purple", Value: "#5F00FF"},
	}

	contentWidthOptions = OptionList{
		{Title: "Wide", Value: "1394px"},
		{Title: "Narrow", Value: "948px"},
	}
)

// DefaultCatalog returns the built-in enumerations and defaults.
func DefaultCatalog() Catalog {
	options := map[Field]OptionList{
		FieldFontFamily:      append(OptionList(nil), fontFamilyOptions...),
		FieldFontSize:        append(OptionList(nil), fontSizeOptions...),
		FieldFontColor:       append(OptionList(nil), fontColorOptions...),
		FieldBackgroundColor: append(OptionList(nil), backgroundColorOptions...),
		FieldContentWidth:    append(OptionList(nil), contentWidthOptions...),
	}
	return Catalog{
		Options: options,
		Defaults: ParameterSet{
			FontFamily:      options[FieldFontFamily][0],
			FontSize:        options[FieldFontSize][0],
			FontColor:       options[FieldFontColor][0],
			BackgroundColor: options[FieldBackgroundColor][0],
			ContentWidth:    options[FieldContentWidth][0],
		},
	}
}
