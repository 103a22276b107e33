package article

// ParameterSet holds exactly one option per article field. It is a value
// type: every mutation produces a new set.
type ParameterSet struct {
	FontFamily      OptionValue
	FontSize        OptionValue
	FontColor       OptionValue
	BackgroundColor OptionValue
	ContentWidth    OptionValue
}

// Get returns the option selected for the field.
func (p ParameterSet) Get(field Field) OptionValue {
	switch field {
	case FieldFontFamily:
		return p.FontFamily
	case FieldFontSize:
		return p.FontSize
	case FieldFontColor:
		return p.FontColor
	case FieldBackgroundColor:
		return p.BackgroundColor
	case FieldContentWidth:
		return p.ContentWidth
	default:
		return OptionValue{}
	}
}

// With returns a copy of the set with a single field replaced.
func (p ParameterSet) With(field Field, value OptionValue) ParameterSet {
	switch field {
	case FieldFontFamily:
		p.FontFamily = value
	case FieldFontSize:
		p.FontSize = value
	case FieldFontColor:
		p.FontColor = value
	case FieldBackgroundColor:
		p.BackgroundColor = value
	case FieldContentWidth:
		p.ContentWidth = value
	}
	return p
}

// Equal compares two sets field by field using option values.
func (p ParameterSet) Equal(other ParameterSet) bool {
	for _, field := range Fields() {
		if !p.Get(field).Equal(other.Get(field)) {
			return false
		}
	}
	return true
}

// Complete reports whether every field holds an option.
func (p ParameterSet) Complete() bool {
	for _, field := range Fields() {
		if p.Get(field).IsZero() {
			return false
		}
	}
	return true
}

// Map returns the selected values keyed by field key, for logging.
func (p ParameterSet) Map() map[string]string {
	out := make(map[string]string, fieldCount)
	for _, field := range Fields() {
		out[field.String()] = p.Get(field).Value
	}
	return out
}
