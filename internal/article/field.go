package article

import "fmt"

// Field names one of the five article parameters.
type Field int

const (
	FieldFontFamily Field = iota
	FieldFontSize
	FieldFontColor
	FieldBackgroundColor
	FieldContentWidth
)

const fieldCount = int(FieldContentWidth) + 1

var fieldKeys = [fieldCount]string{
	"font_family",
	"font_size",
	"font_color",
	"background_color",
	"content_width",
}

var fieldTitles = [fieldCount]string{
	"Font",
	"Font size",
	"Font color",
	"Background color",
	"Content width",
}

// Fields returns every field in display order.
func Fields() []Field {
	return []Field{FieldFontFamily, FieldFontSize, FieldFontColor, FieldBackgroundColor, FieldContentWidth}
}

// String returns the snake_case key used in configuration files and flags.
func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldKeys[f]
}

// Title returns the human readable label.
func (f Field) Title() string {
	if !f.Valid() {
		return f.String()
	}
	return fieldTitles[f]
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	return f >= 0 && int(f) < fieldCount
}

// ParseField converts a snake_case key back into a Field.
func ParseField(key string) (Field, error) {
	for i, candidate := range fieldKeys {
		if candidate == key {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown article field %q", key)
}
