// Package article holds the article parameter domain: the selectable
// options, the five-field parameter set, the option catalog and the page
// that renders an article with a committed parameter set.
package article

// OptionValue is one selectable entry of a field's enumeration.
// Options compare by Value only; Title and Class are presentation data.
type OptionValue struct {
	Title string
	Value string
	Class string
}

// Equal reports whether both options carry the same value.
func (o OptionValue) Equal(other OptionValue) bool {
	return o.Value == other.Value
}

// IsZero reports whether the option is unset.
func (o OptionValue) IsZero() bool {
	return o.Value == ""
}

func (o OptionValue) String() string {
	if o.Title != "" {
		return o.Title
	}
	return o.Value
}

// OptionList is an ordered enumeration of options.
type OptionList []OptionValue

// Index returns the position of the option with the same value, or -1.
func (l OptionList) Index(option OptionValue) int {
	for i, candidate := range l {
		if candidate.Equal(option) {
			return i
		}
	}
	return -1
}

// Contains reports whether the option is a member of the list.
func (l OptionList) Contains(option OptionValue) bool {
	return l.Index(option) >= 0
}

// Find looks an option up by its value.
func (l OptionList) Find(value string) (OptionValue, bool) {
	for _, candidate := range l {
		if candidate.Value == value {
			return candidate, true
		}
	}
	return OptionValue{}, false
}

// Titles returns the display titles in list order.
func (l OptionList) Titles() []string {
	titles := make([]string, len(l))
	for i, option := range l {
		titles[i] = option.String()
	}
	return titles
}

// Values returns the option values in list order.
func (l OptionList) Values() []string {
	values := make([]string, len(l))
	for i, option := range l {
		values[i] = option.Value
	}
	return values
}
