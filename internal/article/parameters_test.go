package article

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSetWithReplacesSingleField(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	original := catalog.Defaults

	for _, field := range Fields() {
		options := catalog.OptionsFor(field)
		replacement := options[len(options)-1]

		updated := original.With(field, replacement)
		require.Equal(t, replacement, updated.Get(field), field.String())

		for _, other := range Fields() {
			if other == field {
				continue
			}
			require.Equal(t, original.Get(other), updated.Get(other), "field %s changed when %s was set", other, field)
		}
	}
}

func TestParameterSetWithDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	defaults := DefaultCatalog().Defaults
	_ = defaults.With(FieldFontSize, OptionValue{Title: "38px", Value: "38px"})

	require.Equal(t, "18px", defaults.FontSize.Value)
}

func TestParameterSetEqualComparesValues(t *testing.T) {
	t.Parallel()

	a := DefaultCatalog().Defaults
	b := a.With(FieldFontColor, OptionValue{Title: "Noir", Value: a.FontColor.Value})
	require.True(t, a.Equal(b))

	c := a.With(FieldFontColor, OptionValue{Title: "White", Value: "#FFFFFF"})
	require.False(t, a.Equal(c))
}

func TestParameterSetComplete(t *testing.T) {
	t.Parallel()

	require.True(t, DefaultCatalog().Defaults.Complete())
	require.False(t, ParameterSet{}.Complete())
}

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, field := range Fields() {
		parsed, err := ParseField(field.String())
		require.NoError(t, err)
		require.Equal(t, field, parsed)
	}

	_, err := ParseField("line_height")
	require.Error(t, err)
}

func TestParsePixels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "1394px", want: 1394},
		{input: " 18px ", want: 18},
		{input: "18", wantErr: true},
		{input: "px", wantErr: true},
		{input: "0px", wantErr: true},
		{input: "1.5px", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePixels(tt.input)
		if tt.wantErr {
			require.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.want, got)
	}
}
