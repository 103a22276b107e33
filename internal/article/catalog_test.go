package article

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())
	require.Equal(t, "open-sans", catalog.Defaults.FontFamily.Value)
	require.Equal(t, "18px", catalog.Defaults.FontSize.Value)
	require.Equal(t, "#000000", catalog.Defaults.FontColor.Value)
	require.Equal(t, "#FFFFFF", catalog.Defaults.BackgroundColor.Value)
	require.Equal(t, "1394px", catalog.Defaults.ContentWidth.Value)
}

func TestDefaultCatalogReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	first := DefaultCatalog()
	first.Options[FieldFontFamily][0].Title = "changed"

	second := DefaultCatalog()
	require.Equal(t, "Open Sans", second.Options[FieldFontFamily][0].Title)
}

func TestCatalogValidateRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Catalog)
		want   string
	}{
		{
			name:   "empty field",
			mutate: func(c *Catalog) { c.Options[FieldContentWidth] = nil },
			want:   "content_width: no options",
		},
		{
			name: "duplicate value",
			mutate: func(c *Catalog) {
				c.Options[FieldFontSize] = append(c.Options[FieldFontSize], OptionValue{Title: "again", Value: "18px"})
			},
			want: "duplicate option value",
		},
		{
			name: "default not listed",
			mutate: func(c *Catalog) {
				c.Defaults.FontColor = OptionValue{Title: "Teal", Value: "#008080"}
			},
			want: "font_color: default",
		},
		{
			name: "empty value",
			mutate: func(c *Catalog) {
				c.Options[FieldFontFamily] = append(c.Options[FieldFontFamily], OptionValue{Title: "Blank"})
			},
			want: "empty value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := DefaultCatalog()
			tt.mutate(&catalog)
			err := catalog.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCatalogReconcile(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	params := catalog.Defaults.
		With(FieldFontFamily, OptionValue{Value: "ubuntu"}).
		With(FieldFontColor, OptionValue{Title: "Teal", Value: "#008080"})

	reconciled := catalog.Reconcile(params)

	require.Equal(t, "Ubuntu", reconciled.FontFamily.Title, "listed value picks up catalog title")
	require.Equal(t, catalog.Defaults.FontColor, reconciled.FontColor, "unlisted value falls back to default")
	require.Equal(t, catalog.Defaults.FontSize, reconciled.FontSize)
}

func TestCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	option, ok := catalog.Lookup(FieldContentWidth, "948px")
	require.True(t, ok)
	require.Equal(t, "Narrow", option.Title)

	_, ok = catalog.Lookup(FieldContentWidth, "100%")
	require.False(t, ok)
}
