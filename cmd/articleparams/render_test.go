package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	paramserrors "github.com/alexisbeaulieu97/articleparams/pkg/errors"
)

func TestRenderCommandUsesDefaults(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "render", "--color", "none")
	require.NoError(t, err)
	require.Contains(t, output, article.DefaultTitle)
}

func TestRenderCommandAppliesFlags(t *testing.T) {
	output, err := executeCommand(newRootCmd(), "render", "--color", "none",
		"--font-size", "38px",
		"--content-width", "Narrow",
	)
	require.NoError(t, err)

	// Sizes above 25px render the title in capitals.
	require.Contains(t, output, strings.ToUpper(article.DefaultTitle))
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 948/article.DefaultPxPerColumn)
	}
}

func TestRenderCommandRejectsUnknownOption(t *testing.T) {
	_, err := executeCommand(newRootCmd(), "render", "--font-color", "#123456")
	require.Error(t, err)

	var optErr *paramserrors.OptionError
	require.True(t, errors.As(err, &optErr))
	require.Equal(t, "font_color", optErr.Field)
	require.Equal(t, "#123456", optErr.Value)
	require.Contains(t, optErr.Known, "#000000")
}

func TestRenderCommandReadsConfig(t *testing.T) {
	path := writeConfig(t, `article:
  title: Configured Title
  body: Configured body.
`)

	output, err := executeCommand(newRootCmd(), "render", "--config", path, "--color", "none")
	require.NoError(t, err)
	require.Contains(t, output, "Configured Title")
	require.Contains(t, output, "Configured body.")
}

func TestResolveParams(t *testing.T) {
	catalog := article.DefaultCatalog()

	tests := []struct {
		name    string
		values  map[article.Field]string
		check   func(t *testing.T, got article.ParameterSet)
		wantErr bool
	}{
		{
			name:   "empty keeps defaults",
			values: nil,
			check: func(t *testing.T, got article.ParameterSet) {
				require.Equal(t, catalog.Defaults, got)
			},
		},
		{
			name:   "by value",
			values: map[article.Field]string{article.FieldFontFamily: "merriweather"},
			check: func(t *testing.T, got article.ParameterSet) {
				require.Equal(t, "Merriweather", got.FontFamily.Title)
				require.Equal(t, catalog.Defaults.With(article.FieldFontFamily, got.FontFamily), got)
			},
		},
		{
			name:   "by title ignoring case",
			values: map[article.Field]string{article.FieldBackgroundColor: "  black "},
			check: func(t *testing.T, got article.ParameterSet) {
				require.Equal(t, "Black", got.BackgroundColor.Title)
			},
		},
		{
			name:    "unknown",
			values:  map[article.Field]string{article.FieldFontSize: "12px"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveParams(catalog, tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}
