package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	paramserrors "github.com/alexisbeaulieu97/articleparams/pkg/errors"
)

const defaultRenderWidth = 100

type renderOptions struct {
	ConfigPath string
	Width      int
	Values     map[article.Field]string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{Values: make(map[article.Field]string)}
	values := make(map[article.Field]*string, len(article.Fields()))

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the article styled with the given parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ConfigPath = root.configPath
			for field, value := range values {
				opts.Values[field] = *value
			}
			return runRender(cmd, opts)
		},
	}

	for _, field := range article.Fields() {
		values[field] = cmd.Flags().String(flagName(field), "", fmt.Sprintf("%s option value or title", field.Title()))
	}
	cmd.Flags().IntVarP(&opts.Width, "width", "w", defaultRenderWidth, "Maximum width in columns")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	catalog := cfg.Catalog()
	params, err := resolveParams(catalog, opts.Values)
	if err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = defaultRenderWidth
	}

	page := article.NewPage(article.PageOptions{
		Title:       cfg.Article.Title,
		Body:        cfg.Article.Body,
		PxPerColumn: cfg.PxPerColumn,
		Initial:     params,
	})
	fmt.Fprintln(cmd.OutOrStdout(), page.Render(width))
	return nil
}

// resolveParams starts from the catalog defaults and replaces every field
// named in values. A value matches an option's value or, ignoring case, its
// title.
func resolveParams(catalog article.Catalog, values map[article.Field]string) (article.ParameterSet, error) {
	params := catalog.Defaults
	for _, field := range article.Fields() {
		value := strings.TrimSpace(values[field])
		if value == "" {
			continue
		}
		option, ok := lookupOption(catalog, field, value)
		if !ok {
			return article.ParameterSet{}, paramserrors.NewOptionError(field.String(), value, catalog.OptionsFor(field).Values())
		}
		params = params.With(field, option)
	}
	return params, nil
}

func lookupOption(catalog article.Catalog, field article.Field, value string) (article.OptionValue, bool) {
	if option, ok := catalog.Lookup(field, value); ok {
		return option, true
	}
	for _, option := range catalog.OptionsFor(field) {
		if strings.EqualFold(option.Title, value) {
			return option, true
		}
	}
	return article.OptionValue{}, false
}

func flagName(field article.Field) string {
	return strings.ReplaceAll(field.String(), "_", "-")
}
