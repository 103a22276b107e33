package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
)

type optionsOptions struct {
	jsonOutput bool
}

func newOptionsCmd(root *rootFlags) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:   "options [field]",
		Short: "List the selectable options of every field",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := article.Fields()
			if len(args) == 1 {
				field, err := article.ParseField(strings.ReplaceAll(args[0], "-", "_"))
				if err != nil {
					return err
				}
				fields = []article.Field{field}
			}
			return runOptions(cmd, root.configPath, fields, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runOptions(cmd *cobra.Command, configPath string, fields []article.Field, opts *optionsOptions) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	catalog := cfg.Catalog()

	if opts.jsonOutput {
		return renderOptionsJSON(cmd, catalog, fields)
	}
	return renderOptionsTable(cmd, catalog, fields)
}

func renderOptionsTable(cmd *cobra.Command, catalog article.Catalog, fields []article.Field) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "FIELD\tTITLE\tVALUE\tCLASS\tDEFAULT")
	for _, field := range fields {
		def := catalog.Defaults.Get(field)
		for _, option := range catalog.OptionsFor(field) {
			marker := ""
			if option.Equal(def) {
				marker = "*"
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
				field,
				option.Title,
				option.Value,
				valueOrFallback(option.Class, "-"),
				marker,
			)
		}
	}

	return writer.Flush()
}

type optionJSON struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Class string `json:"class,omitempty"`
}

type fieldJSON struct {
	Field   string       `json:"field"`
	Title   string       `json:"title"`
	Default string       `json:"default"`
	Options []optionJSON `json:"options"`
}

func renderOptionsJSON(cmd *cobra.Command, catalog article.Catalog, fields []article.Field) error {
	payload := make([]fieldJSON, 0, len(fields))
	for _, field := range fields {
		entry := fieldJSON{
			Field:   field.String(),
			Title:   field.Title(),
			Default: catalog.Defaults.Get(field).Value,
		}
		for _, option := range catalog.OptionsFor(field) {
			entry.Options = append(entry.Options, optionJSON{Title: option.Title, Value: option.Value, Class: option.Class})
		}
		payload = append(payload, entry)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
