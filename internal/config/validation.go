package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/articleparams/internal/article"
	paramserrors "github.com/alexisbeaulieu97/articleparams/pkg/errors"
)

// valueTags holds the format check applied to option values of each field.
var valueTags = map[article.Field]string{
	article.FieldFontSize:        "css_length",
	article.FieldFontColor:       "css_color",
	article.FieldBackgroundColor: "css_color",
	article.FieldContentWidth:    "css_length",
}

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return paramserrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for _, field := range article.Fields() {
		options := cfg.Options.For(field)
		seen := make(map[string]struct{}, len(options))

		for i, opt := range options {
			if _, dup := seen[opt.Value]; dup {
				return paramserrors.NewValidationError(fieldForOption(field, i, "value"), fmt.Sprintf("duplicate option value %q", opt.Value), nil)
			}
			seen[opt.Value] = struct{}{}

			if tag, ok := valueTags[field]; ok {
				if err := v.Var(opt.Value, tag); err != nil {
					return paramserrors.NewValidationError(fieldForOption(field, i, "value"), fmt.Sprintf("%q is not a valid %s", opt.Value, describeTag(tag)), err)
				}
			}
		}

		def := cfg.Defaults.For(field)
		if _, ok := seen[def]; !ok {
			return paramserrors.NewValidationError("defaults."+field.String(), fmt.Sprintf("references unknown option %q", def), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return paramserrors.NewValidationError(field, msg, err)
	}

	return paramserrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

// toSnake turns Go field names such as "BackgroundColor[2]" into yaml keys.
func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForOption(field article.Field, index int, key string) string {
	return fmt.Sprintf("options.%s[%d].%s", field, index, key)
}

func describeTag(tag string) string {
	switch tag {
	case "css_color":
		return "hex color"
	case "css_length":
		return "pixel length"
	default:
		return tag
	}
}
