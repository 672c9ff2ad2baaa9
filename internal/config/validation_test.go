package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		field   string
	}{
		{"defaults_valid", func(*Config) {}, nil, ""},
		{"empty_ng_command", func(c *Config) { c.NgCommand = "  " }, ErrInvalidConfig, "ng_command"},
		{"quote_in_prefix", func(c *Config) { c.APIPrefix = "/api'" }, ErrInvalidConfig, "api_prefix"},
		{"space_in_prefix", func(c *Config) { c.APIPrefix = "/my api" }, ErrInvalidConfig, "api_prefix"},
		{"unknown_locale", func(c *Config) { c.Locale = "fr" }, ErrUnsupportedLocale, "locale"},
		{"template_token", func(c *Config) { c.NgCommand = "{{.Ng}}" }, ErrDynamicToken, "ng_command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should mention field %q", err.Error(), tt.field)
			}
		})
	}
}

func TestValidationErrors_Empty(t *testing.T) {
	e := &ValidationErrors{}
	if e.Error() != "validation: no errors" {
		t.Errorf("Error() = %q", e.Error())
	}
}

func TestValidationError_WithoutValue(t *testing.T) {
	e := &ValidationError{Field: "ng_command", Message: "must not be empty"}
	want := `validation error: field "ng_command": must not be empty`
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}

func TestValidate_DynamicTokenOrder(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.APIPrefix = "{{.Prefix}}"
	cfg.NgCommand = "{{.Ng}}"

	for i := 0; i < 20; i++ {
		err := Validate(cfg)
		var verrs *ValidationErrors
		if !errors.As(err, &verrs) {
			t.Fatalf("expected *ValidationErrors, got %T", err)
		}
		if len(verrs.Errors) != 2 {
			t.Fatalf("expected 2 errors, got %d: %v", len(verrs.Errors), verrs)
		}
		if verrs.Errors[0].Field != "api_prefix" || verrs.Errors[1].Field != "ng_command" {
			t.Fatalf("run %d: fields = %q, %q; want api_prefix, ng_command",
				i, verrs.Errors[0].Field, verrs.Errors[1].Field)
		}
	}
}
