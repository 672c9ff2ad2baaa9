package scaffold

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/modu-ai/modularizer/internal/naming"
)

func TestNewModule(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		typeName string
	}{
		{"order", "order", "Order"},
		{"user-profile", "user-profile", "UserProfile"},
		{"userProfile", "user-profile", "UserProfile"},
		{" OrderItem ", "order-item", "OrderItem"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := NewModule("/work/shop", tt.input)
			if err != nil {
				t.Fatalf("NewModule error: %v", err)
			}
			if m.Name != tt.name {
				t.Errorf("Name = %q, want %q", m.Name, tt.name)
			}
			if m.TypeName != tt.typeName {
				t.Errorf("TypeName = %q, want %q", m.TypeName, tt.typeName)
			}
		})
	}
}

func TestNewModule_InvalidName(t *testing.T) {
	for _, input := range []string{"", "1order", "user_profile", "-x"} {
		_, err := NewModule("/work/shop", input)
		if err == nil {
			t.Errorf("NewModule(%q) expected error", input)
			continue
		}
		if !errors.Is(err, naming.ErrInvalidName) && !errors.Is(err, naming.ErrNameRequired) {
			t.Errorf("NewModule(%q) error = %v, want naming error", input, err)
		}
	}
}

func TestModulePaths(t *testing.T) {
	m, err := NewModule("/work/shop", "user-profile")
	if err != nil {
		t.Fatal(err)
	}

	base := filepath.Join("/work/shop", "src", "app", "user-profile")
	checks := map[string]string{
		"Path":        m.Path(),
		"ServiceFile": m.ServiceFile(),
		"ModelFile":   m.ModelFile(),
		"IndexFile":   m.IndexFile(),
	}
	want := map[string]string{
		"Path":        base,
		"ServiceFile": filepath.Join(base, "services", "user-profile.service.ts"),
		"ModelFile":   filepath.Join(base, "models", "user-profile.model.ts"),
		"IndexFile":   filepath.Join(base, "models", "index.ts"),
	}
	for k, got := range checks {
		if got != want[k] {
			t.Errorf("%s = %q, want %q", k, got, want[k])
		}
	}

	if m.RelPath() != "src/app/user-profile" {
		t.Errorf("RelPath = %q", m.RelPath())
	}
	if got := m.Rel(m.ModelFile()); got != "src/app/user-profile/models/user-profile.model.ts" {
		t.Errorf("Rel(ModelFile) = %q", got)
	}
}

func TestOptionsEnabledKinds(t *testing.T) {
	opts := Options{Guard: true, Models: true}
	kinds := opts.EnabledKinds()
	if len(kinds) != 2 || kinds[0] != KindGuard || kinds[1] != KindModels {
		t.Errorf("EnabledKinds() = %v, want [guard models]", kinds)
	}
	if opts.Enabled(ArtifactKind("unknown")) {
		t.Error("unknown kind should not be enabled")
	}
	if len(Options{}.EnabledKinds()) != 0 {
		t.Error("zero Options should enable nothing")
	}
}
