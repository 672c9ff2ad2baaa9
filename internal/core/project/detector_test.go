package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writePackageJSON(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}
	return root
}

func TestDetectAngularVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "cli_caret",
			content: `{"devDependencies": {"@angular/cli": "^20.1.3"}}`,
			want:    "20.1.3",
		},
		{
			name:    "core_tilde_fallback",
			content: `{"dependencies": {"@angular/core": "~19.2.0"}}`,
			want:    "19.2.0",
		},
		{
			name:    "cli_preferred_over_core",
			content: `{"dependencies": {"@angular/core": "^18.0.0"}, "devDependencies": {"@angular/cli": "^20.0.0"}}`,
			want:    "20.0.0",
		},
		{
			name:    "range",
			content: `{"devDependencies": {"@angular/cli": ">=17.3.0 <18"}}`,
			want:    "17.3.0",
		},
		{
			name:    "no_angular",
			content: `{"dependencies": {"react": "^18.0.0"}}`,
			wantErr: ErrAngularVersionUnknown,
		},
		{
			name:    "tag_instead_of_version",
			content: `{"devDependencies": {"@angular/cli": "latest"}}`,
			wantErr: ErrAngularVersionUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writePackageJSON(t, tt.content)
			v, err := DetectAngularVersion(root)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectAngularVersion error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("version = %q, want %q", v.String(), tt.want)
			}
		})
	}
}

func TestDetectAngularVersion_MissingFile(t *testing.T) {
	if _, err := DetectAngularVersion(t.TempDir()); err == nil {
		t.Error("expected error when package.json is missing")
	}
}

func TestDetectAngularVersion_InvalidJSON(t *testing.T) {
	root := writePackageJSON(t, "{not json")
	if _, err := DetectAngularVersion(root); err == nil {
		t.Error("expected error for invalid package.json")
	}
}

func TestSupportsLayoutType(t *testing.T) {
	root := writePackageJSON(t, `{"devDependencies": {"@angular/cli": "^20.0.0"}}`)
	v20, err := DetectAngularVersion(root)
	if err != nil {
		t.Fatal(err)
	}
	if !SupportsLayoutType(v20) {
		t.Error("Angular 20 should support --type")
	}

	root = writePackageJSON(t, `{"devDependencies": {"@angular/cli": "^19.2.0"}}`)
	v19, err := DetectAngularVersion(root)
	if err != nil {
		t.Fatal(err)
	}
	if SupportsLayoutType(v19) {
		t.Error("Angular 19 should not support --type")
	}

	if SupportsLayoutType(nil) {
		t.Error("nil version should not support --type")
	}
}
