package core

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		job     Job
		variant Variant
		want    string
	}{
		{
			name:    "main",
			job:     Job{Index: 0, Name: "Alice"},
			variant: VariantMain,
			want:    filepath.Join("out", "0_Alice-main.stl"),
		},
		{
			name:    "schrift",
			job:     Job{Index: 12, Name: "Bob"},
			variant: VariantSchrift,
			want:    filepath.Join("out", "12_Bob-schrift.stl"),
		},
		{
			name:    "spaces are kept",
			job:     Job{Index: 3, Name: "Anna Lena"},
			variant: VariantMain,
			want:    filepath.Join("out", "3_Anna Lena-main.stl"),
		},
		{
			name:    "path separators are replaced",
			job:     Job{Index: 4, Name: "AC/DC"},
			variant: VariantMain,
			want:    filepath.Join("out", "4_AC_DC-main.stl"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath("out", tt.job, tt.variant); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVariant(t *testing.T) {
	if len(Variants) != 2 || Variants[0] != VariantMain || Variants[1] != VariantSchrift {
		t.Fatalf("unexpected variant order: %v", Variants)
	}
	if !VariantMain.DoMain() || VariantSchrift.DoMain() {
		t.Error("only the main variant renders the body")
	}
	if VariantSchrift.String() != "schrift" {
		t.Errorf("VariantSchrift.String() = %q", VariantSchrift.String())
	}
}
