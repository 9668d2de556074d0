package themejson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLeaf(t *testing.T) {
	tests := []struct {
		name      string
		node      string
		wantLeaf  bool
		wantType  Leaf
		wantLabel string
		wantValue string
	}{
		{
			name:      "font size entry",
			node:      `{"name": "Small", "slug": "small", "size": "13px"}`,
			wantLeaf:  true,
			wantType:  SizeEntry{},
			wantLabel: "small",
			wantValue: "13px",
		},
		{
			name:      "spacing size entry",
			node:      `{"name": "1", "slug": "30", "size": "clamp(1.5rem, 5vw, 2rem)"}`,
			wantLeaf:  true,
			wantType:  SizeEntry{},
			wantLabel: "30",
			wantValue: "clamp(1.5rem, 5vw, 2rem)",
		},
		{
			name:      "palette entry",
			node:      `{"slug": "primary", "color": "#000", "name": "Primary"}`,
			wantLeaf:  true,
			wantType:  PaletteEntry{},
			wantLabel: "primary",
			wantValue: "#000",
		},
		{
			name:      "font family entry",
			node:      `{"fontFamily": "Inter, sans-serif", "slug": "body"}`,
			wantLeaf:  true,
			wantType:  FontFamilyEntry{},
			wantLabel: "body",
			wantValue: "Inter, sans-serif",
		},
		{
			name:      "gradient entry",
			node:      `{"slug": "sunset", "gradient": "linear-gradient(#f00, #00f)"}`,
			wantLeaf:  true,
			wantType:  GradientEntry{},
			wantLabel: "sunset",
			wantValue: "linear-gradient(#f00, #00f)",
		},
		{
			name:      "name and size win over slug and color",
			node:      `{"name": "Both", "size": "2rem", "slug": "both", "color": "#fff"}`,
			wantLeaf:  true,
			wantType:  SizeEntry{},
			wantLabel: "both",
			wantValue: "2rem",
		},
		{
			name:      "missing slug gives empty label",
			node:      `{"fontFamily": "serif"}`,
			wantLeaf:  true,
			wantType:  FontFamilyEntry{},
			wantLabel: "",
			wantValue: "serif",
		},
		{
			name:      "numeric size",
			node:      `{"name": "Huge", "slug": "huge", "size": 48}`,
			wantLeaf:  true,
			wantType:  SizeEntry{},
			wantLabel: "huge",
			wantValue: "48",
		},
		{
			name:     "slug without color is not a leaf",
			node:     `{"slug": "primary"}`,
			wantLeaf: false,
		},
		{
			name:     "size without name is not a leaf",
			node:     `{"size": "1rem"}`,
			wantLeaf: false,
		},
		{
			name:     "null fields do not count",
			node:     `{"slug": "primary", "color": null}`,
			wantLeaf: false,
		},
		{
			name:     "nested group",
			node:     `{"font": {"size": {"small": "12px"}}}`,
			wantLeaf: false,
		},
		{
			name:     "array is never a leaf",
			node:     `[{"slug": "primary", "color": "#000"}]`,
			wantLeaf: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Decode([]byte(tt.node))
			require.NoError(t, err)

			leaf, ok := ClassifyLeaf(node)
			require.Equal(t, tt.wantLeaf, ok)
			if !tt.wantLeaf {
				assert.Nil(t, leaf)
				return
			}

			assert.IsType(t, tt.wantType, leaf)
			assert.Equal(t, tt.wantLabel, leaf.Label())
			assert.Equal(t, tt.wantValue, leaf.Value().Text())
		})
	}
}
