package themejson

// Leaf is a terminal record of one of the known theme.json preset shapes.
// A leaf is emitted as a single token and never recursed into.
type Leaf interface {
	// Label is the token name suffix, the record's literal slug.
	Label() string
	// Value is the token value.
	Value() Value

	isLeaf()
}

// SizeEntry matches settings.spacing.spacingSizes and settings.typography.fontSizes entries
type SizeEntry struct {
	Name string
	Slug string
	Size Value
}

// PaletteEntry matches settings.color.palette entries
type PaletteEntry struct {
	Slug  string
	Color Value
}

// FontFamilyEntry matches settings.typography.fontFamilies entries
type FontFamilyEntry struct {
	Slug       string
	FontFamily Value
}

// GradientEntry matches settings.color.gradients entries
type GradientEntry struct {
	Slug     string
	Gradient Value
}

func (e SizeEntry) Label() string { return e.Slug }
func (e SizeEntry) Value() Value  { return e.Size }
func (SizeEntry) isLeaf()         {}

func (e PaletteEntry) Label() string { return e.Slug }
func (e PaletteEntry) Value() Value  { return e.Color }
func (PaletteEntry) isLeaf()         {}

func (e FontFamilyEntry) Label() string { return e.Slug }
func (e FontFamilyEntry) Value() Value  { return e.FontFamily }
func (FontFamilyEntry) isLeaf()         {}

func (e GradientEntry) Label() string { return e.Slug }
func (e GradientEntry) Value() Value  { return e.Gradient }
func (GradientEntry) isLeaf()         {}

// ClassifyLeaf checks node's own fields against the leaf shapes in precedence order:
// name+size, slug+color, fontFamily, gradient. A missing slug yields an empty label.
func ClassifyLeaf(node Value) (Leaf, bool) {
	if node.Kind() != KindObject {
		return nil, false
	}

	slug := fieldText(node, "slug")

	switch {
	case node.Has("name") && node.Has("size"):
		size, _ := node.Field("size")
		return SizeEntry{Name: fieldText(node, "name"), Slug: slug, Size: size}, true
	case node.Has("slug") && node.Has("color"):
		color, _ := node.Field("color")
		return PaletteEntry{Slug: slug, Color: color}, true
	case node.Has("fontFamily"):
		family, _ := node.Field("fontFamily")
		return FontFamilyEntry{Slug: slug, FontFamily: family}, true
	case node.Has("gradient"):
		gradient, _ := node.Field("gradient")
		return GradientEntry{Slug: slug, Gradient: gradient}, true
	}
	return nil, false
}

func fieldText(node Value, key string) string {
	f, _ := node.Field(key)
	return f.Text()
}
