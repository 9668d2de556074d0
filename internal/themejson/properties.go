package themejson

import "strings"

// Category groups the tokens derived from one theme.json sub-tree
type Category string

// Categories in output order
const (
	CategoryCustom     Category = "custom"
	CategoryColor      Category = "color"
	CategoryGradient   Category = "gradient"
	CategoryFontFamily Category = "fontFamily"
	CategoryFontSizes  Category = "fontSizes"
	CategorySpacing    Category = "spacing"
	CategoryLayout     Category = "layout"
)

// CategorySpec says where a category's tokens live under "settings" and how they are named
type CategorySpec struct {
	Category Category
	Path     string // dotted path below settings: "color.palette"
	Prefix   string // "--color"
	Label    string // "preset", "custom" or "style"
}

// Categories lists every category in the fixed enumeration order used by ToArray.
var Categories = []CategorySpec{
	{Category: CategoryCustom, Path: "custom", Prefix: "", Label: "custom"},
	{Category: CategoryColor, Path: "color.palette", Prefix: "--color", Label: "preset"},
	{Category: CategoryGradient, Path: "color.gradients", Prefix: "--gradient", Label: "preset"},
	{Category: CategoryFontFamily, Path: "typography.fontFamilies", Prefix: "--font-family", Label: "preset"},
	{Category: CategoryFontSizes, Path: "typography.fontSizes", Prefix: "--font-size", Label: "preset"},
	{Category: CategorySpacing, Path: "spacing.spacingSizes", Prefix: "--spacing", Label: "preset"},
	{Category: CategoryLayout, Path: "layout", Prefix: "--global", Label: "style"},
}

// LookupCategory finds a category spec by name
func LookupCategory(name string) (CategorySpec, bool) {
	for _, spec := range Categories {
		if string(spec.Category) == name {
			return spec, true
		}
	}
	return CategorySpec{}, false
}

// Collection maps each category to its tokens in discovery order
type Collection map[Category][]Token

// ToArray concatenates every category in enumeration order
func (c Collection) ToArray() []Token {
	var total int
	for _, tokens := range c {
		total += len(tokens)
	}

	out := make([]Token, 0, total)
	for _, spec := range Categories {
		out = append(out, c[spec.Category]...)
	}
	return out
}

// BuildProperties flattens every category of doc. A category whose path is missing,
// or resolves to a scalar, gets an empty list.
func BuildProperties(doc Value) Collection {
	props := make(Collection, len(Categories))

	settings, _ := doc.Field("settings")
	for _, spec := range Categories {
		node, ok := Resolve(settings, spec.Path)
		if !ok || !node.IsComposite() {
			props[spec.Category] = []Token{}
			continue
		}
		props[spec.Category] = Flatten(node, spec.Prefix, spec.Label)
	}

	return props
}

// Resolve follows a dotted path of object fields starting at root
func Resolve(root Value, path string) (Value, bool) {
	node := root
	for _, segment := range strings.Split(path, ".") {
		next, ok := node.Field(segment)
		if !ok {
			return Value{}, false
		}
		node = next
	}
	return node, true
}
