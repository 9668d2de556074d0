package themejson

// Token is one flattened CSS custom property, without the leading "--".
type Token struct {
	Name  string `json:"name" yaml:"name"`   // "wp--preset--color--primary"
	Value Value  `json:"value" yaml:"value"` // "#000", copied verbatim from the document
}

// CustomProperty returns the name as written in a stylesheet: "--wp--preset--color--primary"
func (t Token) CustomProperty() string {
	return "--" + t.Name
}
