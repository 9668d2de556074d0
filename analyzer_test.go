package wptokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yacobolo/wptokens/internal/themejson"
)

func TestFindDuplicateNames(t *testing.T) {
	tokens := []themejson.Token{
		{Name: "wp--preset--color--primary", Value: themejson.String("#000")},
		{Name: "wp--preset--color--primary", Value: themejson.String("#111")},
		{Name: "wp--preset--color--primary", Value: themejson.String("#222")},
		{Name: "wp--preset--color--", Value: themejson.String("#f00")},
		{Name: "wp--custom--gap", Value: themejson.String("1rem")},
	}

	warnings := findDuplicateNames(tokens)

	assert.Equal(t, []string{
		`Duplicate property '--wp--preset--color--primary' defined as "#000" and "#111"`,
		"Property '--wp--preset--color--' has an empty slug",
	}, warnings)
}

func TestFindDuplicateNames_Clean(t *testing.T) {
	tokens := []themejson.Token{
		{Name: "wp--custom--a", Value: themejson.Number("1")},
		{Name: "wp--custom--b", Value: themejson.Number("2")},
	}

	warnings := findDuplicateNames(tokens)
	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
}
