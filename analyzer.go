package wptokens

import (
	"fmt"
	"strings"

	"github.com/yacobolo/wptokens/internal/themejson"
)

// findDuplicateNames warns about tokens that share a name. WordPress emits the last
// declaration, so only one of them reaches the stylesheet.
func findDuplicateNames(tokens []themejson.Token) []string {
	first := make(map[string]themejson.Token)
	reported := make(map[string]bool)
	warnings := []string{}

	for _, tok := range tokens {
		existing, found := first[tok.Name]
		if !found {
			first[tok.Name] = tok
			continue
		}
		if reported[tok.Name] {
			continue
		}
		reported[tok.Name] = true

		warnings = append(warnings, fmt.Sprintf(
			"Duplicate property '--%s' defined as %q and %q",
			tok.Name, existing.Value.Text(), tok.Value.Text(),
		))
	}

	for _, tok := range tokens {
		if strings.HasSuffix(tok.Name, "--") {
			warnings = append(warnings, fmt.Sprintf("Property '--%s' has an empty slug", tok.Name))
		}
	}

	return warnings
}
