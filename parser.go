package wptokens

import (
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// WordPressPrefix starts every custom property generated from theme.json
const WordPressPrefix = "--wp--"

// PropertyReference is a var(--name) usage found in a stylesheet
type PropertyReference struct {
	Name     string       // "wp--preset--color--primary" (without the leading "--")
	Location FileLocation // Position of the "--"
}

// Declaration is a "property: value" pair inside a rule block
type Declaration struct {
	Property string       // "color"
	Value    string       // "#000"
	Location FileLocation // Position of the first value token
}

// lexToken is a lexer token with its byte offset in the stylesheet
type lexToken struct {
	tt     css.TokenType
	text   string
	offset int
}

// parserState maintains context while scanning a stylesheet
type parserState struct {
	filename   string
	content    string
	lineStarts []int
	depth      int        // Rule block nesting
	stmt       []lexToken // Tokens since the last ; { or }
	inVar      bool       // Just saw "var("
	refs       []PropertyReference
	decls      []Declaration
}

// ParseStylesheet extracts custom property references and declarations from CSS, SCSS
// or LESS source. The lexer is tolerant, so preprocessor syntax is skipped rather than
// rejected.
func ParseStylesheet(content, filename string) ([]PropertyReference, []Declaration) {
	state := &parserState{
		filename:   filename,
		content:    content,
		lineStarts: lineStarts(content),
	}

	lexer := css.NewLexer(parse.NewInputString(content))
	offset := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		tok := lexToken{tt: tt, text: string(text), offset: offset}
		offset += len(text)

		state.handleToken(tok)
	}

	return state.refs, state.decls
}

func (s *parserState) handleToken(tok lexToken) {
	switch tok.tt {
	case css.WhitespaceToken, css.CommentToken:
		if tok.tt == css.WhitespaceToken {
			s.stmt = append(s.stmt, tok)
		}
		return
	}

	// var( must be followed by the property name
	if s.inVar {
		s.inVar = false
		if isCustomPropertyName(tok.tt, tok.text) && strings.HasPrefix(tok.text, WordPressPrefix) {
			s.refs = append(s.refs, PropertyReference{
				Name:     strings.TrimPrefix(tok.text, "--"),
				Location: s.location(tok.offset),
			})
		}
	}
	if tok.tt == css.FunctionToken && strings.EqualFold(tok.text, "var(") {
		s.inVar = true
	}

	switch tok.tt {
	case css.LeftBraceToken:
		s.depth++
		s.stmt = s.stmt[:0]
	case css.RightBraceToken:
		if s.depth > 0 {
			s.flushDeclaration()
			s.depth--
		}
		s.stmt = s.stmt[:0]
	case css.SemicolonToken:
		if s.depth > 0 {
			s.flushDeclaration()
		}
		s.stmt = s.stmt[:0]
	default:
		s.stmt = append(s.stmt, tok)
	}
}

// flushDeclaration records the current statement if it has the shape "ident : value"
func (s *parserState) flushDeclaration() {
	toks := trimWhitespace(s.stmt)
	if len(toks) < 3 || !isPropertyName(toks[0]) {
		return
	}

	rest := trimWhitespace(toks[1:])
	if len(rest) < 2 || rest[0].tt != css.ColonToken {
		return
	}

	valueToks := trimWhitespace(rest[1:])
	if len(valueToks) == 0 {
		return
	}

	var value strings.Builder
	for _, t := range valueToks {
		value.WriteString(t.text)
	}

	s.decls = append(s.decls, Declaration{
		Property: toks[0].text,
		Value:    value.String(),
		Location: s.location(valueToks[0].offset),
	})
}

// location converts a byte offset to a 1-based line and column
func (s *parserState) location(offset int) FileLocation {
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	start := s.lineStarts[line-1]

	end := len(s.content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}

	return FileLocation{
		File:   s.filename,
		Line:   line,
		Column: offset - start + 1,
		Text:   strings.TrimRight(s.content[start:end], "\r"),
	}
}

// CompletionPrefix returns the custom property fragment that ends at a 1-based column of
// line: "--wp--pre" for "color: var(--wp--pre|". It returns "" when the cursor is not
// on a property name.
func CompletionPrefix(line string, column int) string {
	end := column - 1
	if end < 0 {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}

	lexer := css.NewLexer(parse.NewInputString(line[:end]))

	var toks []lexToken
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		toks = append(toks, lexToken{tt: tt, text: string(text)})
	}
	if len(toks) == 0 {
		return ""
	}

	last := toks[len(toks)-1]
	if (last.tt == css.IdentToken || isCustomPropertyName(last.tt, last.text)) && strings.HasPrefix(last.text, "-") {
		return last.text
	}

	// "--" on its own lexes as two delimiters
	var dashes string
	for i := len(toks) - 1; i >= 0 && len(dashes) < 2; i-- {
		if toks[i].tt != css.DelimToken || toks[i].text != "-" {
			break
		}
		dashes += "-"
	}
	return dashes
}

func isCustomPropertyName(tt css.TokenType, text string) bool {
	return (tt == css.IdentToken || tt == css.CustomPropertyNameToken) && strings.HasPrefix(text, "--")
}

func isPropertyName(tok lexToken) bool {
	return tok.tt == css.IdentToken || tok.tt == css.CustomPropertyNameToken
}

func trimWhitespace(toks []lexToken) []lexToken {
	for len(toks) > 0 && toks[0].tt == css.WhitespaceToken {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].tt == css.WhitespaceToken {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// lineStarts returns the byte offset of the first character of every line
func lineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}
