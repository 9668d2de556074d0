// Package wptokens turns a WordPress theme.json file into the CSS custom properties
// WordPress generates from it, and helps stylesheets use them.
//
// # Loading
//
// Find, read and flatten the theme.json of a workspace into a store:
//
//	store := themejson.NewStore()
//	result, err := wptokens.Load(wptokens.Config{Workspace: "."}, store)
//	for _, tok := range store.ToArray() {
//		fmt.Println(tok.CustomProperty(), tok.Value)
//	}
//
// # Completion
//
// Suggest custom properties while a property name is being typed:
//
//	prefix := wptokens.CompletionPrefix(line, column)
//	items := wptokens.Complete(store.ToArray(), prefix)
//
// # Linting
//
// Check var(--wp--*) references in stylesheets against the loaded tokens:
//
//	result, err := wptokens.Lint(wptokens.LintConfig{
//		ScanPaths: []string{"**/*.{css,sass,scss,less}"},
//	}, store.ToArray())
//
// # CLI Tool
//
//	go install github.com/yacobolo/wptokens/cmd/wptokens@latest
package wptokens
