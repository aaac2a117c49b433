// Package internal provides the engine behind the check, fmt, ast, watch
// and serve commands.
//
// Engine parses query documents with a fixed set of parser options and
// turns syntax errors into Issues. Parsed documents are kept in a small
// in-memory LRU keyed by name and content, and per-file results can be
// persisted between runs with a Cache. StartWatching re-checks documents
// as they change on disk.
//
// Usage:
//
//	engine, err := internal.NewEngine(parser.Options{MaxDepth: parser.DefaultMaxDepth})
//	if err != nil {
//	    // handle error
//	}
//
//	issues, err := engine.Run("queries/user.graphql")
//	if err != nil {
//	    // handle error
//	}
//
//	for _, issue := range issues {
//	    fmt.Printf("Found issue: %s at %s\n", issue.Message, issue.Start)
//	}
//
// This package is intended for internal use and should not be imported by
// external packages.
package internal
