// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/iter"
	"github.com/tsgram/tsgram/internal/source"
)

// SubCompiler handles one file kind. A non-nil tokens filter requests a
// token dump holding the tokens it keeps.
type SubCompiler interface {
	CompileFile(ctx context.Context, r exc.Reporter, file source.File, tokens source.Filter[*typescript.Token]) (*Module, error)
}

// TokenKindFilter keeps tokens whose kind name is in kinds. An empty list
// keeps every token.
func TokenKindFilter(kinds []string) source.Filter[*typescript.Token] {
	keep := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		keep[k] = true
	}
	return iter.FilterFunc[*typescript.Token](func(ctx context.Context, tok *typescript.Token) bool {
		return len(keep) == 0 || keep[tok.Kind.String()]
	})
}

func DefaultSubCompilers(options typescript.Options) map[source.FileKind]SubCompiler {
	sc := &SubCompilerTypeScript{Options: options}
	return map[source.FileKind]SubCompiler{
		source.FileKindTypeScript:  sc,
		source.FileKindDeclaration: sc,
	}
}

type SubCompilerTypeScript struct {
	Options typescript.Options
}

// CompileFile parses file. A module is returned even when a fatal
// diagnostic is, so callers can still inspect the recovered tree.
func (self *SubCompilerTypeScript) CompileFile(ctx context.Context, r exc.Reporter, file source.File, tokens source.Filter[*typescript.Token]) (*Module, error) {
	parser := typescript.NewParserTypeScript(r, self.Options)
	res, err := parser.Parse(ctx, file)
	if res == nil {
		return nil, err
	}
	mod := &Module{
		URI:         file.Path(ctx),
		Kind:        file.Kind(ctx),
		Program:     res.Program,
		Diagnostics: res.Diagnostics,
		Stats:       res.Stats,
	}
	if tokens != nil {
		body, rerr := fs.ReadAll(ctx, file)
		if rerr != nil {
			return mod, rerr
		}
		toks, terr := iter.Collect(ctx, iter.NewIteratorFilter(typescript.NewLexer(body).Tokens(ctx), tokens))
		if terr != nil {
			return mod, terr
		}
		mod.Tokens = toks
	}
	return mod, err
}
