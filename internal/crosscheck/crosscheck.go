// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package crosscheck compares a parsed program against the tree-sitter
// TypeScript grammar. Only top-level declaration counts are compared; the
// two trees are shaped too differently for anything finer.
package crosscheck

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	tstypescript "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/source"
)

// Declaration categories.
const (
	CategoryType      = "type"
	CategoryInterface = "interface"
	CategoryEnum      = "enum"
	CategoryClass     = "class"
	CategoryFunction  = "function"
	CategoryModule    = "module"
	CategoryVariable  = "variable"
	CategoryImport    = "import"
	CategoryExport    = "export"
)

// Counts maps a declaration category to the number of top-level
// declarations in it.
type Counts map[string]int

type Checker struct{}

func New() *Checker {
	return &Checker{}
}

// Check returns one CodeCrossCheckMismatch exception per category whose
// counts disagree, plus one when only tree-sitter finds a syntax error.
func (c *Checker) Check(ctx context.Context, file source.File, program *typescript.Program) ([]exc.Exception, error) {
	src, err := fs.ReadAll(ctx, file)
	if err != nil {
		return nil, err
	}
	uri := file.Path(ctx)
	theirs, hasError, err := CountTreeSitter(ctx, src)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, err)
	}
	return Compare(uri, CountProgram(program), theirs, hasError), nil
}

// Compare lists the disagreements between two count sets.
func Compare(uri string, ours Counts, theirs Counts, theirError bool) []exc.Exception {
	loc := exc.Location{URI: uri}
	var out []exc.Exception
	if theirError {
		out = append(out, exc.New(loc, exc.CodeCrossCheckMismatch, "tree-sitter reports a syntax error"))
	}
	categories := make(map[string]bool, len(ours)+len(theirs))
	for k := range ours {
		categories[k] = true
	}
	for k := range theirs {
		categories[k] = true
	}
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if ours[k] != theirs[k] {
			out = append(out, exc.New(loc, exc.CodeCrossCheckMismatch,
				fmt.Sprintf("%s declarations: tsgram found %d, tree-sitter found %d", k, ours[k], theirs[k])))
		}
	}
	return out
}

func CountProgram(program *typescript.Program) Counts {
	counts := Counts{}
	if program == nil {
		return counts
	}
	for _, stmt := range program.Body {
		if k := categoryOf(stmt); k != "" {
			counts[k] = counts[k] + 1
		}
	}
	return counts
}

func categoryOf(stmt typescript.Statement) string {
	switch stmt.(type) {
	case *typescript.TSTypeAliasDeclaration:
		return CategoryType
	case *typescript.TSInterfaceDeclaration:
		return CategoryInterface
	case *typescript.TSEnumDeclaration:
		return CategoryEnum
	case *typescript.ClassDeclaration:
		return CategoryClass
	case *typescript.FunctionDeclaration:
		return CategoryFunction
	case *typescript.TSModuleDeclaration:
		return CategoryModule
	case *typescript.VariableDeclaration:
		return CategoryVariable
	case *typescript.ImportDeclaration, *typescript.TSImportEqualsDeclaration:
		return CategoryImport
	case *typescript.ExportNamedDeclaration, *typescript.ExportAllDeclaration,
		*typescript.ExportDefaultDeclaration, *typescript.TSExportAssignment,
		*typescript.TSNamespaceExportDeclaration:
		return CategoryExport
	}
	return ""
}

// CountTreeSitter parses src with tree-sitter and counts its top-level
// declarations. hasError reports whether the tree contains error nodes.
func CountTreeSitter(ctx context.Context, src []byte) (Counts, bool, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tstypescript.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, false, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()
	root := tree.RootNode()
	counts := Counts{}
	if root == nil {
		return counts, true, nil
	}
	for i := 0; i < int(root.NamedChildCount()); i = i + 1 {
		if k := nodeCategory(root.NamedChild(i)); k != "" {
			counts[k] = counts[k] + 1
		}
	}
	return counts, root.HasError(), nil
}

func nodeCategory(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "type_alias_declaration":
		return CategoryType
	case "interface_declaration":
		return CategoryInterface
	case "enum_declaration":
		return CategoryEnum
	case "class_declaration", "abstract_class_declaration":
		return CategoryClass
	case "function_declaration", "function_signature", "generator_function_declaration":
		return CategoryFunction
	case "module", "internal_module":
		return CategoryModule
	case "lexical_declaration", "variable_declaration":
		return CategoryVariable
	case "import_statement", "import_alias":
		return CategoryImport
	case "export_statement":
		return CategoryExport
	case "ambient_declaration":
		// `declare global { }` has no declaration child, only its block.
		for i := 0; i < int(n.NamedChildCount()); i = i + 1 {
			child := n.NamedChild(i)
			if child.Type() == "statement_block" {
				return CategoryModule
			}
			if k := nodeCategory(child); k != "" {
				return k
			}
		}
	case "expression_statement":
		// Older grammars parse a bare `namespace N {}` as an expression.
		if n.NamedChildCount() == 1 && n.NamedChild(0).Type() == "internal_module" {
			return CategoryModule
		}
	}
	return ""
}
