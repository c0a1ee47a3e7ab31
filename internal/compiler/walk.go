// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"reflect"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
)

var nodeType = reflect.TypeOf((*typescript.Node)(nil)).Elem()

// walkNode calls f for node and then for every node below it, parents
// before children and fields in declaration order.
func walkNode(node typescript.Node, f func(typescript.Node)) {
	if node == nil {
		return
	}
	v := reflect.ValueOf(node)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return
	}
	f(node)
	walkValue(v, f)
}

func walkValue(v reflect.Value, f func(typescript.Node)) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		walkValue(v.Elem(), f)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i = i + 1 {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			walkField(v.Field(i), f)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i = i + 1 {
			walkField(v.Index(i), f)
		}
	}
}

func walkField(v reflect.Value, f func(typescript.Node)) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return
		}
		if v.Type().Implements(nodeType) {
			walkNode(v.Interface().(typescript.Node), f)
			return
		}
		walkValue(v, f)
	case reflect.Struct, reflect.Slice:
		// Value structs such as Modifiers hold nodes without being one.
		walkValue(v, f)
	}
}

// countTypeNodes counts the type nodes in program.
func countTypeNodes(program *typescript.Program) int {
	n := 0
	walkNode(program, func(node typescript.Node) {
		if _, ok := node.(typescript.TSType); ok {
			n = n + 1
		}
	})
	return n
}
