// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package treedump renders syntax trees as YAML documents. Every struct
// becomes a mapping whose first key is its type name; fields holding zero
// values are left out.
package treedump

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
)

var (
	spanType     = reflect.TypeOf(typescript.Span{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Marshal renders v as a YAML document.
func Marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(Node(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Node builds the YAML node for v. A nil value becomes a null scalar.
func Node(v any) *yaml.Node {
	n := value(reflect.ValueOf(v))
	if n == nil {
		return scalar("!!null", "null")
	}
	return n
}

func scalar(tag string, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func str(v string) *yaml.Node {
	return scalar("!!str", v)
}

// Numbers and booleans carry no tag so the encoder writes them plain.
// value returns nil for values that are omitted from the dump.
func value(v reflect.Value) *yaml.Node {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return value(v.Elem())
	}
	if v.Type() == spanType {
		s := v.Interface().(typescript.Span)
		return str(fmt.Sprintf("%d..%d", s.Start, s.End))
	}
	if v.Kind() != reflect.Struct && v.Type().Implements(stringerType) {
		return str(v.Interface().(fmt.Stringer).String())
	}
	switch v.Kind() {
	case reflect.Struct:
		return mapping(v)
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return nil
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i := 0; i < v.Len(); i = i + 1 {
			item := value(v.Index(i))
			if item == nil {
				item = scalar("!!null", "null")
			}
			seq.Content = append(seq.Content, item)
		}
		return seq
	case reflect.String:
		return str(v.String())
	case reflect.Bool:
		if !v.Bool() {
			return nil
		}
		return scalar("", "true")
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar("", strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return scalar("", strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		return scalar("", strconv.FormatFloat(v.Float(), 'g', -1, 64))
	default:
		return str(fmt.Sprintf("%v", v.Interface()))
	}
}

func mapping(v reflect.Value) *yaml.Node {
	t := v.Type()
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	m.Content = append(m.Content, str("type"), str(t.Name()))
	for i := 0; i < t.NumField(); i = i + 1 {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.Kind() == reflect.Struct && fv.IsZero() {
			continue
		}
		n := value(fv)
		if n == nil {
			continue
		}
		m.Content = append(m.Content, str(f.Name), n)
	}
	return m
}
