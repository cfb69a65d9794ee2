package main

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

var fileTemplate = template.Must(template.New("apply_gen").Parse(`// Code generated by applgen; DO NOT EDIT.

package {{.Kind.Package}}

import (
{{- range .Kind.Imports}}
	"{{.}}"
{{- end}}
)
{{range .Arities}}
// Apply{{.N}} applies {{$.Kind.Noun}} of {{.N}}-argument functions to {{.N}} argument {{$.Kind.Nouns}}.
func Apply{{.N}}[{{$.Kind.Prefix}}{{.TypeParams}} any](ff {{$.Kind.Wrap .Flat}}, {{.Args}}) {{$.Kind.Wrap "R"}} {
	return {{.ApplyChain}}
}

// Apply{{.N}}Func lifts a plain {{.N}}-argument function over {{.N}} argument {{$.Kind.Nouns}}.
func Apply{{.N}}Func[{{$.Kind.Prefix}}{{.TypeParams}} any](fn {{.Flat}}, {{.Args}}) {{$.Kind.Wrap "R"}} {
	return {{.ApplyFuncChain}}
}

// Partial{{.N}} applies the first argument only, leaving {{$.Kind.Noun}} of the curried remainder.
func Partial{{.N}}[{{$.Kind.Prefix}}{{.TypeParams}} any](ff {{$.Kind.Wrap .Flat}}, a {{$.Kind.Wrap .First}}) {{$.Kind.Wrap .Rest}} {
	return Apply(Map(ff, curry.Curry{{.N}}[{{.TypeParams}}]), a)
}

// Partial{{.N}}Func is Partial{{.N}} for a plain function.
func Partial{{.N}}Func[{{$.Kind.Prefix}}{{.TypeParams}} any](fn {{.Flat}}, a {{$.Kind.Wrap .First}}) {{$.Kind.Wrap .Rest}} {
	return ApplyFunc(curry.Curry{{.N}}(fn), a)
}
{{end}}`))

type fileData struct {
	Kind    kind
	Arities []arity
}

// render produces the formatted source of the N-ary apply file for k,
// covering arities 2..upTo.
func render(k kind, upTo int) ([]byte, error) {
	if upTo < minArity || upTo > maxArity {
		return nil, fmt.Errorf("arity %d out of range [%d, %d]", upTo, minArity, maxArity)
	}

	data := fileData{Kind: k}
	for n := minArity; n <= upTo; n++ {
		data.Arities = append(data.Arities, newArity(k, n))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process("apply_gen.go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
