package main

import (
	"fmt"
	"slices"
	"strings"
)

const (
	minArity = 2
	maxArity = 9

	curryImport = "github.com/ib-77/appl/pkg/curry"
)

// kind describes how a container kind spells its types in generated code.
type kind struct {
	// Package is the package clause of the generated file.
	Package string
	// Prefix holds the type parameters fixed across an operation, e.g. "L, ".
	Prefix string
	// Noun and Nouns name the container in doc comments.
	Noun  string
	Nouns string
	// Imports lists every import path of the generated file.
	Imports []string

	container string
}

var kinds = map[string]kind{
	"seq": {
		Package:   "seq",
		Noun:      "a sequence",
		Nouns:     "sequences",
		Imports:   []string{curryImport},
		container: "Seq[%s]",
	},
	"either": {
		Package:   "either",
		Prefix:    "L, ",
		Noun:      "an Either",
		Nouns:     "Eithers",
		Imports:   []string{curryImport},
		container: "Either[L, %s]",
	},
	"result": {
		Package:   "solo",
		Noun:      "a result",
		Nouns:     "results",
		Imports:   []string{curryImport, "github.com/ib-77/appl/pkg/rop"},
		container: "rop.Result[%s]",
	},
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Wrap spells the container type holding t.
func (k kind) Wrap(t string) string {
	return fmt.Sprintf(k.container, t)
}

// arity holds the pre-rendered pieces of one N-ary group.
type arity struct {
	N int
	// TypeParams is "A, B, R" for N == 2.
	TypeParams string
	// Flat is the plain function type, e.g. "func(A, B) R".
	Flat string
	// Rest is the curried chain left after the first argument.
	Rest string
	// First is the type of the first argument.
	First string
	// Args declares the argument containers, e.g. "a Seq[A], b Seq[B]".
	Args string
	// ApplyChain and ApplyFuncChain fold Apply across every argument.
	ApplyChain     string
	ApplyFuncChain string
}

var typeNames = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}

func newArity(k kind, n int) arity {
	types := typeNames[:n]

	args := make([]string, 0, n)
	for _, t := range types {
		args = append(args, strings.ToLower(t)+" "+k.Wrap(t))
	}

	curried := fmt.Sprintf("curry.Curry%d[%s, R]", n, strings.Join(types, ", "))
	applyChain := fmt.Sprintf("Map(ff, %s)", curried)
	applyFuncChain := fmt.Sprintf("ApplyFunc(curry.Curry%d(fn), a)", n)
	for i, t := range types {
		applyChain = fmt.Sprintf("Apply(%s, %s)", applyChain, strings.ToLower(t))
		if i > 0 {
			applyFuncChain = fmt.Sprintf("Apply(%s, %s)", applyFuncChain, strings.ToLower(t))
		}
	}

	return arity{
		N:              n,
		TypeParams:     strings.Join(types, ", ") + ", R",
		Flat:           fmt.Sprintf("func(%s) R", strings.Join(types, ", ")),
		Rest:           curriedChain(types[1:]),
		First:          types[0],
		Args:           strings.Join(args, ", "),
		ApplyChain:     applyChain,
		ApplyFuncChain: applyFuncChain,
	}
}

func curriedChain(types []string) string {
	chain := "R"
	for i := len(types) - 1; i >= 0; i-- {
		chain = fmt.Sprintf("func(%s) %s", types[i], chain)
	}
	return chain
}
