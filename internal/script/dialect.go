// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Dialect type and the process-wide dialect registry.
//
// Why a registry of templates instead of one hardcoded script?
//
// Schedulers differ in their directive syntax and in the environment
// variable that carries the array task index, but not in the sweep
// arithmetic itself. Keeping each scheduler's submission shape as a named
// template with its own default fields keeps the renderer scheduler-agnostic
// and makes a new scheduler one self-registering file.
//
// The referenced-field set of each template is derived once, by walking the
// parsed template tree, and drives caller-field validation: delimiters for
// template actions and bash runtime references are disjoint, so bash text
// passes through the template untouched and every {{.field}} action is a
// substitution the renderer must be able to satisfy.
package script

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/template"
	"text/template/parse"
)

// Dialect describes one scheduler's submission script: the template text
// and the default field values assumed for anything the caller leaves out.
type Dialect struct {
	Name     string
	Defaults map[string]any

	tmpl   *template.Template
	fields map[string]struct{}
}

// NewDialect parses text and records the set of fields it references.
// Dialects ship with the binary, so malformed template text panics.
func NewDialect(name, text string, defaults map[string]any) *Dialect {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		panic(fmt.Sprintf("script: dialect %q has invalid template text: %v", name, err))
	}
	return &Dialect{
		Name:     name,
		Defaults: defaults,
		tmpl:     tmpl,
		fields:   templateFields(tmpl),
	}
}

// HasField reports whether the dialect's template references the field.
func (d *Dialect) HasField(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Fields returns every field the dialect's template references, sorted.
func (d *Dialect) Fields() []string {
	names := make([]string, 0, len(d.fields))
	for name := range d.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute renders the template with the merged field values. A referenced
// field with no value is an error, never silent placeholder text.
func (d *Dialect) Execute(w io.Writer, data map[string]any) error {
	return d.tmpl.Execute(w, data)
}

// dialects is the process-wide registry. Registration happens during
// package initialization, so access needs no locking.
var dialects = map[string]*Dialect{}

// Register adds a dialect to the registry.
func Register(d *Dialect) {
	if _, exists := dialects[d.Name]; exists {
		panic(fmt.Sprintf("script: dialect %q already registered", d.Name))
	}
	slog.Debug("Registering scheduler dialect.", "name", d.Name)
	dialects[d.Name] = d
}

// Lookup returns the named dialect.
func Lookup(name string) (*Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %s)", ErrUnknownScheduler, name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// templateFields collects the top-level field names referenced anywhere in
// the template's parse trees.
func templateFields(t *template.Template) map[string]struct{} {
	fields := make(map[string]struct{})
	for _, tmpl := range t.Templates() {
		if tmpl.Tree != nil && tmpl.Tree.Root != nil {
			collectFields(tmpl.Tree.Root, fields)
		}
	}
	return fields
}

func collectFields(node parse.Node, into map[string]struct{}) {
	switch n := node.(type) {
	case *parse.ListNode:
		if n == nil {
			return
		}
		for _, item := range n.Nodes {
			collectFields(item, into)
		}
	case *parse.ActionNode:
		collectPipe(n.Pipe, into)
	case *parse.IfNode:
		collectBranch(&n.BranchNode, into)
	case *parse.RangeNode:
		collectBranch(&n.BranchNode, into)
	case *parse.WithNode:
		collectBranch(&n.BranchNode, into)
	case *parse.TemplateNode:
		collectPipe(n.Pipe, into)
	}
}

func collectBranch(b *parse.BranchNode, into map[string]struct{}) {
	collectPipe(b.Pipe, into)
	collectFields(b.List, into)
	collectFields(b.ElseList, into)
}

func collectPipe(pipe *parse.PipeNode, into map[string]struct{}) {
	if pipe == nil {
		return
	}
	for _, cmd := range pipe.Cmds {
		for _, arg := range cmd.Args {
			switch a := arg.(type) {
			case *parse.FieldNode:
				if len(a.Ident) > 0 {
					into[a.Ident[0]] = struct{}{}
				}
			case *parse.PipeNode:
				collectPipe(a, into)
			}
		}
	}
}
