package describe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr"
	dockerparser "github.com/novln/docker-parser"

	"github.com/signadot/galaxywrap/debug"
	"github.com/signadot/galaxywrap/escape"
	"github.com/signadot/galaxywrap/ir"
)

// Build turns a description into a raw <tool> tree. The result is not yet
// canonical; callers hand it to canon or assemble.
func Build(tool *Tool) (*ir.Node, error) {
	if tool.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrBadDescription)
	}
	name := tool.Name
	if name == "" {
		name = ToolNameFromID(tool.ID)
	}
	root := ir.Elem("tool",
		ir.A("id", tool.ID),
		ir.A("name", name),
		ir.A("version", tool.Version),
	)
	if tool.Description != "" {
		root.Append(ir.Elem("description").WithText(tool.Description))
	}
	if len(tool.Requirements) != 0 {
		reqs, err := buildRequirements(tool.Requirements)
		if err != nil {
			return nil, err
		}
		root.Append(reqs)
	}
	if tool.VersionCommand != "" {
		root.Append(ir.Elem("version_command").WithText(tool.VersionCommand))
	}
	if tool.Command != "" {
		root.Append(ir.Elem("command").WithText(tool.Command))
	}
	if len(tool.Inputs) != 0 {
		inputs, err := buildInputs(tool.Inputs)
		if err != nil {
			return nil, err
		}
		root.Append(inputs)
	}
	if len(tool.Outputs) != 0 {
		outputs, err := buildOutputs(tool.Outputs)
		if err != nil {
			return nil, err
		}
		root.Append(outputs)
	}
	if len(tool.Tests) != 0 {
		tests, err := buildTests(tool.Tests)
		if err != nil {
			return nil, err
		}
		root.Append(tests)
	}
	if tool.Help != "" {
		root.Append(ir.Elem("help").WithText(tool.Help))
	}
	if len(tool.Citations) != 0 {
		root.Append(buildCitations(tool.Citations))
	}
	if debug.Build() {
		debug.Logf("build %s: %s\n", tool.ID, debug.Tree{Node: root})
	}
	return root, nil
}

func buildRequirements(reqs []Requirement) (*ir.Node, error) {
	res := ir.Elem("requirements")
	for i := range reqs {
		req := &reqs[i]
		switch req.Type {
		case "", "package":
			if req.Name == "" {
				return nil, fmt.Errorf("%w: package requirement without name", ErrBadRequirement)
			}
			node := ir.Elem("requirement", ir.A("type", "package"))
			if req.Version != "" {
				node.Set("version", req.Version)
			}
			res.Append(node.WithText(req.Name))
		case "container":
			if _, err := dockerparser.Parse(req.Image); err != nil {
				return nil, fmt.Errorf("%w: container image %q: %v", ErrBadRequirement, req.Image, err)
			}
			res.Append(ir.Elem("container", ir.A("type", "docker")).WithText(req.Image))
		default:
			return nil, fmt.Errorf("%w: type %q", ErrBadRequirement, req.Type)
		}
	}
	return res, nil
}

func buildInputs(params []Param) (*ir.Node, error) {
	res := ir.Elem("inputs")
	for i := range params {
		p := &params[i]
		if p.Name == "" {
			return nil, fmt.Errorf("%w: input %d without name", ErrBadDescription, i)
		}
		node := ir.Elem("param", ir.A("name", p.Name))
		if p.Type != "" {
			node.Set("type", p.Type)
		}
		if p.Argument != "" {
			node.Set("argument", p.Argument)
		}
		if p.Label != "" {
			node.Set("label", p.Label)
		}
		if p.Help != "" {
			node.Set("help", p.Help)
		}
		if p.Min != "" {
			node.Set("min", p.Min)
		}
		if p.Max != "" {
			node.Set("max", p.Max)
		}
		if p.Optional {
			node.Set("optional", "true")
		}
		if p.Default.IsSet() {
			v, err := escape.Esc(p.Default.Value)
			if err != nil {
				return nil, fmt.Errorf("input %q: %w", p.Name, err)
			}
			node.Set("value", v)
		}
		res.Append(node)
	}
	return res, nil
}

func buildOutputs(outputs []Output) (*ir.Node, error) {
	res := ir.Elem("outputs")
	for i := range outputs {
		o := &outputs[i]
		if o.Name == "" {
			return nil, fmt.Errorf("%w: output %d without name", ErrBadDescription, i)
		}
		node := ir.Elem("data", ir.A("name", o.Name))
		if o.Format != "" {
			node.Set("format", o.Format)
		}
		if o.Label != "" {
			node.Set("label", o.Label)
		}
		if o.Filter != "" {
			if _, err := expr.Compile(o.Filter, expr.AllowUndefinedVariables()); err != nil {
				return nil, fmt.Errorf("%w: output %q: %v", ErrBadFilter, o.Name, err)
			}
			node.Append(ir.Elem("filter").WithText(o.Filter))
		}
		res.Append(node)
	}
	return res, nil
}

func buildTests(tests []Test) (*ir.Node, error) {
	res := ir.Elem("tests")
	for i := range tests {
		tc := &tests[i]
		node := ir.Elem("test")
		for _, name := range sortedKeys(tc.Params) {
			v, err := escape.Esc(tc.Params[name].Value)
			if err != nil {
				return nil, fmt.Errorf("test %d param %q: %w", i, name, err)
			}
			node.Append(ir.Elem("param", ir.A("name", name), ir.A("value", v)))
		}
		for _, name := range sortedKeys(tc.Expects) {
			vals := tc.Expects[name]
			escaped := make([]string, len(vals))
			for j, v := range vals {
				ev, err := escape.Esc(escape.Str(v))
				if err != nil {
					return nil, err
				}
				escaped[j] = ev
			}
			node.Append(ir.Elem("output",
				ir.A("name", name),
				ir.A("value", strings.Join(escaped, ",")),
			))
		}
		res.Append(node)
	}
	return res, nil
}

func buildCitations(citations []Citation) *ir.Node {
	res := ir.Elem("citations")
	for i := range citations {
		c := &citations[i]
		typ := c.Type
		if typ == "" {
			typ = "doi"
		}
		res.Append(ir.Elem("citation", ir.A("type", typ)).WithText(c.Value))
	}
	return res
}

// sortedKeys keeps map-driven sections deterministic; the canonicalizer
// fixes section order, not the order of entries inside a section.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
