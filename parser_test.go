package latex_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/eolymp/go-latexmath"
	"github.com/eolymp/go-latexmath/mathml"
	"github.com/google/go-cmp/cmp"
)

func TestParser(t *testing.T) {
	root := func(children ...*latex.Node) *latex.Node {
		return &latex.Node{Kind: latex.RootKind, Children: children}
	}

	group := func(children ...*latex.Node) *latex.Node {
		return &latex.Node{Kind: latex.RowKind, Data: "{}", Children: children}
	}

	letter := func(l string) *latex.Node {
		return &latex.Node{Kind: latex.LetterKind, Data: l}
	}

	number := func(n string) *latex.Node {
		return &latex.Node{Kind: latex.NumberKind, Data: n}
	}

	operator := func(o string) *latex.Node {
		return &latex.Node{Kind: latex.OperatorKind, Data: o, Tag: latex.Operator(o)}
	}

	prime := func(count int, glyph string) *latex.Node {
		return &latex.Node{Kind: latex.OperatorKind, Data: glyph, Tag: latex.Prime{Count: count}}
	}

	command := func(tag any, children ...*latex.Node) *latex.Node {
		return &latex.Node{Kind: latex.CommandKind, Tag: tag, Children: children}
	}

	commandp := func(tag any, params map[string]string, children ...*latex.Node) *latex.Node {
		return &latex.Node{Kind: latex.CommandKind, Tag: tag, Parameters: params, Children: children}
	}

	script := func(kind latex.Kind, children ...*latex.Node) *latex.Node {
		return &latex.Node{Kind: kind, Children: children}
	}

	tt := []struct {
		name   string
		input  string
		output *latex.Node
	}{
		{
			name:   "empty input",
			input:  "",
			output: root(),
		},
		{
			name:   "sequence",
			input:  "a + 1",
			output: root(letter("a"), operator("+"), number("1")),
		},
		{
			name:   "nested groups collapse",
			input:  "{{{a}}}",
			output: root(letter("a")),
		},
		{
			name:   "group",
			input:  "{a+b}",
			output: root(group(letter("a"), operator("+"), letter("b"))),
		},
		{
			name:   "empty group",
			input:  "{}",
			output: root(group()),
		},
		{
			name:   "superscript",
			input:  "a^b",
			output: root(script(latex.SuperscriptKind, letter("a"), letter("b"))),
		},
		{
			name:   "superscripts associate to the right",
			input:  "a^b^c",
			output: root(script(latex.SuperscriptKind, letter("a"), script(latex.SuperscriptKind, letter("b"), letter("c")))),
		},
		{
			name:   "subscript and superscript",
			input:  "a_i^2",
			output: root(script(latex.SubSupKind, letter("a"), letter("i"), number("2"))),
		},
		{
			name:   "superscript and subscript",
			input:  "a^2_i",
			output: root(script(latex.SubSupKind, letter("a"), letter("i"), number("2"))),
		},
		{
			name:   "script takes one atomic",
			input:  "a^bc",
			output: root(script(latex.SuperscriptKind, letter("a"), letter("b")), letter("c")),
		},
		{
			name:   "prime",
			input:  "f'",
			output: root(script(latex.SuperscriptKind, letter("f"), prime(1, "′"))),
		},
		{
			name:   "double prime",
			input:  "f''(x)",
			output: root(script(latex.SuperscriptKind, letter("f"), prime(2, "″")), &latex.Node{Kind: latex.OperatorKind, Data: "(", Tag: latex.Paren("(")}, letter("x"), &latex.Node{Kind: latex.OperatorKind, Data: ")", Tag: latex.Paren(")")}),
		},
		{
			name:   "primed atomic takes superscript",
			input:  "a'^2",
			output: root(script(latex.SuperscriptKind, script(latex.SuperscriptKind, letter("a"), prime(1, "′")), number("2"))),
		},
		{
			name:   "primed atomic takes subscript",
			input:  "a'_b",
			output: root(script(latex.SubscriptKind, script(latex.SuperscriptKind, letter("a"), prime(1, "′")), letter("b"))),
		},
		{
			name:   "primed atomic takes both scripts",
			input:  "a'_i^2",
			output: root(script(latex.SubSupKind, script(latex.SuperscriptKind, letter("a"), prime(1, "′")), letter("i"), number("2"))),
		},
		{
			name:   "prime in superscript",
			input:  "a^b'",
			output: root(script(latex.SuperscriptKind, letter("a"), script(latex.SuperscriptKind, letter("b"), prime(1, "′")))),
		},
		{
			name:   "script without base",
			input:  "{}^2",
			output: root(script(latex.SuperscriptKind, group(), number("2"))),
		},
		{
			name:   "fraction",
			input:  "\\frac{a}{b}",
			output: root(command(latex.Fraction{Kind: "frac"}, letter("a"), letter("b"))),
		},
		{
			name:   "fraction with digits",
			input:  "\\frac12",
			output: root(command(latex.Fraction{Kind: "frac"}, number("1"), number("2"))),
		},
		{
			name:   "fraction with extra argument",
			input:  "\\frac{a}{b}{c}",
			output: root(command(latex.Fraction{Kind: "frac"}, letter("a"), letter("b"), letter("c"))),
		},
		{
			name:   "fraction without second argument",
			input:  "{\\frac{a}}",
			output: root(command(latex.Fraction{Kind: "frac"}, letter("a"))),
		},
		{
			name:   "fraction with superscript",
			input:  "\\frac ab^2",
			output: root(script(latex.SuperscriptKind, command(latex.Fraction{Kind: "frac"}, letter("a"), letter("b")), number("2"))),
		},
		{
			name:   "square root",
			input:  "\\sqrt{x}",
			output: root(command(latex.Sqrt{}, letter("x"))),
		},
		{
			name:   "root with index",
			input:  "\\sqrt[3]{x}",
			output: root(command(latex.Sqrt{}, letter("x"), number("3"))),
		},
		{
			name:   "accent",
			input:  "\\hat{x}",
			output: root(command(latex.Over{Glyph: "^", Accent: true}, letter("x"))),
		},
		{
			name:   "style",
			input:  "\\mathbf{x}",
			output: root(command(latex.Style{Variant: mathml.Bold}, letter("x"))),
		},
		{
			name:  "overbrace with label",
			input: "\\overbrace{a+b}^{n}",
			output: root(command(latex.Overbrace{Glyph: "⏞"},
				group(letter("a"), operator("+"), letter("b")),
				letter("n"),
			)),
		},
		{
			name:   "underbrace without label keeps superscript outside",
			input:  "\\underbrace{a}^n",
			output: root(script(latex.SuperscriptKind, command(latex.Underbrace{Glyph: "⏟"}, letter("a")), letter("n"))),
		},
		{
			name:  "sum with limits",
			input: "\\sum_{i=1}^n",
			output: root(script(latex.UnderOverKind,
				command(latex.BigOperator{Glyph: "∑"}),
				group(letter("i"), operator("="), number("1")),
				letter("n"),
			)),
		},
		{
			name:   "sum with upper limit only",
			input:  "\\sum^n",
			output: root(script(latex.OverKind, command(latex.BigOperator{Glyph: "∑"}), letter("n"))),
		},
		{
			name:   "integral with limits",
			input:  "\\int^b_a",
			output: root(script(latex.SubSupKind, command(latex.Integral{Glyph: "∫"}), letter("a"), letter("b"))),
		},
		{
			name:   "integral with limits placed under",
			input:  "\\int\\limits_a",
			output: root(script(latex.UnderKind, command(latex.Integral{Glyph: "∫"}), letter("a"))),
		},
		{
			name:  "limit",
			input: "\\lim_{x\\to0}",
			output: root(script(latex.UnderKind,
				&latex.Node{Kind: latex.CommandKind, Data: "lim", Tag: latex.Limit{Name: "lim"}},
				group(letter("x"), &latex.Node{Kind: latex.CommandKind, Data: "to", Tag: latex.Command("to")}, number("0")),
			)),
		},
		{
			name:  "left and right",
			input: "\\left(a\\right.",
			output: root(commandp(latex.Left{}, map[string]string{"open": "(", "close": ""},
				letter("a"),
			)),
		},
		{
			name:   "sized delimiter",
			input:  "\\Bigl\\{",
			output: root(commandp(latex.Big{Size: "1.623em"}, map[string]string{"delimiter": "{"})),
		},
		{
			name:  "operatorname",
			input: "\\operatorname{sgn}{x}",
			output: root(command(latex.OperatorName{},
				group(letter("s"), letter("g"), letter("n")),
				letter("x"),
			)),
		},
		{
			name:   "text",
			input:  "\\text{if }x",
			output: root(&latex.Node{Kind: latex.TextKind, Data: "if ", Tag: latex.Verbatim{Kind: "text", Data: "if "}}, letter("x")),
		},
		{
			name:  "hspace",
			input: "\\hspace{2em}",
			output: root(&latex.Node{
				Kind:       latex.CommandKind,
				Data:       "hspace",
				Tag:        latex.Verbatim{Kind: "hspace", Data: "2em"},
				Parameters: map[string]string{"width": "2em"},
			}),
		},
		{
			name:  "environment",
			input: "\\begin{matrix}a & b \\\\ c\\end{matrix}",
			output: root(&latex.Node{
				Kind: latex.EnvironmentKind,
				Data: "matrix",
				Tag:  latex.EnvironmentStart{Name: "matrix"},
				Children: []*latex.Node{
					letter("a"),
					{Kind: latex.AmpersandKind},
					letter("b"),
					{Kind: latex.NewLineKind},
					letter("c"),
				},
			}),
		},
		{
			name:  "array",
			input: "\\begin{array}{c|l}a\\end{array}",
			output: root(&latex.Node{
				Kind:       latex.EnvironmentKind,
				Data:       "array",
				Tag:        latex.EnvironmentStart{Name: "array"},
				Parameters: map[string]string{"colspec": "c|l"},
				Children:   []*latex.Node{letter("a")},
			}),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := latex.Parse(tc.input)
			if err != nil {
				t.Fatalf("Unable to parse: %v", err)
			}

			if diff := cmp.Diff(tc.output, got); diff != "" {
				t.Errorf("Tree does not match (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParserGroupUnwrapping(t *testing.T) {
	want, err := latex.Parse("a")
	if err != nil {
		t.Fatal(err)
	}

	for _, input := range []string{"{a}", "{{a}}", "{{{a}}}"} {
		got, err := latex.Parse(input)
		if err != nil {
			t.Fatalf("Unable to parse %q: %v", input, err)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parsing %q must be the same as parsing \"a\" (-want +got):\n%s", input, diff)
		}
	}
}

func TestParserErrors(t *testing.T) {
	tt := []struct {
		name     string
		input    string
		expected string
		side     string
	}{
		{name: "unclosed group", input: "{a", expected: "}"},
		{name: "unexpected closing brace", input: "a}", expected: "expression"},
		{name: "unclosed environment", input: "\\begin{matrix}a", expected: "\\end{matrix}"},
		{name: "missing right", input: "\\left(a", expected: "\\right"},
		{name: "unclosed root index", input: "\\sqrt[3", expected: "delimiter \"]\""},
		{name: "missing superscript argument", input: "a^", expected: "argument of ^"},
		{name: "sized command without delimiter", input: "\\big a", expected: "delimiter after sized command"},
		{name: "bad left delimiter", input: "\\left a\\right)", side: "\\left"},
		{name: "bad right delimiter", input: "\\left(a\\right", side: "\\right"},
		{name: "bad middle delimiter", input: "\\left(a\\middle b\\right)", side: "\\middle"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := latex.Parse(tc.input)
			if err == nil {
				t.Fatal("Expected an error")
			}

			if tc.side != "" {
				var delimiter *latex.DelimiterError
				if !errors.As(err, &delimiter) {
					t.Fatalf("Expected DelimiterError, got %T: %v", err, err)
				}

				if delimiter.Side != tc.side {
					t.Errorf("Side does not match: want %v, got %v", tc.side, delimiter.Side)
				}

				return
			}

			var unexpected *latex.UnexpectedTokenError
			if !errors.As(err, &unexpected) {
				t.Fatalf("Expected UnexpectedTokenError, got %T: %v", err, err)
			}

			if unexpected.Expected != tc.expected {
				t.Errorf("Expected token does not match: want %q, got %q", tc.expected, unexpected.Expected)
			}
		})
	}
}

func TestParserEnvironmentMismatch(t *testing.T) {
	var logs bytes.Buffer

	parser := latex.NewParser("\\begin{pmatrix}a\\end{bmatrix}")
	parser.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))

	got, err := parser.Parse()
	if err != nil {
		t.Fatalf("Mismatched environment names must not fail: %v", err)
	}

	if name := got.Children[0].Data; name != "pmatrix" {
		t.Errorf("Environment must keep the name from \\begin, got %q", name)
	}

	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "end=bmatrix") {
		t.Errorf("Expected a warning about environment name, got %q", logs.String())
	}
}

func TestString(t *testing.T) {
	tree, err := latex.Parse("\\frac{a+1}{\\sqrt{b}}^2")
	if err != nil {
		t.Fatal(err)
	}

	if got := latex.String(tree); got != "a+1b2" {
		t.Errorf("String does not match: want %q, got %q", "a+1b2", got)
	}
}
