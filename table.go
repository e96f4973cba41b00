package latex

import (
	"fmt"
	"io"
	"sync"

	"github.com/tidwall/btree"
	"gopkg.in/yaml.v3"
)

// Category tells how the lowering pass renders a command found in a Table.
type Category int

const (
	FunctionCategory Category = iota + 1
	OperatorCategory
	LetterCategory
	SpaceCategory
)

func (c Category) String() string {
	switch c {
	case FunctionCategory:
		return "function"
	case OperatorCategory:
		return "operator"
	case LetterCategory:
		return "letter"
	case SpaceCategory:
		return "space"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Definition is the meaning of a command which is resolved through a Table.
type Definition struct {
	Category Category
	Text     string  // function name, operator or letter glyph
	Width    float32 // space width in em
}

// Table maps names of commands to their definitions. Every name has at most
// one definition, adding a name again replaces it, whatever the category.
//
// Table is not safe for concurrent modification. Build it first, then share it
// between compilations or hand out copies with Copy.
type Table struct {
	defs btree.Map[string, Definition]
}

var builtin = sync.OnceValue(func() *Table {
	t := &Table{}
	for _, name := range builtinFunctions {
		t.AddFunction(name, name)
	}

	for name, text := range builtinOperators {
		t.AddOperator(name, text)
	}

	for name, text := range builtinLetters {
		t.AddLetter(name, text)
	}

	for name, width := range builtinSpaces {
		t.AddSpace(name, width)
	}

	return t
})

var builtinMu sync.Mutex

// NewTable returns a table with the default functions, operators, letters and spaces.
func NewTable() *Table {
	builtinMu.Lock()
	defer builtinMu.Unlock()

	return builtin().Copy()
}

// Copy returns an independent copy of the table. Copying is cheap, the data is
// shared until either table is modified. Copy counts as a modification of t
// and must not run concurrently with other uses of t.
func (t *Table) Copy() *Table {
	return &Table{defs: *t.defs.Copy()}
}

// Len returns the number of definitions in the table.
func (t *Table) Len() int {
	return t.defs.Len()
}

// Lookup returns definition of a command by name, without a backslash.
func (t *Table) Lookup(name string) (Definition, bool) {
	return t.defs.Get(name)
}

// Scan calls fn for every definition in the order of names until fn returns false.
func (t *Table) Scan(fn func(name string, def Definition) bool) {
	t.defs.Scan(fn)
}

func (t *Table) Function(name string) (string, bool) {
	return t.text(name, FunctionCategory)
}

func (t *Table) Operator(name string) (string, bool) {
	return t.text(name, OperatorCategory)
}

func (t *Table) Letter(name string) (string, bool) {
	return t.text(name, LetterCategory)
}

func (t *Table) Space(name string) (float32, bool) {
	def, ok := t.defs.Get(name)
	if !ok || def.Category != SpaceCategory {
		return 0, false
	}

	return def.Width, true
}

func (t *Table) AddFunction(name, text string) {
	t.defs.Set(name, Definition{Category: FunctionCategory, Text: text})
}

func (t *Table) AddOperator(name, text string) {
	t.defs.Set(name, Definition{Category: OperatorCategory, Text: text})
}

func (t *Table) AddLetter(name, text string) {
	t.defs.Set(name, Definition{Category: LetterCategory, Text: text})
}

func (t *Table) AddSpace(name string, width float32) {
	t.defs.Set(name, Definition{Category: SpaceCategory, Width: width})
}

func (t *Table) text(name string, category Category) (string, bool) {
	def, ok := t.defs.Get(name)
	if !ok || def.Category != category {
		return "", false
	}

	return def.Text, true
}

// TableFile is the YAML document read by Table.Load, for example:
//
//	functions:
//	  sgn: sgn
//	operators:
//	  xor: ⊻
//	spaces:
//	  hair: 0.05
type TableFile struct {
	Functions map[string]string  `yaml:"functions"`
	Operators map[string]string  `yaml:"operators"`
	Letters   map[string]string  `yaml:"letters"`
	Spaces    map[string]float32 `yaml:"spaces"`
}

// Load reads definitions from a YAML document and adds them to the table.
func (t *Table) Load(r io.Reader) error {
	var file TableFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return fmt.Errorf("unable to decode command table: %w", err)
	}

	for name, text := range file.Functions {
		t.AddFunction(name, text)
	}

	for name, text := range file.Operators {
		t.AddOperator(name, text)
	}

	for name, text := range file.Letters {
		t.AddLetter(name, text)
	}

	for name, width := range file.Spaces {
		t.AddSpace(name, width)
	}

	return nil
}
