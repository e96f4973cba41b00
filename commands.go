package latex

import "github.com/eolymp/go-latexmath/mathml"

// commands maps names of commands with a fixed meaning to the token the
// tokenizer emits for them. Any other name becomes a Command token.
var commands = map[string]any{
	"frac":  Fraction{Kind: "frac"},
	"dfrac": Fraction{Kind: "dfrac"},
	"tfrac": Fraction{Kind: "tfrac"},

	"binom":  Binomial{Kind: "binom"},
	"dbinom": Binomial{Kind: "dbinom"},
	"tbinom": Binomial{Kind: "tbinom"},

	"sqrt":         Sqrt{},
	"left":         Left{},
	"right":        Right{},
	"middle":       Middle{},
	"overset":      Overset{},
	"underset":     Underset{},
	"operatorname": OperatorName{},
	"slashed":      Slashed{},
	"newline":      NewLine{},

	"mathrm":     Style{Variant: mathml.Normal},
	"textrm":     Style{Variant: mathml.Normal},
	"mathit":     Style{Variant: mathml.Italic},
	"textit":     Style{Variant: mathml.Italic},
	"mathbf":     Style{Variant: mathml.Bold},
	"textbf":     Style{Variant: mathml.Bold},
	"bm":         Style{Variant: mathml.BoldItalic},
	"symbf":      Style{Variant: mathml.BoldItalic},
	"boldsymbol": Style{Variant: mathml.BoldItalic},
	"mathbb":     Style{Variant: mathml.DoubleStruck},
	"mathfrak":   Style{Variant: mathml.Fraktur},
	"mathscr":    Style{Variant: mathml.Script},
	"mathcal":    Style{Variant: mathml.Script},
	"mathsf":     Style{Variant: mathml.SansSerif},
	"mathtt":     Style{Variant: mathml.Monospace},
	"texttt":     Style{Variant: mathml.Monospace},

	"overbrace":    Overbrace{Glyph: "⏞"},
	"underbrace":   Underbrace{Glyph: "⏟"},
	"overparen":    Overbrace{Glyph: "⏜"},
	"underparen":   Underbrace{Glyph: "⏝"},
	"overbracket":  Overbrace{Glyph: "⎴"},
	"underbracket": Underbrace{Glyph: "⎵"},

	"dot":            Over{Glyph: "˙", Accent: true},
	"ddot":           Over{Glyph: "¨", Accent: true},
	"bar":            Over{Glyph: "¯", Accent: true},
	"hat":            Over{Glyph: "^", Accent: true},
	"check":          Over{Glyph: "ˇ", Accent: true},
	"breve":          Over{Glyph: "˘", Accent: true},
	"acute":          Over{Glyph: "´", Accent: true},
	"grave":          Over{Glyph: "`", Accent: true},
	"tilde":          Over{Glyph: "~", Accent: true},
	"vec":            Over{Glyph: "→", Accent: true},
	"overline":       Over{Glyph: "_", Accent: true},
	"widehat":        Over{Glyph: "^", Accent: true},
	"widetilde":      Over{Glyph: "~", Accent: true},
	"overrightarrow": Over{Glyph: "→", Accent: true},
	"overleftarrow":  Over{Glyph: "←", Accent: true},
	"underline":      Under{Glyph: "_", Accent: true},

	"sum":       BigOperator{Glyph: "∑"},
	"prod":      BigOperator{Glyph: "∏"},
	"coprod":    BigOperator{Glyph: "∐"},
	"bigcap":    BigOperator{Glyph: "⋂"},
	"bigcup":    BigOperator{Glyph: "⋃"},
	"bigsqcup":  BigOperator{Glyph: "⨆"},
	"bigvee":    BigOperator{Glyph: "⋁"},
	"bigwedge":  BigOperator{Glyph: "⋀"},
	"bigodot":   BigOperator{Glyph: "⨀"},
	"bigotimes": BigOperator{Glyph: "⨂"},
	"bigoplus":  BigOperator{Glyph: "⨁"},
	"biguplus":  BigOperator{Glyph: "⨄"},

	"int":   Integral{Glyph: "∫"},
	"iint":  Integral{Glyph: "∬"},
	"iiint": Integral{Glyph: "∭"},
	"oint":  Integral{Glyph: "∮"},

	"lim":    Limit{Name: "lim"},
	"liminf": Limit{Name: "lim inf"},
	"limsup": Limit{Name: "lim sup"},
	"min":    Limit{Name: "min"},
	"max":    Limit{Name: "max"},
	"inf":    Limit{Name: "inf"},
	"sup":    Limit{Name: "sup"},

	"bigl":  Big{Size: "1.2em"},
	"bigr":  Big{Size: "1.2em"},
	"big":   Big{Size: "1.2em"},
	"Bigl":  Big{Size: "1.623em"},
	"Bigr":  Big{Size: "1.623em"},
	"Big":   Big{Size: "1.623em"},
	"biggl": Big{Size: "2.047em"},
	"biggr": Big{Size: "2.047em"},
	"bigg":  Big{Size: "2.047em"},
	"Biggl": Big{Size: "2.470em"},
	"Biggr": Big{Size: "2.470em"},
	"Bigg":  Big{Size: "2.470em"},

	"langle":    Paren("⟨"),
	"rangle":    Paren("⟩"),
	"{":         Paren("{"),
	"}":         Paren("}"),
	"|":         Paren("‖"),
	"lvert":     Paren("|"),
	"rvert":     Paren("|"),
	"lVert":     Paren("‖"),
	"rVert":     Paren("‖"),
	"lceil":     Paren("⌈"),
	"rceil":     Paren("⌉"),
	"lfloor":    Paren("⌊"),
	"rfloor":    Paren("⌋"),
	"lgroup":    Paren("⦗"),
	"rgroup":    Paren("⦘"),
	"llbracket": Paren("⟦"),
	"rrbracket": Paren("⟧"),
}

// verbatims are commands whose single brace argument is read as raw text.
var verbatims = map[string]bool{
	"text":   true,
	"mbox":   true,
	"hspace": true,
}

// operators maps single characters to the token they produce in math mode.
var operators = map[rune]any{
	'+': Operator("+"),
	'-': Operator("−"),
	'*': Operator("∗"),
	'/': Operator("/"),
	'=': Operator("="),
	'<': Operator("<"),
	'>': Operator(">"),
	',': Operator(","),
	';': Operator(";"),
	':': Operator(":"),
	'!': Operator("!"),
	'?': Operator("?"),
	'.': Operator("."),
	'(': Paren("("),
	')': Paren(")"),
	'[': Paren("["),
	']': Paren("]"),
	'|': Paren("|"),
	'{': ParameterStart{},
	'}': ParameterEnd{},
	'&': Ampersand{},
	'^': Superscript{},
	'_': Subscript{},
	'~': Command("nobreakspace"),
}
