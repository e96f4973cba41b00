package latex

// builtinFunctions are function names rendered upright, such as \sin
var builtinFunctions = []string{
	"sin", "cos", "tan", "csc", "sec", "cot",
	"arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh", "coth",
	"exp", "ln", "lg", "log", "erf", "erfc",
	"arg", "deg", "det", "dim", "hom", "ker",
	"gcd", "lcm", "Pr",
}

var builtinOperators = map[string]string{
	"times":    "×",
	"div":      "÷",
	"cdot":     "⋅",
	"ast":      "∗",
	"star":     "⋆",
	"circ":     "∘",
	"bullet":   "∙",
	"pm":       "±",
	"mp":       "∓",
	"oplus":    "⊕",
	"ominus":   "⊖",
	"otimes":   "⊗",
	"oslash":   "⊘",
	"odot":     "⊙",
	"cup":      "∪",
	"cap":      "∩",
	"sqcup":    "⊔",
	"sqcap":    "⊓",
	"vee":      "∨",
	"wedge":    "∧",
	"lor":      "∨",
	"land":     "∧",
	"neg":      "¬",
	"lnot":     "¬",
	"setminus": "∖",
	"uplus":    "⊎",
	"amalg":    "⨿",
	"dagger":   "†",

	"leq":      "≤",
	"le":       "≤",
	"geq":      "≥",
	"ge":       "≥",
	"neq":      "≠",
	"ne":       "≠",
	"ll":       "≪",
	"gg":       "≫",
	"approx":   "≈",
	"equiv":    "≡",
	"sim":      "∼",
	"simeq":    "≃",
	"cong":     "≅",
	"propto":   "∝",
	"in":       "∈",
	"notin":    "∉",
	"ni":       "∋",
	"subset":   "⊂",
	"subseteq": "⊆",
	"supset":   "⊃",
	"supseteq": "⊇",
	"mid":      "∣",
	"parallel": "∥",
	"perp":     "⊥",
	"colon":    ":",
	"forall":   "∀",
	"exists":   "∃",

	"to":             "→",
	"rightarrow":     "→",
	"leftarrow":      "←",
	"gets":           "←",
	"leftrightarrow": "↔",
	"Rightarrow":     "⇒",
	"Leftarrow":      "⇐",
	"Leftrightarrow": "⇔",
	"implies":        "⟹",
	"iff":            "⟺",
	"mapsto":         "↦",
	"longrightarrow": "⟶",
	"longleftarrow":  "⟵",
	"uparrow":        "↑",
	"downarrow":      "↓",

	"ldots":  "…",
	"dots":   "…",
	"cdots":  "⋯",
	"vdots":  "⋮",
	"ddots":  "⋱",
	"prime":  "′",
	"angle":  "∠",
	"lbrace": "{",
	"rbrace": "}",
}

var builtinLetters = map[string]string{
	"alpha":      "α",
	"beta":       "β",
	"gamma":      "γ",
	"delta":      "δ",
	"epsilon":    "ϵ",
	"varepsilon": "ε",
	"zeta":       "ζ",
	"eta":        "η",
	"theta":      "θ",
	"vartheta":   "ϑ",
	"iota":       "ι",
	"kappa":      "κ",
	"lambda":     "λ",
	"mu":         "μ",
	"nu":         "ν",
	"xi":         "ξ",
	"omicron":    "ο",
	"pi":         "π",
	"varpi":      "ϖ",
	"rho":        "ρ",
	"varrho":     "ϱ",
	"sigma":      "σ",
	"varsigma":   "ς",
	"tau":        "τ",
	"upsilon":    "υ",
	"phi":        "ϕ",
	"varphi":     "φ",
	"chi":        "χ",
	"psi":        "ψ",
	"omega":      "ω",

	"Alpha":   "Α",
	"Beta":    "Β",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Epsilon": "Ε",
	"Zeta":    "Ζ",
	"Eta":     "Η",
	"Theta":   "Θ",
	"Iota":    "Ι",
	"Kappa":   "Κ",
	"Lambda":  "Λ",
	"Mu":      "Μ",
	"Nu":      "Ν",
	"Xi":      "Ξ",
	"Omicron": "Ο",
	"Pi":      "Π",
	"Rho":     "Ρ",
	"Sigma":   "Σ",
	"Tau":     "Τ",
	"Upsilon": "Υ",
	"Phi":     "Φ",
	"Chi":     "Χ",
	"Psi":     "Ψ",
	"Omega":   "Ω",

	"infty":    "∞",
	"partial":  "∂",
	"nabla":    "∇",
	"emptyset": "∅",
	"hbar":     "ℏ",
	"ell":      "ℓ",
	"aleph":    "ℵ",
	"Re":       "ℜ",
	"Im":       "ℑ",
	"wp":       "℘",
}

// builtinSpaces are widths of spacing commands in em
var builtinSpaces = map[string]float32{
	",":            0.167,
	"thinspace":    0.167,
	":":            0.222,
	">":            0.222,
	"medspace":     0.222,
	";":            0.278,
	"thickspace":   0.278,
	"!":            -0.167,
	"negthinspace": -0.167,
	" ":            0.333,
	"nobreakspace": 0.333,
	"quad":         1,
	"qquad":        2,
}
