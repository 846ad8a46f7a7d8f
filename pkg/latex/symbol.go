package latex

import (
	"regexp"
	"strings"
)

var (
	thetaRe     = regexp.MustCompile(`\bth_`)
	subscriptRe = regexp.MustCompile(`_(\d+)`)
)

var greek = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"zeta": true, "eta": true, "theta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "pi": true, "rho": true,
	"sigma": true, "tau": true, "upsilon": true, "phi": true, "chi": true,
	"psi": true, "omega": true,
	"Gamma": true, "Delta": true, "Theta": true, "Lambda": true, "Xi": true,
	"Pi": true, "Sigma": true, "Upsilon": true, "Phi": true, "Psi": true, "Omega": true,
}

// SymbolTeX renders a symbol name as math-mode LaTeX without the enclosing
// dollars: "th_1" gives \theta_{1}, "alpha_12" gives \alpha_{12}. Names that
// already contain markup keep it.
func SymbolTeX(name string) string {
	s := name
	if !strings.ContainsAny(s, `\{`) {
		base, sub, found := strings.Cut(s, "_")
		if greek[base] {
			s = `\` + base
			if found {
				s += "_" + sub
			}
		}
	}
	s = thetaRe.ReplaceAllString(s, `\theta_`)
	return subscriptRe.ReplaceAllString(s, "_{${1}}")
}

// Symbol renders a symbol name in inline math mode.
func Symbol(name string) string {
	return "$" + SymbolTeX(name) + "$"
}
