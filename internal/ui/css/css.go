// Package css parses the small stylesheet dialect used by the overlay: type, .class and #id
// selectors, comma-separated selector lists, a :hover state and "key: value;" declarations.
package css

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// ErrUnclosedBlock is returned when a rule's "{" has no matching "}".
var ErrUnclosedBlock = errors.New("css: unclosed block")

// Selector matches one node. Exactly one of Type, Class or ID is set.
type Selector struct {
	Type  string
	Class string
	ID    string
	Hover bool
}

// Rule is one selector with its declarations as raw strings.
type Rule struct {
	Selector Selector
	Props    map[string]string
}

// Stylesheet is an ordered rule list. Later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Target is what selectors are matched against.
type Target struct {
	Type, Class, ID string
	Hover           bool
}

// Matches reports whether sel applies to t. Hover rules only apply to hovered targets.
func (sel Selector) Matches(t Target) bool {
	if sel.Hover && !t.Hover {
		return false
	}
	switch {
	case sel.Type != "":
		return sel.Type == t.Type
	case sel.Class != "":
		return sel.Class == t.Class
	case sel.ID != "":
		return sel.ID == t.ID
	}
	return false
}

// Parse reads a stylesheet. Selectors it does not understand are skipped with their block, as
// are at-rules and malformed declarations.
func Parse(src string) (*Stylesheet, error) {
	p := cssparse.NewParser(parse.NewInputString(src), false)
	sheet := &Stylesheet{}
	var (
		sels    []Selector
		props   map[string]string
		inRule  bool
		atDepth int
	)
	for {
		gt, tt, data := p.Next()
		switch gt {
		case cssparse.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				if inRule {
					return nil, ErrUnclosedBlock
				}
				return sheet, nil
			}
			if inRule {
				continue
			}
			return nil, fmt.Errorf("css: %w", err)
		case cssparse.BeginAtRuleGrammar:
			atDepth++
		case cssparse.EndAtRuleGrammar:
			atDepth--
		case cssparse.BeginRulesetGrammar:
			inRule = true
			sels = selectors(p.Values())
			props = make(map[string]string)
		case cssparse.DeclarationGrammar:
			if inRule {
				props[string(data)] = join(p.Values())
			}
		case cssparse.EndRulesetGrammar:
			if tt == cssparse.ErrorToken {
				return nil, ErrUnclosedBlock
			}
			inRule = false
			if atDepth > 0 {
				continue
			}
			for _, sel := range sels {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
			}
		}
	}
}

// selectors splits a ruleset prelude on commas and keeps the selectors this dialect supports.
func selectors(prelude []cssparse.Token) []Selector {
	var out []Selector
	start := 0
	for i := 0; i <= len(prelude); i++ {
		if i < len(prelude) && prelude[i].TokenType != cssparse.CommaToken {
			continue
		}
		if sel, ok := parseSelector(join(prelude[start:i])); ok {
			out = append(out, sel)
		}
		start = i + 1
	}
	return out
}

func join(tokens []cssparse.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

// Load reads and parses the stylesheet at path.
func Load(path string) (*Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sheet, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// Props merges the declarations of every rule matching t, in rule order.
// Hover rules are applied after the plain ones so they win regardless of position.
func (s *Stylesheet) Props(t Target) map[string]string {
	out := make(map[string]string)
	if s == nil {
		return out
	}
	for _, pass := range []bool{false, true} {
		for _, r := range s.Rules {
			if r.Selector.Hover != pass || !r.Selector.Matches(t) {
				continue
			}
			for k, v := range r.Props {
				out[k] = v
			}
		}
	}
	return out
}

func parseSelector(s string) (Selector, bool) {
	var sel Selector
	if base, state, ok := strings.Cut(s, ":"); ok {
		if state != "hover" {
			return sel, false
		}
		sel.Hover = true
		s = base
	}
	if s == "" || strings.ContainsAny(s, " >+~[*") {
		return sel, false
	}
	switch s[0] {
	case '.':
		sel.Class = s[1:]
	case '#':
		sel.ID = s[1:]
	default:
		sel.Type = s
	}
	if sel.Class == "" && sel.ID == "" && sel.Type == "" {
		return sel, false
	}
	return sel, true
}
