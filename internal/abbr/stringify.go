package abbr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emmetio/py-emmet/internal/marktoken"
)

var operatorText = map[marktoken.OperatorKind]string{
	marktoken.OpChild:   ">",
	marktoken.OpClass:   ".",
	marktoken.OpClimb:   "^",
	marktoken.OpID:      "#",
	marktoken.OpEqual:   "=",
	marktoken.OpClose:   "/",
	marktoken.OpSibling: "+",
}

// stringifyToken renders a single raw token back to text, resolving
// repeater numbering and variable references against the live convert
// state. It is the Go counterpart of stringify.py's token-type dispatch.
func stringifyToken(token marktoken.Token, state *State) (string, error) {
	switch t := token.(type) {
	case marktoken.Literal:
		return t.Value, nil
	case marktoken.Quote:
		if t.Single {
			return "'", nil
		}
		return "\"", nil
	case marktoken.Bracket:
		switch t.Context {
		case marktoken.CtxAttribute:
			return bracketChar(t.Open, '[', ']'), nil
		case marktoken.CtxExpression:
			return bracketChar(t.Open, '{', '}'), nil
		default:
			return bracketChar(t.Open, '(', ')'), nil
		}
	case marktoken.Operator:
		return operatorText[t.Kind], nil
	case marktoken.Field:
		if t.HasIx {
			if t.Name != "" {
				return fmt.Sprintf("${%d:%s}", t.Index, t.Name), nil
			}
			return fmt.Sprintf("${%d}", t.Index), nil
		}
		if t.Name != "" {
			return state.GetVariable(t.Name), nil
		}
		return "", nil
	case marktoken.RepeaterPlaceholder:
		return stringifyRepeaterPlaceholder(state), nil
	case marktoken.RepeaterNumber:
		return stringifyRepeaterNumber(t, state), nil
	case marktoken.WhiteSpace:
		return " ", nil
	default:
		return "", fmt.Errorf("abbr: unknown token %T", token)
	}
}

func bracketChar(open bool, o, c byte) string {
	if open {
		return string(o)
	}
	return string(c)
}

func stringifyRepeaterPlaceholder(state *State) string {
	var repeater *Repeat
	for i := len(state.Repeaters) - 1; i >= 0; i-- {
		if state.Repeaters[i].Implicit {
			repeater = state.Repeaters[i]
			break
		}
	}
	state.Inserted = true
	if repeater == nil {
		return ""
	}
	return state.GetText(repeater.Value, true)
}

func stringifyRepeaterNumber(token marktoken.RepeaterNumber, state *State) string {
	value := 1
	lastIx := len(state.Repeaters) - 1

	if lastIx >= 0 {
		repeater := state.Repeaters[lastIx]
		if token.Reverse {
			value = token.Base + repeater.Count - repeater.Value - 1
		} else {
			value = token.Base + repeater.Value
		}

		if token.Parent > 0 {
			parentIx := lastIx - token.Parent
			if parentIx < 0 {
				parentIx = 0
			}
			if parentIx != lastIx {
				value += repeater.Count * state.Repeaters[parentIx].Value
			}
		}
	}

	result := strconv.Itoa(value)
	if pad := token.Size - len(result); pad > 0 {
		result = strings.Repeat("0", pad) + result
	}
	return result
}

// stringifyName joins a raw name token run into a string.
func stringifyName(toks []marktoken.Token, state *State) (string, error) {
	var b strings.Builder
	for _, t := range toks {
		s, err := stringifyToken(t, state)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// stringifyValue converts a raw value token run into a ValuePart list,
// keeping numbered fields as distinct FieldPart entries so editors that
// support tab-stops can still place the cursor there.
func stringifyValue(toks []marktoken.Token, state *State) ([]ValuePart, error) {
	var result []ValuePart
	var accum strings.Builder

	flush := func() {
		if accum.Len() > 0 {
			result = append(result, TextPart(accum.String()))
			accum.Reset()
		}
	}

	for _, t := range toks {
		if f, ok := t.(marktoken.Field); ok && f.HasIx {
			flush()
			result = append(result, FieldPart{Index: f.Index, Name: f.Name})
			continue
		}
		s, err := stringifyToken(t, state)
		if err != nil {
			return nil, err
		}
		accum.WriteString(s)
	}
	flush()

	return result, nil
}
