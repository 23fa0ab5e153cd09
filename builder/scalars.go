package builder

import (
	"strconv"
	"strings"

	"github.com/kallsyms/gasp-sub000/value"
)

// squashWS collapses runs of whitespace to a single ASCII space, used when
// a bareword identifier run is treated as a string value.
func squashWS(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// parseIdent recognizes true/false/null, including the partial prefixes an
// LLM emits while still streaming the word ("t", "tr", "tru", "true", and
// so on for false/null). Returning a Value on a prefix lets a mid-word
// Partial snapshot already show the provisional keyword value instead of
// waiting for the identifier to close.
func parseIdent(buf string) (value.Value, bool) {
	switch buf {
	case "t", "tr", "tru", "true":
		return value.NewBool(true), true
	case "f", "fa", "fal", "fals", "false":
		return value.NewBool(false), true
	case "n", "nu", "nul", "null":
		return value.Null(), true
	default:
		return value.Value{}, false
	}
}

// trailingPunct is the byte class parseNumber trims from the tail of a
// numeric buffer before parsing, both for a completed NumberEnd run and for
// Builder.Finish's flush of a dangling number.
const trailingPunct = "}], \t\r\n+-.eE"

// parseNumber reclassifies a completed numeric buffer as Int or Float.
// Leading "." or "-." is treated as "0." first (".5" and "0.5" parse the
// same way); trailing structural punctuation accidentally captured by the
// scanner is trimmed before parsing.
func parseNumber(raw string) (value.Value, error) {
	cooked := raw
	if strings.HasPrefix(cooked, ".") {
		cooked = "0" + cooked
	} else if strings.HasPrefix(cooked, "-.") || strings.HasPrefix(cooked, "+.") {
		cooked = cooked[:1] + "0" + cooked[1:]
	}
	cooked = strings.TrimRight(cooked, trailingPunct)

	if strings.ContainsAny(cooked, ".eE") {
		f, err := strconv.ParseFloat(cooked, 64)
		if err != nil {
			return value.Value{}, &value.InvalidNumberError{Text: cooked}
		}
		return value.NewFloat(f), nil
	}
	i, err := strconv.ParseInt(cooked, 10, 64)
	if err != nil {
		return value.Value{}, &value.InvalidNumberError{Text: cooked}
	}
	return value.NewInt(i), nil
}

// unescape interprets standard JSON escapes plus \uXXXX (exactly four hex
// digits; surrogate pairs are not combined — a lone high surrogate
// round-trips as its own scalar code point, per the open question in
// spec.md §9).
func unescape(src string) (string, error) {
	var out strings.Builder
	out.Grow(len(src))
	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			out.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			return "", &value.InvalidEscapeError{Detail: "trailing backslash"}
		}
		switch runes[i] {
		case '"':
			out.WriteByte('"')
		case '\\':
			out.WriteByte('\\')
		case '/':
			out.WriteByte('/')
		case 'b':
			out.WriteByte('\b')
		case 'f':
			out.WriteByte('\f')
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case 'u':
			if i+4 >= len(runes) {
				return "", &value.InvalidEscapeError{Detail: "short \\u escape"}
			}
			hex := string(runes[i+1 : i+5])
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil {
				return "", &value.InvalidEscapeError{Detail: "bad \\u escape " + hex}
			}
			out.WriteRune(rune(cp))
			i += 4
		default:
			return "", &value.InvalidEscapeError{Detail: "unknown escape \\" + string(runes[i])}
		}
	}
	return out.String(), nil
}
