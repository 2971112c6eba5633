package extract

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeLiteral turns the source text of a Python string literal into its
// value. It reports false for byte and formatted strings.
func decodeLiteral(lit string) (string, bool) {
	q := strings.IndexAny(lit, `'"`)
	if q < 0 {
		return "", false
	}
	prefix := strings.ToLower(lit[:q])
	if strings.ContainsAny(prefix, "bft") {
		return "", false
	}

	body := lit[q:]
	var inner string
	switch {
	case len(body) >= 6 && (strings.HasPrefix(body, `"""`) || strings.HasPrefix(body, `'''`)):
		inner = body[3 : len(body)-3]
	case len(body) >= 2:
		inner = body[1 : len(body)-1]
	default:
		return "", false
	}

	inner = strings.ReplaceAll(inner, "\r\n", "\n")
	if strings.Contains(prefix, "r") {
		return inner, true
	}
	return unescape(inner), true
}

var simpleEscapes = map[byte]string{
	'\\': `\`,
	'\'': `'`,
	'"':  `"`,
	'a':  "\a",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'v':  "\v",
	'\n': "",
}

// unescape interprets backslash escapes. Unknown escapes are kept verbatim,
// and so are \N{...} names.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		if rep, ok := simpleEscapes[next]; ok {
			b.WriteString(rep)
			i++
			continue
		}
		switch {
		case next >= '0' && next <= '7':
			j := i + 1
			for j < len(s) && j < i+4 && s[j] >= '0' && s[j] <= '7' {
				j++
			}
			v, _ := strconv.ParseUint(s[i+1:j], 8, 32)
			b.WriteRune(rune(v))
			i = j - 1
		case next == 'x' || next == 'u' || next == 'U':
			width := map[byte]int{'x': 2, 'u': 4, 'U': 8}[next]
			end := i + 2 + width
			if end > len(s) {
				b.WriteByte(c)
				continue
			}
			v, err := strconv.ParseUint(s[i+2:end], 16, 32)
			if err != nil || !utf8.ValidRune(rune(v)) {
				b.WriteByte(c)
				continue
			}
			b.WriteRune(rune(v))
			i = end - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// cleanDoc normalizes docstring indentation: tabs are expanded, the first
// line is left-trimmed, the common indentation of the remaining lines is
// removed, and leading and trailing empty lines are dropped.
func cleanDoc(doc string) string {
	lines := strings.Split(expandTabs(doc, 8), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeftFunc(line, unicode.IsSpace)
		if content == "" {
			continue
		}
		indent := len(line) - len(content)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin >= 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

func expandTabs(s string, size int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
