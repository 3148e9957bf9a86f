package ltwa

// Unicode line-break code points beyond the ASCII CR/LF/VT/FF set, given as
// explicit numeric rune constants so the source never embeds a raw control
// or separator character.
const (
	nextLine      = rune(0x0085) // NEL
	lineSeparator = rune(0x2028) // LS
	paraSeparator = rune(0x2029) // PS
)

// splitLines splits data on any Unicode line break: CRLF, LF, VT, FF, CR,
// NEL (U+0085), LS (U+2028), PS (U+2029). CRLF counts as a single break.
func splitLines(data string) []string {
	var lines []string
	var current []rune
	runes := []rune(data)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\r':
			lines = append(lines, string(current))
			current = current[:0]
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		case '\n', '\v', '\f', nextLine, lineSeparator, paraSeparator:
			lines = append(lines, string(current))
			current = current[:0]
		default:
			current = append(current, r)
		}
	}
	lines = append(lines, string(current))
	return lines
}
