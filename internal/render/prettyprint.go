package render

import "strings"

// PrettyPrint tidies a fully assembled declaration file: trailing
// whitespace is trimmed from every line, runs of more than one blank
// line collapse to one, and the file ends with exactly one trailing
// newline. It never touches indentation or reflows lines; the
// synthesis stages already print each fragment on its own line.
func PrettyPrint(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	blankRun := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			if blankRun {
				continue
			}
			blankRun = true
		} else {
			blankRun = false
		}
		out = append(out, trimmed)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n") + "\n"
}
