package interp

import (
	"regexp"
	"strings"

	"github.com/coderoom-dev/coderoom/schema"
)

// Python snippets are never executed. The first pass collects quoted print
// arguments across the whole text; when that yields nothing, a looser
// line-by-line pass catches print calls with unquoted arguments. Dynamic
// expressions pass through verbatim, which is the documented limit of the
// simulation.
var (
	printQuoted = regexp.MustCompile(`print\s*\(\s*(?:"([^"]*)"|'([^']*)')\s*\)`)
	printLoose  = regexp.MustCompile(`print\s*\(\s*(.+?)\s*\)`)
)

func runPython(file, content string) schema.ExecutionResult {
	result := schema.ExecutionResult{
		Invocation: "$ python " + file,
		Simulated:  true,
	}

	for _, m := range printQuoted.FindAllStringSubmatchIndex(content, -1) {
		// Submatch 1 is the double-quoted body, submatch 2 the single-quoted.
		if m[2] >= 0 {
			result.OutputLines = append(result.OutputLines, content[m[2]:m[3]])
		} else if m[4] >= 0 {
			result.OutputLines = append(result.OutputLines, content[m[4]:m[5]])
		}
	}
	if len(result.OutputLines) > 0 {
		return result
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "import") {
			continue
		}
		if !strings.Contains(trimmed, "print") {
			continue
		}
		m := printLoose.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		result.OutputLines = append(result.OutputLines, stripQuotes(strings.TrimSpace(m[1])))
	}
	return result
}

func stripQuotes(value string) string {
	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
			return value[1 : len(value)-1]
		}
	}
	return value
}
