// Package lang classifies file names into language tags and generates default
// content for newly opened files. Both functions are pure and total.
package lang

import (
	"fmt"
	"strings"

	"github.com/coderoom-dev/coderoom/schema"
)

var byExtension = map[string]schema.Language{
	"js":   schema.LanguageJavaScript,
	"jsx":  schema.LanguageJavaScript,
	"ts":   schema.LanguageTypeScript,
	"tsx":  schema.LanguageTypeScript,
	"py":   schema.LanguagePython,
	"html": schema.LanguageHTML,
	"css":  schema.LanguageCSS,
	"json": schema.LanguageJSON,
	"md":   schema.LanguageMarkdown,
	"cpp":  schema.LanguageCPP,
	"c":    schema.LanguageC,
	"java": schema.LanguageJava,
	"php":  schema.LanguagePHP,
	"rb":   schema.LanguageRuby,
	"go":   schema.LanguageGo,
	"rs":   schema.LanguageRust,
	"sh":   schema.LanguageShell,
	"sql":  schema.LanguageSQL,
	"xml":  schema.LanguageXML,
	"yaml": schema.LanguageYAML,
	"yml":  schema.LanguageYAML,
	// Arduino sketches highlight as C++.
	"ino": schema.LanguageCPP,
}

// Classify maps a file name's extension (lower-cased) to a language tag.
// Unknown or missing extensions map to plaintext.
func Classify(filename string) schema.Language {
	if tag, ok := byExtension[strings.ToLower(extension(filename))]; ok {
		return tag
	}
	return schema.LanguagePlaintext
}

// extension returns the segment after the last dot, or the whole name when no
// dot is present.
func extension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		return filename[idx+1:]
	}
	return filename
}

// DefaultContent returns the seed content for a newly opened file, keyed by
// extension. Deterministic for a given file name.
func DefaultContent(filename string) string {
	switch strings.ToLower(extension(filename)) {
	case "js":
		return fmt.Sprintf("// %s\nconsole.log('Hello from %s');", filename, filename)
	case "jsx":
		name := strings.TrimSuffix(filename, ".jsx")
		return fmt.Sprintf("import React from 'react';\n\nconst %s = () => {\n  return (\n    <div>\n      <h1>%s Component</h1>\n    </div>\n  );\n};\n\nexport default %s;", name, name, name)
	case "json":
		return "{\n  \"name\": \"my-project\",\n  \"version\": \"1.0.0\",\n  \"main\": \"index.js\"\n}"
	case "md":
		return fmt.Sprintf("# %s\n\nThis is a markdown file.", strings.TrimSuffix(filename, ".md"))
	default:
		return fmt.Sprintf("// %s\n", filename)
	}
}

// DisplayName renders a language tag for user-facing messages.
func DisplayName(tag schema.Language) string {
	switch tag {
	case schema.LanguageJavaScript:
		return "JavaScript"
	case schema.LanguageTypeScript:
		return "TypeScript"
	case schema.LanguagePython:
		return "Python"
	case schema.LanguageCPP:
		return "C++"
	case schema.LanguagePHP:
		return "PHP"
	case schema.LanguageSQL:
		return "SQL"
	case schema.LanguageHTML:
		return "HTML"
	case schema.LanguageCSS:
		return "CSS"
	case schema.LanguageJSON:
		return "JSON"
	case schema.LanguageXML:
		return "XML"
	case schema.LanguageYAML:
		return "YAML"
	default:
		if tag == "" {
			return "plaintext"
		}
		return strings.ToUpper(string(tag[:1])) + string(tag[1:])
	}
}
