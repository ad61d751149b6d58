package schema

// SessionID identifies one learner's workspace session.
type SessionID string

// Path addresses a file or folder in the workspace tree. Segments are joined
// with "/"; a top-level entry's path equals its name.
type Path string

// NodeKind discriminates files from folders in the workspace tree.
type NodeKind string

const (
	// NodeFile marks a file entry.
	NodeFile NodeKind = "file"
	// NodeFolder marks a folder entry.
	NodeFolder NodeKind = "folder"
)

// Language is the semantic tag derived from a file name's extension.
type Language string

const (
	// LanguageJavaScript is the only tag executed on a real interpreter.
	LanguageJavaScript Language = "javascript"
	// LanguageTypeScript is labeled but never executed.
	LanguageTypeScript Language = "typescript"
	// LanguagePython runs through the simulated print-scanning path.
	LanguagePython Language = "python"
	// LanguageHTML is a label-only tag.
	LanguageHTML Language = "html"
	// LanguageCSS is a label-only tag.
	LanguageCSS Language = "css"
	// LanguageJSON is a label-only tag.
	LanguageJSON Language = "json"
	// LanguageMarkdown is a label-only tag.
	LanguageMarkdown Language = "markdown"
	// LanguageCPP is a label-only tag (also used for Arduino sketches).
	LanguageCPP Language = "cpp"
	// LanguageC is a label-only tag.
	LanguageC Language = "c"
	// LanguageJava is a label-only tag.
	LanguageJava Language = "java"
	// LanguagePHP is a label-only tag.
	LanguagePHP Language = "php"
	// LanguageRuby is a label-only tag.
	LanguageRuby Language = "ruby"
	// LanguageGo is a label-only tag.
	LanguageGo Language = "go"
	// LanguageRust is a label-only tag.
	LanguageRust Language = "rust"
	// LanguageShell is a label-only tag.
	LanguageShell Language = "shell"
	// LanguageSQL is a label-only tag.
	LanguageSQL Language = "sql"
	// LanguageXML is a label-only tag.
	LanguageXML Language = "xml"
	// LanguageYAML is a label-only tag.
	LanguageYAML Language = "yaml"
	// LanguagePlaintext is the fallback for unknown or missing extensions.
	LanguagePlaintext Language = "plaintext"
)
