package port

// MathRenderer typesets TeX sources. Implementations are expected to be
// error tolerant and return markup even for invalid input when they can.
type MathRenderer interface {
	RenderMath(source string, displayMode bool) (string, error)
}

// Highlighter turns source code into annotated HTML. It returns
// ErrUnsupportedLanguage when it has no grammar for the language.
type Highlighter interface {
	Highlight(source string, language string) (string, error)
}
