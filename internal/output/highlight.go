package output

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

// lexerNames maps labels onto chroma lexer names.
var lexerNames = map[lang.Label]string{
	lang.JavaScript: "javascript",
	lang.Python:     "python",
	lang.Java:       "java",
	lang.Cpp:        "c++",
}

// Highlight syntax-colours code as label using the named chroma style. The
// text is returned unchanged when color is disabled or tokenising fails, so
// the visible characters are always exactly the input.
func Highlight(code string, label lang.Label, styleName string) string {
	if noColor || code == "" {
		return code
	}

	lexer := lexers.Get(lexerNames[label])
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, code)
	if err != nil {
		return code
	}

	// Some lexers append a final newline; never emit more than the input.
	var sb strings.Builder
	remaining := len(code)
	for _, token := range iterator.Tokens() {
		value := token.Value
		if len(value) > remaining {
			value = value[:remaining]
		}
		remaining -= len(value)
		sb.WriteString(renderToken(value, style.Get(token.Type)))
		if remaining == 0 {
			break
		}
	}
	return sb.String()
}

// renderToken styles each line of a token separately; lipgloss pads
// multi-line blocks to a common width.
func renderToken(value string, entry chroma.StyleEntry) string {
	st := lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if entry.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}

	parts := strings.Split(value, "\n")
	for i, p := range parts {
		if p != "" {
			parts[i] = st.Render(p)
		}
	}
	return strings.Join(parts, "\n")
}
