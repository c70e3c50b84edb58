package annotate

import (
	"strings"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

// Strip reverses Annotate: it removes the header and every synthesized
// comment line, returning the original text. Input that does not start with
// the header for l is returned unchanged.
//
// Source lines are re-classified rather than matched by comment text, so a
// source line that happens to equal a synthesized comment is preserved.
func Strip(annotated string, l lang.Label) string {
	header := Header(l)
	if !strings.HasPrefix(annotated, header) {
		return annotated
	}
	lines := strings.Split(strings.TrimPrefix(annotated, header), "\n")

	kept := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		kept = append(kept, lines[i])
		if i < len(lines)-1 && Classify(strings.TrimSpace(lines[i]), l) != None {
			i++
		}
	}
	return strings.Join(kept, "\n")
}

// DetectHeader returns the label named by an Annotate header at the start of
// annotated.
func DetectHeader(annotated string) (lang.Label, bool) {
	for _, l := range lang.Labels() {
		if strings.HasPrefix(annotated, Header(l)) {
			return l, true
		}
	}
	return "", false
}
