package examples

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

func TestExamplesClassifyAsTheirLanguage(t *testing.T) {
	for _, e := range All() {
		assert.Equal(t, e.Language, lang.Classify(e.Code), e.Name)
		assert.False(t, strings.HasSuffix(e.Code, "\n"), "%s ends without a newline", e.Name)
	}
}

func TestJavaScriptKeepsIndentedBlankLines(t *testing.T) {
	assert.Equal(t, 3, strings.Count(JavaScript, "\n  \n"))
	assert.True(t, strings.HasPrefix(JavaScript, "function sortArray(arr) {\n"))
	assert.True(t, strings.HasSuffix(JavaScript, "console.log(sortArray(unsortedArray));"))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"python", Python},
		{"PY", Python},
		{" javascript ", JavaScript},
		{"js", JavaScript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Get(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Code)
		})
	}

	_, err := Get("cobol")
	assert.ErrorIs(t, err, ErrUnknownExample)
	assert.Contains(t, err.Error(), "python or javascript")
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Code = "changed"
	assert.Equal(t, Python, All()[0].Code)
	assert.Equal(t, []string{"python", "javascript"}, Names())
}
