// Package examples holds the sample programs offered for a first analysis.
package examples

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blackwell-systems/codecommenter/internal/lang"
)

// ErrUnknownExample is returned by Get for names that are not in Names.
var ErrUnknownExample = errors.New("unknown example")

// Example is a named sample program.
type Example struct {
	Name     string     `json:"name"`
	Language lang.Label `json:"language"`
	Code     string     `json:"code"`
}

// Python computes a factorial recursively.
const Python = `def calculate_factorial(n):
    """Calculate the factorial of a number."""
    if n == 0 or n == 1:
        return 1
    else:
        return n * calculate_factorial(n-1)

# Calculate factorial of 5
result = calculate_factorial(5)
print(f"The factorial of 5 is {result}")`

// JavaScript is a recursive quick sort.
const JavaScript = `function sortArray(arr) {
  // Implementation of quick sort
  if (arr.length <= 1) {
    return arr;
  }
  
  const pivot = arr[0];
  const left = [];
  const right = [];
  
  for (let i = 1; i < arr.length; i++) {
    if (arr[i] < pivot) {
      left.push(arr[i]);
    } else {
      right.push(arr[i]);
    }
  }
  
  return [...sortArray(left), pivot, ...sortArray(right)];
}

// Example usage
const unsortedArray = [5, 3, 7, 6, 2, 9];
console.log(sortArray(unsortedArray));`

var catalog = []Example{
	{Name: "python", Language: lang.Python, Code: Python},
	{Name: "javascript", Language: lang.JavaScript, Code: JavaScript},
}

// All returns every example in display order.
func All() []Example {
	out := make([]Example, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the example names accepted by Get.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Get looks an example up by name, case-insensitively. "py" and "js" are
// accepted as short forms.
func Get(name string) (Example, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "py":
		key = "python"
	case "js":
		key = "javascript"
	}
	for _, e := range catalog {
		if e.Name == key {
			return e, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %q (want %s)", ErrUnknownExample, name, strings.Join(Names(), " or "))
}
