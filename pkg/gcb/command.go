package gcb

import (
	"fmt"
	"strconv"
	"strings"
)

// Param is an optional numeric parameter of a command.
type Param = Optional[float32]

// Command is one G-code line as far as the preview is concerned.
type Command struct {
	Code GCode
	// X, Y are axis targets, P is power in percent and S is power in 0..255.
	X, Y, P, S  Param
	LineComment string
}

// Reset clears all parameters but keeps the code.
func (c *Command) Reset() {
	*c = Command{Code: c.Code}
}

// Set assigns the parameter named by letter. Unknown letters are ignored.
func (c *Command) Set(letter byte, value float32) {
	switch letter {
	case 'X':
		c.X = Some(value)
	case 'Y':
		c.Y = Some(value)
	case 'P':
		c.P = Some(value)
	case 'S':
		c.S = Some(value)
	}
}

func (c *Command) String(comments bool) string {
	result := c.Code.String()
	for _, arg := range []struct {
		name  string
		value Param
	}{{"X", c.X}, {"Y", c.Y}, {"P", c.P}, {"S", c.S}} {
		if v, ok := arg.value.Get(); ok {
			result += fmt.Sprintf(" %v%v", arg.name, strconv.FormatFloat(float64(v), 'f', -1, 32))
		}
	}

	if c.LineComment != "" && comments {
		result += fmt.Sprintf(" ;%v", c.LineComment)
	}

	// merge duplicated spaces
	for {
		old := result
		result = strings.ReplaceAll(result, "  ", " ")
		if old == result {
			break
		}
	}

	return strings.TrimSpace(result)
}

// Meta formats a metadata comment line (";key: value").
func Meta(key string, value any) string {
	return fmt.Sprintf(";%s: %v", key, value)
}
