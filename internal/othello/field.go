package othello

import (
	"fmt"
	"strings"
)

// ParseField converts a field notation (e.g. "a1", "h8") to an index (0-63).
func ParseField(field string) (int, error) {
	if len(field) != 2 {
		return 0, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return 0, fmt.Errorf("invalid field: %q", field)
	}

	x := int(field[0] - 'a')
	y := int(field[1] - '1')
	return y*MaxX + x, nil
}

// FieldName converts an index to field notation. Indices off the board yield "--".
func FieldName(index int) string {
	if index < 0 || index >= Surface {
		return "--"
	}
	return fmt.Sprintf("%c%d", 'a'+index%MaxX, index/MaxX+1)
}
