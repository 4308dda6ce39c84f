package solast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Pos is a solc source location: a byte offset, a length, and the index of
// the source file the node came from. Start is -1 when the location is unknown
type Pos struct {
	Start  int
	Length int
	Source int
}

// NoPos is the location of nodes that were not read from a source file
var NoPos = Pos{Start: -1, Length: -1, Source: -1}

// ParsePos reads a `start:length:source` triple, as found in the `src` field
// of every solc AST node
func ParsePos(src string) (Pos, error) {
	if src == "" {
		return NoPos, nil
	}

	fields := strings.Split(src, ":")
	if len(fields) != 3 {
		return NoPos, errors.Errorf("malformed source location %q", src)
	}

	var values [3]int
	for ind, field := range fields {
		value, err := strconv.Atoi(field)
		if err != nil {
			return NoPos, errors.Wrapf(err, "malformed source location %q", src)
		}
		values[ind] = value
	}

	return Pos{Start: values[0], Length: values[1], Source: values[2]}, nil
}

// IsValid reports whether the position points into a source file
func (p Pos) IsValid() bool {
	return p.Start >= 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d:%d", p.Start, p.Length, p.Source)
}

// LineCol converts the position's offset into a 1-based line and column in
// the given source text. Both are zero if the position is not inside it
func (p Pos) LineCol(source []byte) (line, col int) {
	if !p.IsValid() || p.Start > len(source) {
		return 0, 0
	}

	line = 1
	col = 1
	for _, b := range source[:p.Start] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
