package scarab

import (
	"strings"

	"github.com/pianohacker/scarab/parser"
)

// ParseErrors aggregates the parse failures from a multi-file `run`,
// formatted one per line as "file:line:col: kind: message" — the same
// shape as the teacher's SQLCodeParseErrors over []sqlparser.Error.
type ParseErrors []*parser.Error

func (pe ParseErrors) Error() string {
	lines := make([]string, len(pe))
	for i, e := range pe {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}
