package query

import (
	"fmt"
	"strings"
)

type Op string

const (
	OpEq       Op = "="
	OpGte      Op = ">="
	OpLte      Op = "<="
	OpBetween  Op = "between"
	OpContains Op = "contains"
	OpMember   Op = "member"
)

// Condition constrains a single column. For OpBetween, Value is a [2]any of
// inclusive bounds.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Predicate is a conjunction of conditions. The empty predicate matches
// every row.
type Predicate []Condition

// SQL renders the predicate as a WHERE body with positional args. It returns
// an empty string for the empty predicate.
func (p Predicate) SQL() (string, []any) {
	if len(p) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(p))
	args := make([]any, 0, len(p))
	for _, c := range p {
		switch c.Op {
		case OpBetween:
			b := c.Value.([2]any)
			parts = append(parts, c.Column+" BETWEEN ? AND ?")
			args = append(args, b[0], b[1])
		case OpContains:
			// utf8mb4_bin keeps LIKE case-sensitive regardless of column collation.
			parts = append(parts, c.Column+" COLLATE utf8mb4_bin LIKE ?")
			args = append(args, "%"+escapeLike(fmt.Sprint(c.Value))+"%")
		case OpMember:
			// Column holds a comma-separated set; only whole elements match.
			parts = append(parts, "FIND_IN_SET(?, "+c.Column+") > 0")
			args = append(args, c.Value)
		default:
			parts = append(parts, fmt.Sprintf("%s %s ?", c.Column, c.Op))
			args = append(args, c.Value)
		}
	}
	return strings.Join(parts, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
