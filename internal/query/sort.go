package query

import (
	"strings"

	"marketplace/internal/domain"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Sort struct {
	Column    string
	Direction Direction
}

func (s Sort) SQL() string {
	return s.Column + " " + string(s.Direction)
}

// SortFields is an allow-list from API attribute name to column.
type SortFields map[string]string

// Resolve picks the ordering. With nothing given it is newest-first by id;
// a sortBy without a direction sorts ascending.
func (f SortFields) Resolve(sortBy, direction *string) (Sort, error) {
	s := Sort{Column: "id", Direction: Desc}
	if sortBy != nil && strings.TrimSpace(*sortBy) != "" {
		col, ok := f[strings.TrimSpace(*sortBy)]
		if !ok {
			return Sort{}, domain.ValidationError{Field: "sortBy", Msg: "unsupported sort field " + *sortBy}
		}
		s = Sort{Column: col, Direction: Asc}
	}
	if direction != nil && strings.TrimSpace(*direction) != "" {
		switch Direction(strings.ToUpper(strings.TrimSpace(*direction))) {
		case Asc:
			s.Direction = Asc
		case Desc:
			s.Direction = Desc
		default:
			return Sort{}, domain.ValidationError{Field: "sortDirection", Msg: "must be ASC or DESC"}
		}
	}
	return s, nil
}
