package response

import (
	"student-travels/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	if items == nil {
		items = []T{}
	}
	p := Page[T]{Items: items}
	if next != nil {
		p.NextCursor = next.After
	}
	return p
}

type CreatedResponse struct {
	ID string `json:"id"`
}

// copyList maps read views onto response types field by field.
func copyList[S, D any](src []S) ([]D, error) {
	dst := make([]D, 0, len(src))
	if err := copier.Copy(&dst, &src); err != nil {
		return nil, err
	}
	return dst, nil
}
