package category

import (
	"strings"
	"time"
	"unicode/utf8"

	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxNameLength = 100

var ErrInvalidName = errs.Validation("category name must be 1-100 characters")

type Category struct {
	id          uuid.UUID
	name        string
	description string
	createdAt   time.Time
}

func NewCategory(name, description string, now time.Time) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	return &Category{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   now,
	}, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
