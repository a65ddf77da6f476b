package render

import (
	"github.com/trebuchet-org/opctl/internal/domain/models"
	"github.com/trebuchet-org/opctl/internal/usecase"
)

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*models.Result]        = (*ResultRenderer)(nil)
	_ Renderer[[]usecase.CommandSpec] = (*CommandsRenderer)(nil)
)
