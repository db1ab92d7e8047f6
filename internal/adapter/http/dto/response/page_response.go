package response

import (
	"oficina_mecanica/internal/domain/entities"

	"github.com/samber/lo"
)

type PageResponse[T any] struct {
	Items         []T    `json:"items"`
	NextPageToken string `json:"next_page_token,omitempty"`
}

func FromPage[E, R any](p entities.Page[E], convert func(E) R) PageResponse[R] {
	return PageResponse[R]{
		Items:         lo.Map(p.Items, func(e E, _ int) R { return convert(e) }),
		NextPageToken: p.NextPageToken,
	}
}
