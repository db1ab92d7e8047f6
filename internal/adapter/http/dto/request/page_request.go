package request

import "oficina_mecanica/internal/domain/entities"

// PageQuery binds the pagination query string shared by list endpoints.
type PageQuery struct {
	Size  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Token string `form:"page_token"`
}

func (q PageQuery) ToPageRequest() entities.PageRequest {
	return entities.PageRequest{Size: q.Size, Token: q.Token}
}
