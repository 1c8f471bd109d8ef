package entity

import "fmt"

const (
	DefaultPage     = 0
	DefaultPageSize = 10
)

// Pagination página pedida (índice base 0) y tamaño.
type Pagination struct {
	Page int
	Size int
}

// DefaultPagination devuelve {0, 10}.
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Size: DefaultPageSize}
}

// PageMetadata metadatos de página que devuelve el backend.
type PageMetadata struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// PagedResponse página de resultados del backend.
type PagedResponse[T any] struct {
	Content []T          `json:"content"`
	Page    PageMetadata `json:"page"`
}

// TotalPagesFor calcula ceil(total/size); 0 cuando no hay elementos.
func TotalPagesFor(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Validate comprueba la coherencia de la página: totalPages == ceil(totalElements/size)
// y len(content) <= size.
func (p *PagedResponse[T]) Validate() error {
	if p.Page.TotalElements < 0 {
		return fmt.Errorf("página inválida: totalElements negativo (%d)", p.Page.TotalElements)
	}
	if p.Page.TotalElements > 0 && p.Page.Size <= 0 {
		return fmt.Errorf("página inválida: size %d con %d elementos", p.Page.Size, p.Page.TotalElements)
	}
	if want := TotalPagesFor(p.Page.TotalElements, p.Page.Size); p.Page.TotalPages != want {
		return fmt.Errorf("página inválida: totalPages %d, esperado %d", p.Page.TotalPages, want)
	}
	if p.Page.Size > 0 && len(p.Content) > p.Page.Size {
		return fmt.Errorf("página inválida: %d elementos para size %d", len(p.Content), p.Page.Size)
	}
	return nil
}

// Empty indica que la página no trae filas.
func (p *PagedResponse[T]) Empty() bool {
	return len(p.Content) == 0
}
