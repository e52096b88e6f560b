package pagination

// Paginator estado de paginación de una vista: tamaño de página, página actual y total.
// currentPage nunca baja de 1; con 0 páginas queda fijo en su último valor válido.
type Paginator struct {
	pageSize    int
	currentPage int
	totalPages  int
}

// NewPaginator crea un paginador en la página 1.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}
}

// Reconcile recalcula el total de páginas para total elementos. Si la página actual quedó fuera
// de rango vuelve a la 1 (no se ajusta a la última).
func (p *Paginator) Reconcile(total int) {
	p.totalPages = TotalPages(total, p.pageSize)
	if p.currentPage > p.totalPages && p.totalPages > 0 {
		p.currentPage = 1
	}
}

// SetPageSize cambia el tamaño de página, vuelve a la página 1 y recalcula.
func (p *Paginator) SetPageSize(size, total int) {
	if size <= 0 {
		size = 1
	}
	p.pageSize = size
	p.currentPage = 1
	p.Reconcile(total)
}

// GoTo mueve a la página n; false si n está fuera de [1, totalPages].
func (p *Paginator) GoTo(n int) bool {
	if n < 1 || n > p.totalPages {
		return false
	}
	p.currentPage = n
	return true
}

// Previous retrocede una página; false en la primera.
func (p *Paginator) Previous() bool {
	if p.currentPage <= 1 {
		return false
	}
	p.currentPage--
	return true
}

// Next avanza una página; false en la última.
func (p *Paginator) Next() bool {
	if p.currentPage >= p.totalPages {
		return false
	}
	p.currentPage++
	return true
}

func (p *Paginator) PageSize() int    { return p.pageSize }
func (p *Paginator) CurrentPage() int { return p.currentPage }
func (p *Paginator) TotalPages() int  { return p.totalPages }

// PageNumbers ventana de páginas visibles para la página actual.
func (p *Paginator) PageNumbers() []int {
	return PageNumbers(p.currentPage, p.totalPages)
}

// HasPagination indica si se deben mostrar los controles (más de una página).
func (p *Paginator) HasPagination() bool { return p.totalPages > 1 }

func (p *Paginator) CanPrevious() bool { return p.currentPage > 1 }

func (p *Paginator) CanNext() bool { return p.currentPage < p.totalPages }
