// Package pagination deriva cantidad de páginas, ventana de botones visibles y el tramo de
// elementos de la página actual. Todo es puro y sin dependencias.
package pagination

// MaxVisiblePages cantidad máxima de botones de página visibles.
const MaxVisiblePages = 5

// TotalPages devuelve ceil(total/size); 0 si no hay elementos o el tamaño no es positivo.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// PageNumbers devuelve la ventana de páginas visibles (como mucho MaxVisiblePages).
// Con más páginas que el máximo, la ventana se centra en current y se desliza en los bordes.
func PageNumbers(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	if totalPages <= MaxVisiblePages {
		return rangeInclusive(1, totalPages)
	}
	start := max(1, current-2)
	end := min(totalPages, start+MaxVisiblePages-1)
	if end-start < MaxVisiblePages-1 {
		start = max(1, end-MaxVisiblePages+1)
	}
	return rangeInclusive(start, end)
}

// Bounds devuelve los índices [start, end) de la página current dentro de total elementos.
func Bounds(total, size, current int) (int, int) {
	if total <= 0 || size <= 0 || current < 1 {
		return 0, 0
	}
	start := (current - 1) * size
	if start >= total {
		return total, total
	}
	return start, min(total, start+size)
}

// Slice devuelve los elementos de la página current.
func Slice[T any](items []T, size, current int) []T {
	start, end := Bounds(len(items), size, current)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

func rangeInclusive(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
