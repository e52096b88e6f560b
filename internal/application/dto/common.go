package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	TotalPages  int    `json:"total_pages"`
	Total       int    `json:"total"`
	PageNumbers []int  `json:"page_numbers"`
	View        string `json:"view"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// LocationResponse respuesta de acciones que solo navegan.
type LocationResponse struct {
	Location string `json:"location"`
}
