package metadomain

import "fmt"

// RequestError representa uma resposta não-2xx da API do Meta, preservando o
// status e o corpo bruto para diagnóstico.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("erro %d: %s", e.StatusCode, e.Body)
}
