package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError representa o corpo de erro padronizado da API.
// O campo "detail" é o contrato exposto aos clientes.
type APIError struct {
	Detail string `json:"detail"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(APIError{Detail: detail}) //nolint:errcheck
}

// FromError cria o corpo de erro a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{Detail: "erro desconhecido"}
	}

	return APIError{Detail: err.Error()}
}
