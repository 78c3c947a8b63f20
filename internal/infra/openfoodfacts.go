package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ProductoEscaneado es el resultado de consultar un codigo de barras en la
// base publica de productos. Cuando el codigo no existe (o el servicio no
// responde) Encontrado queda en false y los demas campos vacios.
type ProductoEscaneado struct {
	Encontrado bool
	Nombre     string
	Marca      string
	Categoria  string
}

// OpenFoodFactsClient consulta la API publica de Open Food Facts para
// prellenar el formulario de ingreso al escanear un codigo de barras.
type OpenFoodFactsClient struct {
	baseURL string
	http    *http.Client
	cb      *CircuitBreaker
}

// NewOpenFoodFactsClient crea el cliente con circuit breaker propio.
func NewOpenFoodFactsClient(baseURL string) *OpenFoodFactsClient {
	return &OpenFoodFactsClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 8 * time.Second},
		cb:      NewCircuitBreaker(DefaultCBConfig()),
	}
}

type offResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductNameES string `json:"product_name_es"`
		ProductName   string `json:"product_name"`
		Brands        string `json:"brands"`
		Categories    string `json:"categories"`
	} `json:"product"`
}

// Buscar consulta un codigo de barras. Nunca devuelve error por fallas del
// servicio remoto: ante timeout, 5xx o breaker abierto degrada a un
// resultado vacio para que el escaneo siga funcionando en modo manual.
func (c *OpenFoodFactsClient) Buscar(ctx context.Context, codigo string) ProductoEscaneado {
	var out ProductoEscaneado

	err := c.cb.Execute(func() error {
		url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, codigo)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("openfoodfacts devolvio status %d", resp.StatusCode)
		}

		var body offResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return err
		}

		if body.Status != 1 {
			// Codigo desconocido: respuesta valida, producto no hallado
			return nil
		}

		out.Encontrado = true
		out.Nombre = body.Product.ProductNameES
		if out.Nombre == "" {
			out.Nombre = body.Product.ProductName
		}
		out.Marca = body.Product.Brands
		out.Categoria = body.Product.Categories
		return nil
	})

	if err != nil {
		log.Warn().Err(err).Str("codigo", codigo).
			Str("cb_state", c.cb.State().String()).
			Msg("Consulta de codigo de barras degradada")
		return ProductoEscaneado{}
	}
	return out
}
