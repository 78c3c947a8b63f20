package dto

type ComandoRequest struct {
	Texto string `json:"texto" validate:"required"`
}

// ComandoResponse is spoken back to the user by the client's TTS engine.
// Entendido=false means the text matched no intent; Exito=false with
// Entendido=true means the intent ran but the product was not found or the
// operation failed.
type ComandoResponse struct {
	Entendido bool   `json:"entendido"`
	Exito     bool   `json:"exito"`
	Intencion string `json:"intencion,omitempty"` // agregar | vender | eliminar
	Respuesta string `json:"respuesta"`
}
