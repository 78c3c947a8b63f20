package dto

type CambiarPlanRequest struct {
	Tipo string `json:"tipo" validate:"required,oneof=gratuito premium"`
}

type PlanResponse struct {
	Tipo            string `json:"tipo"`
	LimiteProductos int    `json:"limite_productos"`
	FechaCambio     string `json:"fecha_cambio,omitempty"`
}
