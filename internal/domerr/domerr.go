// Package domerr contains the typed domain errors of the inventory core.
// Capacity and quantity violations carry the exact numbers so handlers and
// the voice assistant can show them to the user.
package domerr

import (
	"errors"
	"fmt"
)

// ErrNoEncontrado marks lookups that reference a product, template or
// distributor the account does not have.
var ErrNoEncontrado = errors.New("no encontrado")

// ErrPremiumRequerido gates features reserved for the premium plan.
var ErrPremiumRequerido = errors.New("esta funcion requiere el plan premium")

// CapacidadExcedida rejects a unit admission that would overshoot the
// template's slots. Restantes is how many units still fit.
type CapacidadExcedida struct {
	Actual     int
	Solicitado int
	Restantes  int
}

func (e *CapacidadExcedida) Error() string {
	return fmt.Sprintf("capacidad excedida: %d unidades en stock, %d solicitadas, quedan %d espacios",
		e.Actual, e.Solicitado, e.Restantes)
}

// LimitePlanExcedido rejects a template creation beyond the plan limit.
type LimitePlanExcedido struct {
	Actual int
	Limite int
}

func (e *LimitePlanExcedido) Error() string {
	return fmt.Sprintf("limite del plan alcanzado: %d de %d plantillas", e.Actual, e.Limite)
}

// CantidadInsuficiente rejects a sale/removal larger than the group on hand.
type CantidadInsuficiente struct {
	Disponible int
	Solicitado int
}

func (e *CantidadInsuficiente) Error() string {
	return fmt.Sprintf("cantidad insuficiente: %d disponibles, %d solicitadas", e.Disponible, e.Solicitado)
}

// CapacidadInvalida marks a catalog template whose slotsMaximos is not a
// positive integer. Aggregation refuses to divide by it.
type CapacidadInvalida struct {
	Producto string
	Marca    string
	Slots    int
}

func (e *CapacidadInvalida) Error() string {
	return fmt.Sprintf("capacidad invalida (%d slots) para %s — %s", e.Slots, e.Producto, e.Marca)
}
