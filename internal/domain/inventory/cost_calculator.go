// Package inventory reglas de valorización de existencias.
package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost costo promedio ponderado tras una entrada de mercancía.
// NuevoCosto = ((Existencia × CostoActual) + (CantEntrada × CostoEntrada)) / (Existencia + CantEntrada)
func WeightedAverageCost(onHand, currentCost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	if onHand.IsNegative() {
		onHand = decimal.Zero
	}
	sum := onHand.Add(qtyIn)
	if !sum.IsPositive() {
		return decimal.Zero
	}
	num := onHand.Mul(currentCost).Add(qtyIn.Mul(costIn))
	return num.Div(sum).Round(4)
}
