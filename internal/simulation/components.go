package simulation

import "keynes-cross/internal/model"

// lumpSumComponents: C(y) = (C0 - T) + C1*y and a constant NX.
// The whole tax amount comes off autonomous consumption.
func lumpSumComponents(p model.Parameters, y float64) components {
	tax := 0.0
	if t, ok := p.Tax.(model.LumpSumTax); ok {
		tax = t.Amount
	}
	nx := 0.0
	if tr, ok := p.Trade.(model.NetExportsFixed); ok {
		nx = tr.Value
	}
	return components{
		Consumption: (p.AutonomousConsumption - tax) + p.MarginalPropensityToConsume*y,
		NetExports:  nx,
	}
}

// proportionalComponents: Yd = y - t*y, C = C0 + C1*Yd, NX = X - M1*Yd.
// A tax rate of 1 leaves Yd at zero, so every curve is flat.
func proportionalComponents(p model.Parameters, y float64) components {
	rate := p.Tax.(model.ProportionalTax).Rate
	flows := p.Trade.(model.TradeFlows)

	disposable := y - rate*y
	imports := flows.MarginalPropensityToImport * disposable
	return components{
		Consumption: p.AutonomousConsumption + p.MarginalPropensityToConsume*disposable,
		NetExports:  flows.Exports - imports,
	}
}
