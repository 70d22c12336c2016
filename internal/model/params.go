package model

import "math"

// TaxSpec is either LumpSumTax or ProportionalTax.
type TaxSpec interface {
	taxSpec()
}

// LumpSumTax is a fixed amount subtracted from income before consumption.
type LumpSumTax struct {
	Amount float64
}

// ProportionalTax levies Rate (0..1) on gross income.
type ProportionalTax struct {
	Rate float64
}

func (LumpSumTax) taxSpec()      {}
func (ProportionalTax) taxSpec() {}

// TradeSpec is either NetExportsFixed or TradeFlows.
type TradeSpec interface {
	tradeSpec()
}

// NetExportsFixed supplies net exports directly as a constant.
type NetExportsFixed struct {
	Value float64
}

// TradeFlows derives imports from disposable income.
// Net exports = Exports - MarginalPropensityToImport * disposable income.
type TradeFlows struct {
	Exports                    float64
	MarginalPropensityToImport float64
}

func (NetExportsFixed) tradeSpec() {}
func (TradeFlows) tradeSpec()      {}

// Parameters are the behavioral inputs of one model evaluation.
// Units are arbitrary currency per period; propensities and rates are fractions 0..1.
//
// A nil Tax means no tax and a nil Trade means zero net exports. Both are only
// meaningful for the lump-sum variant.
type Parameters struct {
	AutonomousConsumption       float64
	MarginalPropensityToConsume float64
	Investment                  float64
	GovernmentSpending          float64
	Tax                         TaxSpec
	Trade                       TradeSpec
}

// LumpSumParameters builds the Simulation-1 parameter shape.
func LumpSumParameters(c0, c1, tax, investment, government, netExports float64) Parameters {
	return Parameters{
		AutonomousConsumption:       c0,
		MarginalPropensityToConsume: c1,
		Investment:                  investment,
		GovernmentSpending:          government,
		Tax:                         LumpSumTax{Amount: tax},
		Trade:                       NetExportsFixed{Value: netExports},
	}
}

// ProportionalParameters builds the Simulation-2 parameter shape.
func ProportionalParameters(c0, c1, taxRate, investment, government, m1, exports float64) Parameters {
	return Parameters{
		AutonomousConsumption:       c0,
		MarginalPropensityToConsume: c1,
		Investment:                  investment,
		GovernmentSpending:          government,
		Tax:                         ProportionalTax{Rate: taxRate},
		Trade:                       TradeFlows{Exports: exports, MarginalPropensityToImport: m1},
	}
}

// Variant resolves which model the tax and trade specifications select.
func (p Parameters) Variant() (Variant, error) {
	switch p.Tax.(type) {
	case nil, LumpSumTax:
		switch p.Trade.(type) {
		case nil, NetExportsFixed:
			return VariantLumpSum, nil
		}
		return "", &ParameterError{Param: "trade", Reason: "trade flows require a proportional tax"}
	case ProportionalTax:
		if _, ok := p.Trade.(TradeFlows); ok {
			return VariantProportional, nil
		}
		return "", &ParameterError{Param: "trade", Reason: "a proportional tax requires trade flows (exports and import propensity)"}
	default:
		return "", &ParameterError{Param: "tax", Reason: "unknown tax specification"}
	}
}

// Validate checks every parameter against its accepted range.
// C1, the tax rate and the import propensity are rejected outside [0,1]; nothing is clamped.
func (p Parameters) Validate() error {
	if err := finite("autonomous_consumption", p.AutonomousConsumption); err != nil {
		return err
	}
	if p.AutonomousConsumption < 0 {
		return &ParameterError{Param: "autonomous_consumption", Value: p.AutonomousConsumption, Reason: "must be >= 0"}
	}
	if err := unitInterval("marginal_propensity_to_consume", p.MarginalPropensityToConsume); err != nil {
		return err
	}
	if err := finite("investment", p.Investment); err != nil {
		return err
	}
	if err := finite("government_spending", p.GovernmentSpending); err != nil {
		return err
	}

	switch t := p.Tax.(type) {
	case LumpSumTax:
		if err := finite("tax", t.Amount); err != nil {
			return err
		}
	case ProportionalTax:
		// Rate == 1 is accepted: disposable income is zero and curves are flat.
		if err := unitInterval("tax_rate", t.Rate); err != nil {
			return err
		}
	}

	switch tr := p.Trade.(type) {
	case NetExportsFixed:
		if err := finite("net_exports", tr.Value); err != nil {
			return err
		}
	case TradeFlows:
		if err := finite("exports", tr.Exports); err != nil {
			return err
		}
		if err := unitInterval("marginal_propensity_to_import", tr.MarginalPropensityToImport); err != nil {
			return err
		}
	}

	_, err := p.Variant()
	return err
}

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Param: name, Value: v, Reason: "must be a finite number"}
	}
	return nil
}

func unitInterval(name string, v float64) error {
	if err := finite(name, v); err != nil {
		return err
	}
	if v < 0 || v > 1 {
		return &ParameterError{Param: name, Value: v, Reason: "must be in [0, 1]"}
	}
	return nil
}
