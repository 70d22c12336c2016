package api_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"keynes-cross/internal/api"
	"keynes-cross/internal/api/models"
)

func num(v float64) *float64 { return &v }

const simulation1 = `
scenario:
  name: Simulation-1
  model: lump_sum
  autonomous_consumption: 50
  marginal_propensity_to_consume: 0.5
  tax: 20
  investment: 50
  government_spending: 20
  net_exports: 50
`

var _ = Describe("Router", func() {
	var (
		router http.Handler
		dir    string
	)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder, into any) {
		Expect(json.Unmarshal(rec.Body.Bytes(), into)).To(Succeed())
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "1_simulation_1.yaml"), []byte(simulation1), 0o644)).To(Succeed())
		router = api.NewRouter(api.Options{ScenarioDir: dir})
	})

	It("reports health", func() {
		rec := do(http.MethodGet, "/health", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"ok"`))
	})

	Context("POST /api/v1/simulate", func() {
		It("returns the lump-sum equilibria", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{
					Model:                       "lump_sum",
					AutonomousConsumption:       num(50),
					MarginalPropensityToConsume: num(0.5),
					Tax:                         num(20),
					Investment:                  num(50),
					GovernmentSpending:          num(20),
					NetExports:                  num(50),
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp models.SimulateResponse
			decode(rec, &resp)
			Expect(resp.ID).NotTo(BeEmpty())
			Expect(resp.Variant).To(Equal("lump_sum"))
			Expect(resp.Grid.Samples).To(Equal(100))
			Expect(resp.Curves).To(BeEmpty())
			Expect(resp.Equilibria).To(HaveLen(4))
			Expect(resp.Equilibria[0].Label).To(Equal("C"))
			Expect(resp.Equilibria[0].Found).To(BeTrue())
			Expect(*resp.Equilibria[0].Income).To(BeNumerically("~", 60, 1e-6))
			Expect(*resp.Equilibria[3].Income).To(BeNumerically("~", 300, 1e-6))
			Expect(resp.Summary).To(HaveLen(4))
			Expect(*resp.Summary[0].Multiplier).To(BeNumerically("~", 2, 1e-9))
		})

		It("exports a stored result as CSV", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{ScenarioFile: "1_simulation_1"})
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp models.SimulateResponse
			decode(rec, &resp)

			rec = do(http.MethodGet, "/api/v1/simulate/"+resp.ID+"/csv", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/csv"))

			rows, err := csv.NewReader(rec.Body).ReadAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(101))
			Expect(rows[0]).To(Equal([]string{"index", "income", "c", "c_i", "c_i_g", "c_i_g_nx"}))
			Expect(rows[1]).To(Equal([]string{"0", "0.000000", "30.000000", "80.000000", "100.000000", "150.000000"}))
		})

		It("answers 404 for unknown results", func() {
			rec := do(http.MethodGet, "/api/v1/simulate/nope/csv", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("applies request overrides on top of a preset", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				ScenarioFile: "1_simulation_1",
				Scenario:     models.ScenarioConfig{NetExports: num(100)},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp models.SimulateResponse
			decode(rec, &resp)
			Expect(*resp.Equilibria[3].Income).To(BeNumerically("~", 400, 1e-6))
		})

		It("honors an explicit zero over a preset value", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				ScenarioFile: "1_simulation_1",
				Scenario:     models.ScenarioConfig{Tax: num(0)},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp models.SimulateResponse
			decode(rec, &resp)
			Expect(*resp.Equilibria[0].Income).To(BeNumerically("~", 100, 1e-6))
		})

		It("keeps curves flat at a tax rate of one", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{
					Model:                       "proportional",
					AutonomousConsumption:       num(20),
					MarginalPropensityToConsume: num(0.9),
					TaxRate:                     num(1),
					Investment:                  num(60),
					GovernmentSpending:          num(100),
					MarginalPropensityToImport:  num(0.1),
					Exports:                     num(30),
				},
				Options: models.SimulateOptions{IncludeCurves: true},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			var resp models.SimulateResponse
			decode(rec, &resp)
			Expect(resp.Curves).To(HaveLen(4))
			for _, d := range resp.Curves[3].Demand {
				Expect(d).To(Equal(210.0))
			}
			Expect(*resp.Equilibria[3].Income).To(BeNumerically("~", 210, 1e-6))
		})

		It("reports equilibria outside the grid as not found", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{
					Model:                       "lump_sum",
					AutonomousConsumption:       num(10000),
					MarginalPropensityToConsume: num(0.5),
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`{"label":"C","found":false}`))
		})

		It("rejects an out-of-range propensity", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{Model: "lump_sum", MarginalPropensityToConsume: num(1.5)},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp models.ErrorResponse
			decode(rec, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_PARAMETER"))
			Expect(resp.Error.Details).To(HaveKeyWithValue("param", "marginal_propensity_to_consume"))
		})

		It("rejects a malformed grid", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{Model: "lump_sum", MarginalPropensityToConsume: num(0.5)},
				Grid:     &models.GridConfig{Lower: 100, Upper: 10, Samples: 50},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp models.ErrorResponse
			decode(rec, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_DOMAIN"))
		})

		It("caps the number of grid samples", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				ScenarioFile: "1_simulation_1",
				Grid:         &models.GridConfig{Lower: 0, Upper: 700, Samples: 2000000000},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp models.ErrorResponse
			decode(rec, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_DOMAIN"))
			Expect(resp.Error.Details).To(HaveKeyWithValue("samples", BeNumerically("==", 2000000000)))
		})

		It("names an unknown model as the invalid parameter", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{
				Scenario: models.ScenarioConfig{Model: "keynes", MarginalPropensityToConsume: num(0.5)},
			})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp models.ErrorResponse
			decode(rec, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_PARAMETER"))
			Expect(resp.Error.Details).To(HaveKeyWithValue("param", "model"))
			Expect(resp.Error.Details).To(HaveKeyWithValue("value", "keynes"))
		})

		It("requires a model", func() {
			rec := do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			var resp models.ErrorResponse
			decode(rec, &resp)
			Expect(resp.Error.Code).To(Equal("INVALID_REQUEST"))
		})
	})

	Context("POST /api/v1/simulate/compare", func() {
		It("ranks variations and reports invalid ones in place", func() {
			rec := do(http.MethodPost, "/api/v1/simulate/compare", models.CompareRequest{
				ScenarioFile: "1_simulation_1",
				Variations: []models.ScenarioVariation{
					{Name: "baseline"},
					{Name: "bad", Scenario: models.ScenarioConfig{MarginalPropensityToConsume: num(4)}},
					{Name: "export boom", Scenario: models.ScenarioConfig{NetExports: num(100)}},
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp models.CompareResponse
			decode(rec, &resp)
			Expect(resp.Comparison).To(HaveLen(3))

			Expect(resp.Comparison[0].Name).To(Equal("baseline"))
			Expect(resp.Comparison[0].Rank).To(Equal(2))
			Expect(resp.Comparison[1].Error).NotTo(BeNil())
			Expect(resp.Comparison[1].Error.Code).To(Equal("INVALID_PARAMETER"))
			Expect(resp.Comparison[1].Rank).To(BeZero())
			Expect(resp.Comparison[2].Rank).To(Equal(1))
			Expect(*resp.Comparison[2].Equilibria[3].Income).To(BeNumerically("~", 400, 1e-6))
		})

		It("lets a variation set a preset value to zero", func() {
			rec := do(http.MethodPost, "/api/v1/simulate/compare", models.CompareRequest{
				ScenarioFile: "1_simulation_1",
				Variations: []models.ScenarioVariation{
					{Name: "base"},
					{Name: "no tax", Scenario: models.ScenarioConfig{Tax: num(0)}},
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp models.CompareResponse
			decode(rec, &resp)
			Expect(resp.Comparison).To(HaveLen(2))
			Expect(*resp.Comparison[0].Equilibria[0].Income).To(BeNumerically("~", 60, 1e-6))
			Expect(*resp.Comparison[1].Equilibria[0].Income).To(BeNumerically("~", 100, 1e-6))
		})

		It("ranks variations that share a name independently", func() {
			rec := do(http.MethodPost, "/api/v1/simulate/compare", models.CompareRequest{
				ScenarioFile: "1_simulation_1",
				Variations: []models.ScenarioVariation{
					{Name: "x", Scenario: models.ScenarioConfig{AutonomousConsumption: num(5000)}},
					{Name: "x", Scenario: models.ScenarioConfig{Investment: num(60)}},
				},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp models.CompareResponse
			decode(rec, &resp)
			Expect(resp.Comparison).To(HaveLen(2))
			Expect(resp.Comparison[0].Equilibria[3].Found).To(BeFalse())
			Expect(resp.Comparison[0].Rank).To(Equal(2))
			Expect(resp.Comparison[1].Equilibria[3].Found).To(BeTrue())
			Expect(resp.Comparison[1].Rank).To(Equal(1))
		})

		It("requires variations", func() {
			rec := do(http.MethodPost, "/api/v1/simulate/compare", models.CompareRequest{})
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	It("lists models", func() {
		rec := do(http.MethodGet, "/api/v1/models", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		var resp struct {
			Models []models.ModelInfo `json:"models"`
		}
		decode(rec, &resp)
		Expect(resp.Models).To(HaveLen(2))
		Expect(resp.Models[0].Name).To(Equal("lump_sum"))
		Expect(resp.Models[1].Name).To(Equal("proportional"))
		Expect(resp.Models[1].Parameters).To(ContainElement(HaveField("Name", "tax_rate")))
	})

	It("lists scenario presets", func() {
		rec := do(http.MethodGet, "/api/v1/scenarios", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		var resp struct {
			Scenarios []models.ScenarioInfo `json:"scenarios"`
		}
		decode(rec, &resp)
		Expect(resp.Scenarios).To(HaveLen(1))
		Expect(resp.Scenarios[0].ID).To(Equal("1_simulation_1"))
		Expect(resp.Scenarios[0].Scenario.Tax).To(Equal(20.0))
	})

	It("exposes simulation metrics", func() {
		do(http.MethodPost, "/api/v1/simulate", models.SimulateRequest{ScenarioFile: "1_simulation_1"})
		rec := do(http.MethodGet, "/metrics", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`keynes_simulations_total{outcome="ok",variant="lump_sum"} 1`))
	})

	It("answers CORS preflight requests", func() {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/simulate", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(Equal("*"))
	})
})
