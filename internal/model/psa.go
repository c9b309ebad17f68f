package model

// PSAResult is one row of probabilistic sensitivity analysis output: the
// averaged outcomes of a single strategy under a single PSA parameter draw.
// Field order matches the column order of the input file.
type PSAResult struct {
	StrategyID      int     `json:"strategy_id" csv:"strategy_id"`
	PSARunNum       int     `json:"psa_run_num" csv:"psa_run_num"`
	RunID           int     `json:"run_id" csv:"run_id"`
	AvgLifespan     float64 `json:"avg_lifespan" csv:"avg_lifespan"`
	AvgCost         float64 `json:"avg_cost" csv:"avg_cost"`
	AvgDiscCost     float64 `json:"avg_disc_cost" csv:"avg_disc_cost"`
	AvgQALYMin      float64 `json:"avg_qaly_min" csv:"avg_qaly_min"`
	AvgDiscQALYMin  float64 `json:"avg_disc_qaly_min" csv:"avg_disc_qaly_min"`
	AvgQALYMult     float64 `json:"avg_qaly_mult" csv:"avg_qaly_mult"`
	AvgDiscQALYMult float64 `json:"avg_disc_qaly_mult" csv:"avg_disc_qaly_mult"`
	CancerCases     int     `json:"cancer_cases" csv:"cancer_cases"`
	CancerDeaths    int     `json:"cancer_deaths" csv:"cancer_deaths"`
	ScreenCount     int     `json:"screen_count" csv:"screen_count"`
	FalsePositives  int     `json:"false_positives" csv:"false_positives"`
	AdverseEvents   int     `json:"adverse_events" csv:"adverse_events"`
}

// PSAColumns is the declared input schema, in positional order.
var PSAColumns = []string{
	"strategy_id",
	"psa_run_num",
	"run_id",
	"avg_lifespan",
	"avg_cost",
	"avg_disc_cost",
	"avg_qaly_min",
	"avg_disc_qaly_min",
	"avg_qaly_mult",
	"avg_disc_qaly_mult",
	"cancer_cases",
	"cancer_deaths",
	"screen_count",
	"false_positives",
	"adverse_events",
}

// NMB returns the net monetary benefit of the row at willingness-to-pay wtp.
func (r PSAResult) NMB(wtp float64) float64 {
	return wtp*r.AvgDiscQALYMult - r.AvgDiscCost
}

// ExpandedRow is a PSA row projected to its net monetary benefit at one
// willingness-to-pay threshold.
type ExpandedRow struct {
	StrategyID int     `json:"strategy_id" csv:"strategy_id"`
	PSARunNum  int     `json:"psa_run_num" csv:"psa_run_num"`
	NMB        float64 `json:"nmb" csv:"nmb"`
	WTP        float64 `json:"wtp" csv:"wtp"`
}

// Winner is the expanded row with the highest NMB in its (run, WTP) group.
type Winner struct {
	ExpandedRow
	Tied bool `json:"tied,omitempty" csv:"tied"` // another strategy matched the max NMB
}

// Proportion is the wide form of the acceptability curve at one threshold.
// Counts and Shares are indexed in strategy order.
type Proportion struct {
	WTP    float64   `json:"wtp"`
	Counts []int     `json:"counts"`
	Shares []float64 `json:"shares"`
	Ties   int       `json:"ties,omitempty"`
}

// LongProportion is one (threshold, strategy) point of the acceptability curve.
type LongProportion struct {
	WTP        float64 `json:"wtp" csv:"wtp"`
	StrategyID int     `json:"strategy_id" csv:"strategy_id"`
	Label      string  `json:"strategy" csv:"strategy"`
	Share      float64 `json:"proportion" csv:"proportion"`
}

// FrontierPoint is the strategy with the highest expected NMB at a threshold.
type FrontierPoint struct {
	WTP        float64 `json:"wtp" csv:"wtp"`
	StrategyID int     `json:"strategy_id" csv:"strategy_id"`
	Label      string  `json:"strategy" csv:"strategy"`
	MeanNMB    float64 `json:"mean_nmb" csv:"mean_nmb"`
	Share      float64 `json:"proportion" csv:"proportion"` // probability the optimal strategy wins
}

// StrategySummary holds per-strategy means across PSA runs.
type StrategySummary struct {
	StrategyID      int     `json:"strategy_id" csv:"strategy_id"`
	Label           string  `json:"strategy" csv:"strategy"`
	Runs            int     `json:"runs" csv:"runs"`
	MeanDiscCost    float64 `json:"mean_disc_cost" csv:"mean_disc_cost"`
	MeanDiscQALY    float64 `json:"mean_disc_qaly" csv:"mean_disc_qaly"`
	MeanLifespan    float64 `json:"mean_lifespan" csv:"mean_lifespan"`
	MeanCancerCases float64 `json:"mean_cancer_cases" csv:"mean_cancer_cases"`
}
