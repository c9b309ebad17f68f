package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/ceac-cli/internal/ceac"
	"github.com/sells-group/ceac-cli/internal/model"
)

// Export writes a pipeline result to path, choosing the format by extension:
// .csv writes the long-form curve, .json the full result, .xlsx a workbook
// with one sheet per table.
func Export(path string, res *ceac.Result, strategies model.StrategySet) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCSV(path, res.Long)
	case ".json":
		return WriteJSON(path, res)
	case ".xlsx":
		return WriteXLSX(path, res, strategies)
	default:
		return eris.Errorf("render: unsupported output format %q", ext)
	}
}

// WriteCSV writes a slice of csv-tagged structs with a header row.
func WriteCSV(path string, rows any) error {
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return eris.Wrap(err, "render: marshal csv")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "render: write %s", path)
	}
	return nil
}

// WriteJSON writes v as indented JSON.
func WriteJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "render: create %s", path)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		_ = f.Close()
		return eris.Wrap(err, "render: encode json")
	}
	if err := f.Close(); err != nil {
		return eris.Wrapf(err, "render: close %s", path)
	}
	return nil
}

// WriteXLSX writes the proportions, long-form curve, frontier and summary as
// sheets of one workbook.
func WriteXLSX(path string, res *ceac.Result, strategies model.StrategySet) error {
	f := xlsx.NewFile()

	wide, err := f.AddSheet("proportions")
	if err != nil {
		return eris.Wrap(err, "render: add proportions sheet")
	}
	header := []string{"wtp"}
	for _, s := range strategies {
		header = append(header, s.Label)
	}
	addStringRow(wide, header...)
	for _, p := range res.Wide {
		row := wide.AddRow()
		row.AddCell().SetFloat(p.WTP)
		for _, share := range p.Shares {
			row.AddCell().SetFloat(share)
		}
	}

	long, err := f.AddSheet("ceac")
	if err != nil {
		return eris.Wrap(err, "render: add ceac sheet")
	}
	addStringRow(long, "wtp", "strategy_id", "strategy", "proportion")
	for _, l := range res.Long {
		row := long.AddRow()
		row.AddCell().SetFloat(l.WTP)
		row.AddCell().SetInt(l.StrategyID)
		row.AddCell().SetString(l.Label)
		row.AddCell().SetFloat(l.Share)
	}

	frontier, err := f.AddSheet("frontier")
	if err != nil {
		return eris.Wrap(err, "render: add frontier sheet")
	}
	addStringRow(frontier, "wtp", "strategy_id", "strategy", "mean_nmb", "proportion")
	for _, pt := range res.Frontier {
		row := frontier.AddRow()
		row.AddCell().SetFloat(pt.WTP)
		row.AddCell().SetInt(pt.StrategyID)
		row.AddCell().SetString(pt.Label)
		row.AddCell().SetFloat(pt.MeanNMB)
		row.AddCell().SetFloat(pt.Share)
	}

	summary, err := f.AddSheet("summary")
	if err != nil {
		return eris.Wrap(err, "render: add summary sheet")
	}
	addStringRow(summary, "strategy_id", "strategy", "runs", "mean_disc_cost", "mean_disc_qaly", "mean_lifespan", "mean_cancer_cases")
	for _, s := range res.Summary {
		row := summary.AddRow()
		row.AddCell().SetInt(s.StrategyID)
		row.AddCell().SetString(s.Label)
		row.AddCell().SetInt(s.Runs)
		row.AddCell().SetFloat(s.MeanDiscCost)
		row.AddCell().SetFloat(s.MeanDiscQALY)
		row.AddCell().SetFloat(s.MeanLifespan)
		row.AddCell().SetFloat(s.MeanCancerCases)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "render: save %s", path)
	}
	return nil
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
