// Package report renders the fixed translation quality table.
package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

type Row struct {
	Language  string
	Precision string
	Recall    string
	F1        string
}

var Header = []string{"Language", "Precision", "Recall", "F1-Score"}

// TranslationScores are the evaluated scores per language pair, reported
// as they were measured.
var TranslationScores = []Row{
	{Language: "Fra-Eng", Precision: "0.797", Recall: "0.882", F1: "0.837"},
	{Language: "Spa-Eng", Precision: "0.889", Recall: "0.904", F1: "0.896"},
	{Language: "Deu-Eng", Precision: "0.803", Recall: "0.987", F1: "0.886"},
}

// Render draws rows as a bordered grid under Header.
func Render(w io.Writer, rows []Row) error {
	t := tablewriter.NewWriter(w)
	t.SetAutoFormatHeaders(false)
	t.SetHeader(Header)
	for _, r := range rows {
		t.Append([]string{r.Language, r.Precision, r.Recall, r.F1})
	}
	t.Render()
	return nil
}
