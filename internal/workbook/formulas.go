package workbook

import (
	"strings"
	"unicode"
)

const (
	mmSourceRange   = "A3:O"
	postSourceRange = "Q3:AE"
	noDataFallback  = "No Data Found"
)

// outputColumns skips Col4, the protected column of each category tab.
var outputColumns = []string{
	"Col1", "Col2", "Col3", "Col5", "Col6", "Col7", "Col8",
	"Col9", "Col10", "Col11", "Col12", "Col13", "Col14", "Col15",
}

// Formulas are the aggregation formulas written to the MasterSheet tabs.
type Formulas struct {
	MM   string
	POST string
}

// BuildFormulas assembles the MM and POST formulas for sel. Both are empty
// when nothing is selected.
func BuildFormulas(layout Layout, sel Selection) Formulas {
	var tabs []string
	if sel.Free {
		tabs = append(tabs, layout.FreeTabName)
	}
	if sel.Paid {
		tabs = append(tabs, layout.PaidTabName)
	}
	if len(tabs) == 0 {
		return Formulas{}
	}
	mm := "=" + queryExpr(tabs, mmSourceRange)
	post := `=IFERROR(` + queryExpr(tabs, postSourceRange) + `, "` + noDataFallback + `")`
	return Formulas{MM: mm, POST: post}
}

func queryExpr(tabs []string, rng string) string {
	refs := make([]string, len(tabs))
	for i, tab := range tabs {
		refs[i] = rangeRef(tab, rng)
	}
	// An array literal lets the query address columns as ColN for one or
	// many stacked ranges.
	source := "{" + strings.Join(refs, "; ") + "}"
	return `QUERY(` + source + `, "select ` + strings.Join(outputColumns, ", ") + ` where Col1 is not null", 0)`
}

// rangeRef quotes tab names that are not plain identifiers.
func rangeRef(tab, rng string) string {
	plain := tab != ""
	for _, r := range tab {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			plain = false
			break
		}
	}
	if plain {
		return tab + "!" + rng
	}
	return "'" + strings.ReplaceAll(tab, "'", "''") + "'!" + rng
}
