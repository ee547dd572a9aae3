// Package report renders analysis batches as plain-text tables.
package report

import (
	"fmt"
	"strings"

	"tariffwatch/internal/model"

	"github.com/mattn/go-runewidth"
)

var header = []string{"时间", "客户", "影响", "标题", "链接"}

// maxTitleWidth bounds the title column; longer titles are truncated with "...".
const maxTitleWidth = 60

func Rows(batch model.AnalysisBatch) [][]string {
	rows := make([][]string, 0, len(batch.Results))
	for _, r := range batch.Results {
		rows = append(rows, []string{
			r.Time,
			r.Client,
			r.Impact.Label(),
			runewidth.Truncate(r.Title, maxTitleWidth, "..."),
			r.Link,
		})
	}
	return rows
}

// Table renders the batch as a pipe-delimited table. Columns are padded by
// display width so CJK client names stay aligned.
func Table(batch model.AnalysisBatch) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🕒 %s\n", batch.Timestamp))

	if batch.Empty() {
		sb.WriteString("无相关影响\n")
		return sb.String()
	}

	table := append([][]string{header}, Rows(batch)...)

	widths := make([]int, len(header))
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	for i, row := range table {
		writeRow(&sb, row, widths)
		if i == 0 {
			sep := make([]string, len(widths))
			for j, w := range widths {
				sep[j] = strings.Repeat("-", w)
			}
			writeRow(&sb, sep, widths)
		}
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")
	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// Pairs renders per-search counts, one line per (language, keyword).
func Pairs(batch model.AnalysisBatch) string {
	var sb strings.Builder
	for _, p := range batch.Pairs {
		status := ""
		if p.Failed {
			status = fmt.Sprintf(" (fetch failed: %s)", p.Error)
		}
		sb.WriteString(fmt.Sprintf("📦 %s 语言关键词【%s】共抓取 %d 条新闻，识别到 %d 条与客户相关的新闻%s\n", p.Language, p.Keyword, p.Fetched, p.Matched, status))
	}
	return sb.String()
}
