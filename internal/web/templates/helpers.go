package templates

import (
	"html/template"
	"path"
	"strings"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/util"
)

var funcMap = template.FuncMap{
	"fmtHours":    util.FormatHours,
	"fmtBytes":    util.FormatBytes,
	"fmtDate":     util.FormatDateHuman,
	"fmtDateTime": util.FormatDateTime,
	"join": func(items []string, sep string) string {
		return strings.Join(items, sep)
	},
	"deref": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"truncate": func(s string, n int) string {
		if len(s) > n {
			return s[:n] + "…"
		}
		return s
	},
	"basename": func(uri string) string {
		return path.Base(strings.TrimPrefix(uri, "file://"))
	},
	"outputCount": func(o campaign.AnalysisOutputs) int {
		return len(o.Alignments) + len(o.VariantTables) + len(o.ConsensusSequences) + len(o.SelectionScores)
	},
	"onOff": func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	},
}
