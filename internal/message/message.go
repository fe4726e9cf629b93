// Package message generates ready-to-send status updates from live
// project data.
package message

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
)

// Audience selects which template a message is generated from.
type Audience string

const (
	AudienceClient   Audience = "client"
	AudienceDesigner Audience = "designer"
)

// ParseAudience validates an audience string.
func ParseAudience(s string) (Audience, error) {
	switch Audience(s) {
	case AudienceClient, AudienceDesigner:
		return Audience(s), nil
	}
	return "", fmt.Errorf("unknown audience %q (want client or designer)", s)
}

// maxItems caps how many tasks each list in a message mentions.
const maxItems = 3

const clientTemplate = `Week {{.Week}} update

Done:
{{- if .Completed}}
{{- range .Completed}}
- {{.}}
{{- end}}
{{- else}}
- Building momentum on key tasks
{{- end}}

Next up:
{{- if .NextUp}}
{{- range .NextUp}}
- {{.}}
{{- end}}
{{- else}}
- All on track
{{- end}}

{{.Done}}/{{.Total}} tasks complete overall. Timeline is locked in.
`

const designerTemplate = `Morning! Week {{.Week}} check-in.

{{- if .NextUp}}
On your plate this week:
{{- range .NextUp}}
- {{.}}
{{- end}}
{{- else}}
Nothing blocking on your side this week.
{{- end}}
{{- if .OverdueCount}}

Heads up: {{.OverdueCount}} item(s) slipped past the deadline. Can we sync today?
{{- end}}

Shout if anything is unclear.
`

var templates = map[Audience]*template.Template{
	AudienceClient:   template.Must(template.New("client").Parse(clientTemplate)),
	AudienceDesigner: template.Must(template.New("designer").Parse(designerTemplate)),
}

// data is the view fed to message templates.
type data struct {
	Week         int
	Total        int
	Done         int
	Completed    []string
	NextUp       []string
	OverdueCount int
}

// Generate renders the update message for the given audience from the
// current week's tasks. Task titles pass through sanitize.Text so pasted
// control sequences cannot reach the recipient's terminal.
func Generate(doc *model.Document, aud Audience, now time.Time) (string, error) {
	tmpl, ok := templates[aud]
	if !ok {
		return "", fmt.Errorf("unknown audience %q", aud)
	}

	week := doc.Project.CurrentWeek
	weekTasks := doc.TasksForWeek(week)
	stats := report.TaskStats(doc.Tasks, now)

	d := data{
		Week:  week,
		Total: stats.Total,
		Done:  stats.Done,
	}

	for _, t := range report.SortForWeek(weekTasks, now) {
		if report.IsOverdue(t, now) {
			d.OverdueCount++
		}
		switch {
		case t.Done() && len(d.Completed) < maxItems:
			d.Completed = append(d.Completed, sanitize.Text(t.Title))
		case !t.Done() && len(d.NextUp) < maxItems:
			d.NextUp = append(d.NextUp, sanitize.Text(t.Title))
		}
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("rendering %s update: %w", aud, err)
	}
	return b.String(), nil
}
