// Package tui provides the interactive Bubble Tea dashboard for atelier.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/store"
	"github.com/ldevries/atelier/internal/tui/components"
	"github.com/ldevries/atelier/internal/tui/theme"
)

// docLoadedMsg is sent when the document finishes loading.
type docLoadedMsg struct {
	result store.LoadResult
	err    error
}

// toastClearMsg expires the status-bar toast.
type toastClearMsg struct{}

// formKind identifies which add/edit form is open.
type formKind int

const (
	formNone formKind = iota
	formTask
	formPayment
	formContact
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	toastDuration    = 3 * time.Second
)

// taskFilters cycles through the tasks tab filters with 'v'.
var taskFilters = []string{"all", "pending", "done", "overdue", "week"}

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	record func(entity, entityID, action, detail string)

	doc      *model.Document
	warnings []string
	loaded   bool
	loadErr  error

	// Pre-computed from the document
	stats         model.TaskStats
	finances      model.FinancialSummary
	budget        model.BudgetStatus
	weeks         []model.WeekGroup
	notifications []model.Notification

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	toast     string

	// Per-tab state
	taskCursor    int
	taskFilterIdx int
	payCursor     int

	// Modal form
	form     *huh.Form
	formKind formKind
	taskVals taskFormValues
	payVals  paymentFormValues
	ctVals   contactFormValues
}

// NewApp creates the TUI app model. record is called after each saved
// mutation and may be nil.
func NewApp(s *store.Store, record func(entity, entityID, action, detail string)) App {
	if record == nil {
		record = func(string, string, string, string) {}
	}
	return App{store: s, record: record}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadDocCmd(a.store)
}

func loadDocCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		result, err := s.Load()
		return docLoadedMsg{result: result, err: err}
	}
}

func toastCmd() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// recompute refreshes all derived values after a mutation or reload.
func (a *App) recompute() {
	now := time.Now()
	a.stats = report.TaskStats(a.doc.Tasks, now)
	a.finances = report.FinancialSummary(a.doc.Payments)
	a.budget = report.BudgetStatus(a.finances, a.doc.Project.BudgetTotal)
	a.weeks = report.WeekGroups(a.doc.Tasks, a.doc.Project.TotalWeeks, now)
	a.notifications = report.Notifications(a.doc, now)

	if a.taskCursor >= len(a.visibleTasks()) {
		a.taskCursor = len(a.visibleTasks()) - 1
	}
	if a.taskCursor < 0 {
		a.taskCursor = 0
	}
	if a.payCursor >= len(a.doc.Payments) {
		a.payCursor = len(a.doc.Payments) - 1
	}
	if a.payCursor < 0 {
		a.payCursor = 0
	}
}

// visibleTasks returns the tasks tab's current filtered, sorted view.
func (a App) visibleTasks() []model.Task {
	now := time.Now()
	filtered := report.FilterTasks(a.doc.Tasks, taskFilters[a.taskFilterIdx], a.doc.Project.CurrentWeek, now)
	return report.SortForWeek(filtered, now)
}

// saveDoc persists the document, journals, and shows a toast.
func (a *App) saveDoc(entity, entityID, action, detail, toast string) tea.Cmd {
	if err := a.store.Save(a.doc); err != nil {
		a.toast = fmt.Sprintf("Save failed: %v", err)
		return toastCmd()
	}
	a.record(entity, entityID, action, detail)
	a.recompute()
	a.toast = toast
	return toastCmd()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case docLoadedMsg:
		a.doc = msg.result.Doc
		a.warnings = msg.result.Warnings
		a.loadErr = msg.err
		a.loaded = true
		a.recompute()
		return a, nil

	case toastClearMsg:
		a.toast = ""
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}

		// An open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			return a, loadDocCmd(a.store)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "a":
			return a.openAddForm()
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabTasks:
			return a.updateTasksTab(key)
		case tabFinances:
			return a.updateFinancesTab(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabTasks
	tabFinances
	tabTimeline
	tabContacts
)

func (a App) updateTasksTab(key string) (tea.Model, tea.Cmd) {
	visible := a.visibleTasks()

	switch key {
	case "j", "down":
		if a.taskCursor < len(visible)-1 {
			a.taskCursor++
		}
	case "k", "up":
		if a.taskCursor > 0 {
			a.taskCursor--
		}
	case "g":
		a.taskCursor = 0
	case "G":
		a.taskCursor = len(visible) - 1
		if a.taskCursor < 0 {
			a.taskCursor = 0
		}
	case "v":
		a.taskFilterIdx = (a.taskFilterIdx + 1) % len(taskFilters)
		a.taskCursor = 0
	case "enter", " ":
		if a.taskCursor < len(visible) {
			task := a.doc.Task(visible[a.taskCursor].ID)
			if task == nil {
				break
			}
			task.Status = nextStatus(task.Status)
			task.UpdatedAt = time.Now()
			return a, a.saveDoc("task", task.ID, "status", string(task.Status),
				fmt.Sprintf("%s: %s", task.Status.Label(), truncateToast(task.Title)))
		}
	}
	return a, nil
}

func (a App) updateFinancesTab(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.payCursor < len(a.doc.Payments)-1 {
			a.payCursor++
		}
	case "k", "up":
		if a.payCursor > 0 {
			a.payCursor--
		}
	case "enter", " ":
		if a.payCursor < len(a.doc.Payments) {
			p := &a.doc.Payments[a.payCursor]
			p.Paid = !p.Paid
			action, toast := "pay", "Marked paid: "+truncateToast(p.Payee)
			if !p.Paid {
				action, toast = "unpay", "Marked unpaid: "+truncateToast(p.Payee)
			}
			return a, a.saveDoc("payment", p.ID, action, p.Payee, toast)
		}
	}
	return a, nil
}

// nextStatus advances the task lifecycle, wrapping done back to the start
// so a completed task can be reopened with the same key.
func nextStatus(s model.Status) model.Status {
	switch s {
	case model.StatusNotStarted:
		return model.StatusInProgress
	case model.StatusInProgress:
		return model.StatusDone
	default:
		return model.StatusNotStarted
	}
}

// truncateToast neutralizes and shortens user text for the status bar.
func truncateToast(s string) string {
	return cli.Truncate(sanitize.Text(s), 30)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols). atelier needs at least %d.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return "\n  Loading project…\n"
	}
	if a.form != nil {
		return a.form.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverviewTab(cw))
	case tabTasks:
		b.WriteString(a.renderTasksTab(cw))
	case tabFinances:
		b.WriteString(a.renderFinancesTab(cw))
	case tabTimeline:
		b.WriteString(a.renderTimelineTab(cw))
	case tabContacts:
		b.WriteString(a.renderContactsTab(cw))
	}

	content := b.String()

	// Pin the status bar to the bottom
	contentHeight := lipgloss.Height(content)
	gap := a.height - contentHeight - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}

	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
	if a.loadErr != nil {
		content += warnStyle.Render(fmt.Sprintf(" Document was unreadable; started fresh (%v)", a.loadErr)) + "\n"
	}

	content += components.RenderStatusBar(a.width, a.toast)
	return content
}

func (a App) viewHelp() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	key := lipgloss.NewStyle().Foreground(t.TextPrimary)
	desc := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ k, d string }{
		{"o t f l c", "switch tabs (also left/right)"},
		{"j k", "move cursor"},
		{"enter/space", "advance task status / toggle payment paid"},
		{"a", "add task, payment, or contact (per tab)"},
		{"v", "cycle task filter"},
		{"r", "reload from disk"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(title.Render("Keys"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n", key.Render(fmt.Sprintf("%-12s", l.k)), desc.Render(l.d)))
	}
	b.WriteString("\n")
	b.WriteString(desc.Render("  Press any key to close."))
	return b.String()
}
