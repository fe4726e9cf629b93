package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldevries/atelier/internal/cli"
	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/report"
	"github.com/ldevries/atelier/internal/sanitize"
	"github.com/ldevries/atelier/internal/validate"
)

var (
	flagTaskFilter   string
	flagTaskWeek     int
	flagTaskPriority string
	flagTaskDue      string
	flagTaskAssignee string
	flagTaskNotes    string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List and edit project tasks",
	RunE:  runTasksList,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksAdd,
}

var tasksStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Mark a task in progress",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(model.StatusInProgress),
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task done",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(model.StatusDone),
}

var tasksReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a done task",
	Args:  cobra.ExactArgs(1),
	RunE:  setStatusRun(model.StatusNotStarted),
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit task fields in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksEdit,
}

func init() {
	tasksCmd.PersistentFlags().StringVar(&flagTaskFilter, "filter", "all", "all|pending|done|overdue|week")

	for _, c := range []*cobra.Command{tasksAddCmd, tasksEditCmd} {
		c.Flags().IntVar(&flagTaskWeek, "week", 0, "Week number")
		c.Flags().StringVar(&flagTaskPriority, "priority", "", "low|medium|high")
		c.Flags().StringVar(&flagTaskDue, "due", "", "Due date (YYYY-MM-DD)")
		c.Flags().StringVar(&flagTaskAssignee, "assignee", "", "Assignee name")
		c.Flags().StringVar(&flagTaskNotes, "notes", "", "Free-form notes")
	}

	tasksCmd.AddCommand(tasksListCmd, tasksAddCmd, tasksStartCmd, tasksDoneCmd, tasksReopenCmd, tasksEditCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(_ *cobra.Command, _ []string) error {
	doc := loadDocument(openStore())
	now := time.Now()

	tasks := report.FilterTasks(doc.Tasks, flagTaskFilter, doc.Project.CurrentWeek, now)
	if len(tasks) == 0 {
		fmt.Println("\n  No tasks match the current filter.")
		return nil
	}

	stats := report.TaskStats(tasks, now)

	rows := make([][]string, 0, len(tasks))
	for _, t := range report.SortForWeek(tasks, now) {
		status := cli.FormatStatus(t.Status)
		if report.IsOverdue(t, now) {
			status = cli.WarnStyle.Render("! overdue")
		}
		rows = append(rows, []string{
			shortID(t.ID),
			cli.Truncate(sanitize.Text(t.Title), 44),
			fmt.Sprintf("%d", t.Week),
			status,
			string(t.Priority),
			cli.FormatDate(t.DueDate),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:     fmt.Sprintf("Tasks (%s) — %d/%d done", flagTaskFilter, stats.Done, stats.Total),
		Headers:   []string{"ID", "Task", "Week", "Status", "Priority", "Due"},
		Rows:      rows,
		AlignLeft: map[int]bool{1: true, 3: true, 4: true, 5: true},
	}))
	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	s := openStore()
	doc := loadDocument(s)
	now := time.Now()

	task := model.Task{
		ID:        model.NewID(),
		Title:     args[0],
		Week:      doc.Project.CurrentWeek,
		Status:    model.StatusNotStarted,
		Priority:  model.PriorityMedium,
		Assignee:  flagTaskAssignee,
		Notes:     flagTaskNotes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if cmd.Flags().Changed("week") {
		task.Week = flagTaskWeek
	}
	if flagTaskPriority != "" {
		p, err := model.ParsePriority(flagTaskPriority)
		if err != nil {
			return err
		}
		task.Priority = p
	}
	if flagTaskDue != "" {
		d, err := model.ParseDate(flagTaskDue)
		if err != nil {
			return err
		}
		task.DueDate = d
	}

	v := validate.Task(task, doc.Project)
	if err := v.Err(); err != nil {
		return err
	}
	printWarnings(v.Warnings())

	if similar := report.Suggest(task.Title, doc.Tasks, 3); len(similar) > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Note: similar existing tasks:\n")
		for _, title := range similar {
			fmt.Fprintf(os.Stderr, "    - %s\n", sanitize.Text(title))
		}
	}

	doc.Tasks = append(doc.Tasks, task)
	if err := saveDocument(s, doc, "task", task.ID, "add", task.Title); err != nil {
		return err
	}

	fmt.Printf("  Added task %s: %s\n", shortID(task.ID), sanitize.Text(task.Title))
	return nil
}

// setStatusRun builds a RunE that moves a task to the given status.
func setStatusRun(status model.Status) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		s := openStore()
		doc := loadDocument(s)

		task, err := findTask(doc, args[0])
		if err != nil {
			return err
		}

		task.Status = status
		task.UpdatedAt = time.Now()
		if err := saveDocument(s, doc, "task", task.ID, "status", string(status)); err != nil {
			return err
		}

		fmt.Printf("  %s: %s\n", status.Label(), sanitize.Text(task.Title))
		return nil
	}
}

func runTasksEdit(cmd *cobra.Command, args []string) error {
	s := openStore()
	doc := loadDocument(s)

	task, err := findTask(doc, args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("week") {
		task.Week = flagTaskWeek
	}
	if flagTaskPriority != "" {
		p, err := model.ParsePriority(flagTaskPriority)
		if err != nil {
			return err
		}
		task.Priority = p
	}
	if flagTaskDue != "" {
		d, err := model.ParseDate(flagTaskDue)
		if err != nil {
			return err
		}
		task.DueDate = d
	}
	if cmd.Flags().Changed("assignee") {
		task.Assignee = flagTaskAssignee
	}
	if cmd.Flags().Changed("notes") {
		task.Notes = flagTaskNotes
	}

	v := validate.Task(*task, doc.Project)
	if err := v.Err(); err != nil {
		return err
	}
	printWarnings(v.Warnings())

	task.UpdatedAt = time.Now()
	if err := saveDocument(s, doc, "task", task.ID, "update", task.Title); err != nil {
		return err
	}

	fmt.Printf("  Updated %s: %s\n", shortID(task.ID), sanitize.Text(task.Title))
	return nil
}

// findTask resolves a task by full ID or unique short prefix.
func findTask(doc *model.Document, id string) (*model.Task, error) {
	if t := doc.Task(id); t != nil {
		return t, nil
	}

	var match *model.Task
	for i := range doc.Tasks {
		if len(id) >= 4 && len(doc.Tasks[i].ID) >= len(id) && doc.Tasks[i].ID[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("task ID %q is ambiguous", id)
			}
			match = &doc.Tasks[i]
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no task with ID %q", id)
	}
	return match, nil
}

// shortID abbreviates a ULID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printWarnings(warnings []string) {
	if flagQuiet {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "  Warning: %s\n", w)
	}
}
