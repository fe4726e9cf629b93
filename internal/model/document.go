package model

// SchemaVersion identifies the current document layout.
const SchemaVersion = 1

// Project holds the scalar settings for the whole project. Task week
// numbers reference [1, TotalWeeks] as a soft, unenforced range.
type Project struct {
	Name        string  `json:"name"`
	CurrentWeek int     `json:"current_week"`
	TotalWeeks  int     `json:"total_weeks"`
	LaunchDate  Date    `json:"launch_date,omitempty"`
	BudgetTotal float64 `json:"budget_total"`
	Currency    string  `json:"currency,omitempty"`
}

// Document is the single persisted structure holding all project state.
// It is passed explicitly between load, save, and aggregation calls;
// there is no ambient singleton.
type Document struct {
	SchemaVersion int       `json:"schema_version"`
	Project       Project   `json:"project"`
	Tasks         []Task    `json:"tasks"`
	Payments      []Payment `json:"payments"`
	Contacts      []Contact `json:"contacts"`
}

// Task returns a pointer to the task with the given ID, or nil.
func (d *Document) Task(id string) *Task {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return &d.Tasks[i]
		}
	}
	return nil
}

// Payment returns a pointer to the payment with the given ID, or nil.
func (d *Document) Payment(id string) *Payment {
	for i := range d.Payments {
		if d.Payments[i].ID == id {
			return &d.Payments[i]
		}
	}
	return nil
}

// TasksForWeek returns the tasks scheduled in the given week.
func (d *Document) TasksForWeek(week int) []Task {
	var out []Task
	for _, t := range d.Tasks {
		if t.Week == week {
			out = append(out, t)
		}
	}
	return out
}
