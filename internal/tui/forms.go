package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ldevries/atelier/internal/model"
	"github.com/ldevries/atelier/internal/validate"
)

type taskFormValues struct {
	title    string
	week     string
	priority string
	due      string
	assignee string
	notes    string
}

type paymentFormValues struct {
	payee    string
	amount   string
	category string
	due      string
	paid     bool
}

type contactFormValues struct {
	name  string
	role  string
	email string
	phone string
	notes string
}

// openAddForm opens the add form for the active tab. Overview and
// timeline default to adding a task.
func (a App) openAddForm() (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabFinances:
		a.formKind = formPayment
		a.payVals = paymentFormValues{}
		a.form = a.buildPaymentForm()
	case tabContacts:
		a.formKind = formContact
		a.ctVals = contactFormValues{}
		a.form = a.buildContactForm()
	default:
		a.formKind = formTask
		a.taskVals = taskFormValues{
			week:     strconv.Itoa(a.doc.Project.CurrentWeek),
			priority: string(model.PriorityMedium),
		}
		a.form = a.buildTaskForm()
	}
	a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	return a, a.form.Init()
}

func requiredText(field string) func(string) error {
	return func(s string) error {
		if err := validate.Required(field, s); err != nil {
			return err
		}
		if err := validate.Text(field, s); err != nil {
			return err
		}
		return nil
	}
}

func optionalText(field string) func(string) error {
	return func(s string) error {
		if err := validate.Text(field, s); err != nil {
			return err
		}
		return nil
	}
}

func validDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := model.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (a *App) buildTaskForm() *huh.Form {
	v := &a.taskVals
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&v.title).
				Validate(requiredText("title")),
			huh.NewInput().
				Title("Week").
				Value(&v.week).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("week must be a positive number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(model.PriorityLow)),
					huh.NewOption("Medium", string(model.PriorityMedium)),
					huh.NewOption("High", string(model.PriorityHigh)),
				).
				Value(&v.priority),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&v.due).
				Validate(validDate),
			huh.NewInput().
				Title("Assignee").
				Value(&v.assignee).
				Validate(optionalText("assignee")),
			huh.NewText().
				Title("Notes").
				Value(&v.notes).
				Lines(3),
		),
	).WithTheme(formTheme()).WithShowHelp(true)
}

func (a *App) buildPaymentForm() *huh.Form {
	v := &a.payVals
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Payee").
				Value(&v.payee).
				Validate(requiredText("payee")),
			huh.NewInput().
				Title("Amount").
				Value(&v.amount).
				Validate(func(s string) error {
					amt, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("amount must be a number")
					}
					if err := validate.Amount("amount", amt); err != nil {
						return err
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Placeholder("design, print, venue…").
				Value(&v.category).
				Validate(optionalText("category")),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&v.due).
				Validate(validDate),
			huh.NewConfirm().
				Title("Already paid?").
				Value(&v.paid),
		),
	).WithTheme(formTheme()).WithShowHelp(true)
}

func (a *App) buildContactForm() *huh.Form {
	v := &a.ctVals
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&v.name).
				Validate(requiredText("name")),
			huh.NewInput().
				Title("Role").
				Value(&v.role).
				Validate(optionalText("role")),
			huh.NewInput().
				Title("Email").
				Value(&v.email).
				Validate(optionalText("email")),
			huh.NewInput().
				Title("Phone").
				Value(&v.phone).
				Validate(optionalText("phone")),
			huh.NewText().
				Title("Notes").
				Value(&v.notes).
				Lines(3),
		),
	).WithTheme(formTheme()).WithShowHelp(true)
}

// updateForm routes messages to the open form and commits on completion.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		return a.commitForm(kind)
	case huh.StateAborted:
		a.form = nil
		a.formKind = formNone
		return a, nil
	}
	return a, cmd
}

func (a App) commitForm(kind formKind) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch kind {
	case formTask:
		v := a.taskVals
		week, _ := strconv.Atoi(strings.TrimSpace(v.week))
		due, _ := model.ParseDate(v.due)
		task := model.Task{
			ID:        model.NewID(),
			Title:     strings.TrimSpace(v.title),
			Week:      week,
			Status:    model.StatusNotStarted,
			Priority:  model.Priority(v.priority),
			Assignee:  strings.TrimSpace(v.assignee),
			DueDate:   due,
			Notes:     strings.TrimSpace(v.notes),
			CreatedAt: now,
			UpdatedAt: now,
		}
		a.doc.Tasks = append(a.doc.Tasks, task)
		return a, a.saveDoc("task", task.ID, "add", task.Title,
			"Added task: "+truncateToast(task.Title))

	case formPayment:
		v := a.payVals
		amount, _ := strconv.ParseFloat(strings.TrimSpace(v.amount), 64)
		due, _ := model.ParseDate(v.due)
		payment := model.Payment{
			ID:       model.NewID(),
			Payee:    strings.TrimSpace(v.payee),
			Category: strings.TrimSpace(v.category),
			Amount:   amount,
			Paid:     v.paid,
			DueDate:  due,
		}
		a.doc.Payments = append(a.doc.Payments, payment)
		return a, a.saveDoc("payment", payment.ID, "add", payment.Payee,
			"Added payment: "+truncateToast(payment.Payee))

	case formContact:
		v := a.ctVals
		contact := model.Contact{
			ID:    model.NewID(),
			Name:  strings.TrimSpace(v.name),
			Role:  strings.TrimSpace(v.role),
			Email: strings.TrimSpace(v.email),
			Phone: strings.TrimSpace(v.phone),
			Notes: strings.TrimSpace(v.notes),
		}
		a.doc.Contacts = append(a.doc.Contacts, contact)
		return a, a.saveDoc("contact", contact.ID, "add", contact.Name,
			"Added contact: "+truncateToast(contact.Name))
	}
	return a, nil
}
