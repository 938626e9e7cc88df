package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"mecontent-cli/internal/model"
	"mecontent-cli/internal/mutate"
	"mecontent-cli/internal/query"
	"mecontent-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run starts the interactive organizer over an already-loaded snapshot.
func Run(s store.Store, db *store.DB) error {
	applyColorProfilePreference()
	m := newAppModel(s, db)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type view int

const (
	viewDashboard view = iota
	viewVault
	viewPlanner
	viewCategories
)

var viewNames = [4]string{"Dashboard", "Vault", "Planner", "Categories"}

type reloadTickMsg struct{}

func tickReload() tea.Cmd {
	return tea.Tick(750*time.Millisecond, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	view view

	today string

	remindersList list.Model
	planList      list.Model
	dashFocus     int // 0=reminders 1=plan

	searchInput    textinput.Model
	searchFocused  bool
	vaultList      list.Model
	categoryFilter int // index into vaultCategoryChoices()
	typeFilter     int // index into vaultTypeChoices

	board        boardModel
	showCalendar bool
	calendarList list.Model

	categoriesList list.Model
	addInput       textinput.Model
	addingCategory bool

	capture *captureModel

	flash string

	lastStateModTime time.Time
}

var vaultTypeChoices = []string{"", string(model.TypeContent), string(model.TypeScript), string(model.TypeReminder)}

func newAppModel(s store.Store, db *store.DB) appModel {
	m := appModel{
		store: s,
		db:    db,
		view:  viewDashboard,
		today: time.Now().Format("2006-01-02"),
	}

	m.remindersList = newList("Reminders today")
	m.planList = newList("Publishing today")
	m.vaultList = newList("Vault")
	m.calendarList = newList("Calendar")
	m.categoriesList = newList("Categories")

	m.searchInput = textinput.New()
	m.searchInput.Prompt = "/ "
	m.searchInput.Placeholder = "search title, text, tags"

	m.addInput = textinput.New()
	m.addInput.Prompt = "+ "
	m.addInput.Placeholder = "new category name"

	m.refreshAll()
	m.captureStateModTime()
	return m
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case reloadTickMsg:
		if m.stateChanged() {
			m.reloadFromDisk()
		}
		return m, tickReload()

	case captureDoneMsg:
		res := mutate.CreateItem(m.db, msg.input)
		if err := m.saveWithEvent("thought.create", res.Item.ID, res.EventPayload); err != nil {
			m.flash = err.Error()
		} else {
			m.flash = "created " + res.Item.ID
		}
		m.capture = nil
		m.refreshAll()
		return m, nil

	case captureCancelMsg:
		m.capture = nil
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.capture != nil {
		c, cmd := m.capture.Update(msg)
		m.capture = &c
		return m, cmd
	}

	if m.searchFocused {
		switch msg.String() {
		case "esc", "enter":
			m.searchFocused = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.refreshVault()
		return m, cmd
	}

	if m.addingCategory {
		switch msg.String() {
		case "esc":
			m.addingCategory = false
			m.addInput.Blur()
			m.addInput.SetValue("")
			return m, nil
		case "enter":
			res := mutate.AddCategory(m.db, m.addInput.Value())
			if res.Changed {
				if err := m.saveWithEvent("category.add", "", res.EventPayload); err != nil {
					m.flash = err.Error()
				}
			}
			m.addingCategory = false
			m.addInput.Blur()
			m.addInput.SetValue("")
			m.refreshAll()
			return m, nil
		}
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "1":
		m.view = viewDashboard
		return m, nil
	case "2":
		m.view = viewVault
		return m, nil
	case "3":
		m.view = viewPlanner
		return m, nil
	case "4":
		m.view = viewCategories
		return m, nil
	case "n":
		c := newCaptureModel(m.db.Categories)
		m.capture = &c
		return m, textinput.Blink
	case "r":
		m.reloadFromDisk()
		return m, nil
	}

	switch m.view {
	case viewDashboard:
		return m.updateDashboard(msg)
	case viewVault:
		return m.updateVault(msg)
	case viewPlanner:
		return m.updatePlanner(msg)
	case viewCategories:
		return m.updateCategories(msg)
	}
	return m, nil
}

func (m appModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.dashFocus = 1 - m.dashFocus
		return m, nil
	case "s":
		if it, ok := m.dashboardSelected(); ok {
			m.cycleStatus(it.ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.dashFocus == 0 {
		m.remindersList, cmd = m.remindersList.Update(msg)
	} else {
		m.planList, cmd = m.planList.Update(msg)
	}
	return m, cmd
}

func (m *appModel) dashboardSelected() (model.Item, bool) {
	l := &m.remindersList
	if m.dashFocus == 1 {
		l = &m.planList
	}
	ti, ok := l.SelectedItem().(thoughtItem)
	return ti.item, ok
}

func (m appModel) updateVault(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.categoryFilter = (m.categoryFilter + 1) % len(m.vaultCategoryChoices())
		m.refreshVault()
		return m, nil
	case "t":
		m.typeFilter = (m.typeFilter + 1) % len(vaultTypeChoices)
		m.refreshVault()
		return m, nil
	case "s":
		if ti, ok := m.vaultList.SelectedItem().(thoughtItem); ok {
			m.cycleStatus(ti.item.ID)
		}
		return m, nil
	case "d":
		if ti, ok := m.vaultList.SelectedItem().(thoughtItem); ok {
			res := mutate.DeleteItem(m.db, ti.item.ID)
			if res.Changed {
				if err := m.saveWithEvent("thought.delete", ti.item.ID, res.EventPayload); err != nil {
					m.flash = err.Error()
				} else {
					m.flash = "deleted " + ti.item.ID
				}
			}
			m.refreshAll()
		}
		return m, nil
	case "y":
		if ti, ok := m.vaultList.SelectedItem().(thoughtItem); ok {
			if err := copyToClipboard(ti.item.ID); err != nil {
				m.flash = "clipboard: " + err.Error()
			} else {
				m.flash = "copied " + ti.item.ID
			}
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.vaultList, cmd = m.vaultList.Update(msg)
	return m, cmd
}

func (m appModel) updatePlanner(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "c" {
		m.showCalendar = !m.showCalendar
		return m, nil
	}
	if m.showCalendar {
		var cmd tea.Cmd
		m.calendarList, cmd = m.calendarList.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "h", "left":
		m.board.moveCol(-1)
	case "l", "right":
		m.board.moveCol(1)
	case "k", "up":
		m.board.moveRow(-1)
	case "j", "down":
		m.board.moveRow(1)
	case "s":
		if it, ok := m.board.selected(); ok {
			m.cycleStatus(it.ID)
		}
	}
	return m, nil
}

func (m appModel) updateCategories(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.addingCategory = true
		m.addInput.Focus()
		return m, textinput.Blink
	case "d":
		if ci, ok := m.categoriesList.SelectedItem().(categoryItem); ok {
			res := mutate.DeleteCategory(m.db, ci.name)
			if res.Changed {
				if err := m.saveWithEvent("category.delete", "", res.EventPayload); err != nil {
					m.flash = err.Error()
				} else {
					m.flash = "removed " + ci.name + " (thoughts keep their label)"
				}
			}
			m.refreshAll()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.categoriesList, cmd = m.categoriesList.Update(msg)
	return m, cmd
}

// cycleStatus advances idea -> draft -> done -> idea.
func (m *appModel) cycleStatus(id string) {
	it, ok := m.db.FindItem(id)
	if !ok {
		return
	}
	var next model.Status
	switch model.NormalizeStatus(string(it.Status)) {
	case model.StatusIdea:
		next = model.StatusDraft
	case model.StatusDraft:
		next = model.StatusDone
	default:
		next = model.StatusIdea
	}
	res, err := mutate.SetStatus(m.db, id, string(next))
	if err != nil || !res.Changed {
		return
	}
	if err := m.saveWithEvent("thought.set_status", id, res.EventPayload); err != nil {
		m.flash = err.Error()
		return
	}
	m.flash = fmt.Sprintf("%s → %s", id, next)
	m.refreshAll()
}

func (m *appModel) saveWithEvent(typ, entityID string, payload any) error {
	if err := m.store.Save(m.db); err != nil {
		return err
	}
	if payload != nil {
		if err := m.store.AppendEvent(context.Background(), typ, entityID, payload); err != nil {
			return err
		}
	}
	m.captureStateModTime()
	return nil
}

func (m *appModel) vaultCategoryChoices() []string {
	return append([]string{""}, m.db.Categories...)
}

func (m *appModel) refreshAll() {
	m.refreshDashboard()
	m.refreshVault()
	m.refreshPlanner()
	m.refreshCategories()
}

func (m *appModel) refreshDashboard() {
	setThoughts(&m.remindersList, query.RemindersOn(m.db, m.today))
	setThoughts(&m.planList, query.PublishPlanOn(m.db, m.today))
}

func (m *appModel) refreshVault() {
	cats := m.vaultCategoryChoices()
	if m.categoryFilter >= len(cats) {
		m.categoryFilter = 0
	}
	matches := query.Search(m.db,
		m.searchInput.Value(),
		cats[m.categoryFilter],
		vaultTypeChoices[m.typeFilter])
	setThoughts(&m.vaultList, matches)
}

func (m *appModel) refreshPlanner() {
	m.board.refresh(query.BucketByStatus(m.db))
	setThoughts(&m.calendarList, query.CalendarRange(m.db, "", ""))
}

func (m *appModel) refreshCategories() {
	counts := map[string]int{}
	for _, it := range m.db.Items {
		counts[it.Category]++
	}
	var items []list.Item
	for _, name := range m.db.Categories {
		items = append(items, categoryItem{name: name, count: counts[name]})
	}
	m.categoriesList.SetItems(items)
}

func setThoughts(l *list.Model, its []model.Item) {
	curID := ""
	if ti, ok := l.SelectedItem().(thoughtItem); ok {
		curID = ti.item.ID
	}
	items := make([]list.Item, 0, len(its))
	for _, it := range its {
		items = append(items, thoughtItem{item: it})
	}
	l.SetItems(items)
	if curID != "" {
		selectThoughtByID(l, curID)
	}
}

func (m *appModel) captureStateModTime() {
	if fi, err := os.Stat(m.store.StatePath()); err == nil {
		m.lastStateModTime = fi.ModTime()
	}
}

func (m *appModel) stateChanged() bool {
	fi, err := os.Stat(m.store.StatePath())
	if err != nil {
		return false
	}
	return fi.ModTime().After(m.lastStateModTime)
}

func (m *appModel) reloadFromDisk() {
	db, err := m.store.Load()
	if err != nil {
		m.flash = "reload: " + err.Error()
		return
	}
	m.db = db
	m.captureStateModTime()
	m.refreshAll()
}

func (m *appModel) resizeLists() {
	h := m.height - 8
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.remindersList.SetSize(w/2, h)
	m.planList.SetSize(w-w/2, h)
	m.vaultList.SetSize(w/2, h)
	m.calendarList.SetSize(w, h)
	m.categoriesList.SetSize(w, h)
}

func (m appModel) View() string {
	var tabs []string
	for i, name := range viewNames {
		tabs = append(tabs, styleTab(view(i) == m.view).Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	header := strings.Join(tabs, "  ")

	var body string
	switch m.view {
	case viewDashboard:
		body = m.viewDashboard()
	case viewVault:
		body = m.viewVault()
	case viewPlanner:
		body = m.viewPlanner()
	case viewCategories:
		body = m.viewCategories()
	}

	if m.capture != nil {
		body = m.capture.View(m.width)
	}

	footer := styleMuted().Render(m.footerHelp())
	if m.flash != "" {
		footer = m.flash + "\n" + footer
	}

	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m appModel) footerHelp() string {
	if m.capture != nil {
		return "tab: next field  ctrl+s: save  esc: cancel"
	}
	common := "1-4: views  n: new  r: reload  q: quit"
	switch m.view {
	case viewDashboard:
		return "tab: switch panel  s: cycle status  " + common
	case viewVault:
		return "/: search  f: category  t: type  s: status  d: delete  y: copy id  " + common
	case viewPlanner:
		if m.showCalendar {
			return "c: board  " + common
		}
		return "h/l: column  j/k: row  s: move status  c: calendar  " + common
	case viewCategories:
		return "a: add  d: remove  " + common
	}
	return common
}

func (m appModel) viewDashboard() string {
	left := m.remindersList.View()
	right := m.planList.View()
	focusBar := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(colorAccent)
	if m.dashFocus == 0 {
		left = focusBar.Render(left)
	} else {
		right = focusBar.Render(right)
	}
	date := styleMuted().Render(m.today)
	return date + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m appModel) viewVault() string {
	top := m.searchInput.View()
	filters := m.filterLine()
	listView := m.vaultList.View()

	detail := ""
	if ti, ok := m.vaultList.SelectedItem().(thoughtItem); ok {
		dw := m.width - m.width/2 - 2
		detail = renderDetail(ti.item, dw)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, listView, "  ", detail)
	return top + "\n" + filters + "\n" + body
}

func (m appModel) filterLine() string {
	cats := m.vaultCategoryChoices()
	cat := cats[m.categoryFilter]
	if cat == "" {
		cat = "all"
	}
	typ := vaultTypeChoices[m.typeFilter]
	if typ == "" {
		typ = "all"
	}
	return styleMuted().Render(fmt.Sprintf("category: %s  type: %s", cat, typ))
}

func (m appModel) viewPlanner() string {
	if m.showCalendar {
		return m.calendarList.View()
	}
	return m.board.view(m.width, m.height-6)
}

func (m appModel) viewCategories() string {
	body := m.categoriesList.View()
	if m.addingCategory {
		return m.addInput.View() + "\n" + body
	}
	return body
}
