package tui

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/B1NYL/Promp-E-sub000/internal/aiclient"
	"github.com/B1NYL/Promp-E-sub000/internal/canvas"
	"github.com/B1NYL/Promp-E-sub000/internal/engine"
	"github.com/B1NYL/Promp-E-sub000/internal/stage"
	"github.com/B1NYL/Promp-E-sub000/internal/ui"
)

// Canvas cells render two vertical pixels each ("▀"), so the buffer is
// canvasCols wide and 2*canvasRows tall.
const (
	canvasCols = 48
	canvasRows = 16
)

type studioModel struct {
	ctx context.Context
	svc *engine.Service
	ai  *aiclient.Client

	session *stage.Session
	surface *canvas.Surface

	input   textarea.Model
	spin    spinner.Model
	width   int
	height  int
	busy    bool
	lastLog string
	err     error

	hints    *aiclient.HintsResult
	imageURL string

	// hydrated guards handoff hydration: at most once per stage mount,
	// and only after the surface exists at its measured size.
	hydrated bool
}

type hintsMsg struct {
	res *aiclient.HintsResult
	err error
}

type generatedMsg struct {
	res *aiclient.GenerateImageResult
	err error
}

type advancedMsg struct {
	res *engine.LessonResult
	err error
}

func newStudioModel(ctx context.Context, svc *engine.Service, ai *aiclient.Client) studioModel {
	input := textarea.New()
	input.Placeholder = "Write here…"
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := studioModel{
		ctx:     ctx,
		svc:     svc,
		ai:      ai,
		session: stage.NewSession(),
		input:   input,
		spin:    spin,
		lastLog: "Welcome. Draw with the mouse, write below.",
	}
	m.mountStage()
	return m
}

// mountStage allocates a fresh surface for the active stage and hydrates the
// pending handoff payload, if any, exactly once.
func (m *studioModel) mountStage() {
	m.hydrated = false
	s, err := canvas.NewSurface(canvasCols, canvasRows*2)
	if err != nil {
		m.err = err
		return
	}
	m.surface = s
	m.hydrate()
}

func (m *studioModel) hydrate() {
	if m.hydrated || m.surface == nil {
		return
	}
	m.hydrated = true
	p, ok := m.session.TakePayload()
	if !ok {
		return
	}
	m.input.SetValue(p.PromptText())
	if !p.HasSnapshot() {
		return
	}
	img, err := canvas.DecodeSnapshot(p.Snapshot())
	if err != nil {
		m.lastLog = "Could not restore drawing: " + err.Error()
		return
	}
	if err := m.surface.LoadImage(img); err != nil {
		m.lastLog = "Could not restore drawing: " + err.Error()
	}
}

func (m studioModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m studioModel) hintsCmd() tea.Cmd {
	prompt := m.input.Value()
	return func() tea.Msg {
		res, err := m.ai.GenerateHints(m.ctx, prompt)
		return hintsMsg{res: res, err: err}
	}
}

func (m studioModel) generateCmd() tea.Cmd {
	prompt := m.input.Value()
	snap, err := m.surface.Snapshot()
	if err != nil {
		snap = nil
	}
	return func() tea.Msg {
		res, err := m.ai.GenerateImage(m.ctx, prompt, snap)
		return generatedMsg{res: res, err: err}
	}
}

func (m studioModel) advanceCmd() tea.Cmd {
	cfg := m.session.Stage()
	return func() tea.Msg {
		res, err := m.svc.CompleteLesson(m.ctx, "stage_"+string(cfg.ID), cfg.RewardXP)
		return advancedMsg{res: res, err: err}
	}
}

func (m studioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.SetWidth(min(msg.Width-4, 72))
		m.input.SetHeight(4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case hintsMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Hints failed: " + msg.err.Error() + " (press ctrl+h to retry)"
			return m, nil
		}
		m.hints = msg.res
		m.lastLog = "Hints ready."
		return m, nil

	case generatedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Generation failed: " + msg.err.Error() + " (press ctrl+g to retry)"
			return m, nil
		}
		m.imageURL = msg.res.ImageURL
		m.svc.Gallery().Add(m.ctx, m.input.Value(), msg.res.ImageURL)
		m.svc.CompleteMissionByEvent(m.ctx, "daily_creation")
		m.svc.CompleteMissionByEvent(m.ctx, "ach_first_creation")
		m.lastLog = "Image ready: " + msg.res.ImageURL
		return m, nil

	case advancedMsg:
		m.busy = false
		if msg.err != nil {
			m.lastLog = "Stage completion failed: " + msg.err.Error()
			return m, nil
		}
		snap, err := m.surface.Snapshot()
		if err != nil {
			snap = nil
		}
		if err := m.session.Advance(m.input.Value(), snap); err != nil {
			m.lastLog = "Workflow finished. Press ctrl+g to generate, q to leave."
			return m, nil
		}
		m.mountStage()
		note := fmt.Sprintf("+%d XP", msg.res.XPAwarded)
		if msg.res.LevelUp {
			note += "  " + ui.BadgeLevelUp
		}
		m.lastLog = fmt.Sprintf("Stage done (%s). Now: %s", note, m.session.Stage().Title)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, tea.Quit
		case "tab":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.lastLog = "Finishing stage…"
			return m, m.advanceCmd()
		case "shift+tab":
			if m.session.Back() {
				m.mountStage()
				m.lastLog = "Back to " + m.session.Stage().Title
			}
			return m, nil
		case "ctrl+h":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.lastLog = "Fetching hints…"
			return m, m.hintsCmd()
		case "ctrl+g":
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.lastLog = "Generating image…"
			return m, m.generateCmd()
		case "ctrl+e":
			t := m.surface.CurrentTool()
			t.Erase = !t.Erase
			m.surface.SetTool(t)
			if t.Erase {
				m.lastLog = "Eraser on."
			} else {
				m.lastLog = "Pen on."
			}
			return m, nil
		case "ctrl+x":
			m.surface.Clear(m.session.Stage().Clear == stage.ClearSeed)
			m.lastLog = "Canvas cleared."
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.SetText(m.input.Value())
		return m, cmd
	}

	return m, nil
}

// canvasOrigin is where the canvas panel's content starts on screen.
func (m studioModel) canvasOrigin() (int, int) {
	// heading + blank line, plus the panel border/padding.
	return 2, 3
}

func (m studioModel) updateMouse(msg tea.MouseMsg) studioModel {
	ox, oy := m.canvasOrigin()
	col := msg.X - ox
	row := msg.Y - oy
	// Each cell covers two vertical pixels; aim at the cell's top pixel.
	p := image.Point{X: col, Y: row * 2}
	inCanvas := col >= 0 && col < canvasCols && row >= 0 && row < canvasRows

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inCanvas {
			m.surface.BeginStroke(p)
		}
	case tea.MouseActionMotion:
		// ExtendStroke is a no-op while idle, so motion with no prior
		// press draws nothing.
		m.surface.ExtendStroke(p)
	case tea.MouseActionRelease:
		m.surface.EndStroke()
	}
	return m
}

func (m studioModel) View() string {
	if m.err != nil {
		return ui.Bad.Render(ui.IconError+" "+m.err.Error()) + "\n"
	}

	cfg := m.session.Stage()
	var b strings.Builder

	title := fmt.Sprintf("%s  (%d/%d)", cfg.Title, m.session.Index()+1, m.session.Total())
	b.WriteString(ui.Heading(ui.IconBrush, title))
	b.WriteString("\n\n")
	b.WriteString(ui.Panel.Render(renderSurface(m.surface)))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(cfg.Instruction))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.hints != nil {
		b.WriteString(ui.H2.Render("Hints") + " " +
			ui.Muted.Render(strings.Join(m.hints.Adjectives, ", ")+" · "+
				strings.Join(m.hints.Verbs, ", ")+" · "+
				strings.Join(m.hints.Styles, ", ")))
		b.WriteString("\n")
	}
	if m.imageURL != "" {
		b.WriteString(ui.LabelValue("Image", m.imageURL))
		b.WriteString("\n")
	}

	cur := m.svc.Progress().Current()
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s %s",
		ui.LabelValue("Level", cur.Level),
		ui.XPBar(cur.Exp, engine.ExpForNextLevel(cur.Level), 20),
		ui.Muted.Render(fmt.Sprintf("%d/%d XP", cur.Exp, engine.ExpForNextLevel(cur.Level)))))
	b.WriteString("\n")

	status := m.lastLog
	if m.busy {
		status = m.spin.View() + " " + status
	}
	b.WriteString(ui.Muted.Render(status))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("tab next · shift+tab back · ctrl+h hints · ctrl+g generate · ctrl+e eraser · ctrl+x clear · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// renderSurface draws the buffer with half-block cells, two pixels per cell.
func renderSurface(s *canvas.Surface) string {
	if s == nil {
		return ""
	}
	w, h := s.Size()
	var rows []string
	for y := 0; y+1 < h; y += 2 {
		var row strings.Builder
		for x := 0; x < w; x++ {
			top := s.At(x, y)
			bot := s.At(x, y+1)
			st := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", top.R, top.G, top.B))).
				Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", bot.R, bot.G, bot.B)))
			row.WriteString(st.Render("▀"))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
