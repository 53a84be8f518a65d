// Package tui is the terminal host for the slide viewer.
package tui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"plaindeck/internal/config"
	"plaindeck/internal/imageload"
	"plaindeck/internal/slide"
	"plaindeck/internal/viewer"
)

const defaultTitle = "plaindeck"

// Options configure the terminal host.
type Options struct {
	Title   string
	Keys    config.KeysConfig
	Display config.DisplayConfig
	// Verbose adds the computed font size to the status line.
	Verbose bool
	Logger  *slog.Logger
}

type model struct {
	ctrl      *viewer.Controller
	keys      keyMap
	display   config.DisplayConfig
	verbose   bool
	logger    *slog.Logger
	images    map[string]image.Image
	imageErrs map[string]error
	rendered  map[imageKey]string
	progress  progress.Model
	showHelp  bool
	help      string
	width     int
	height    int
	title     string
}

type imagesLoadedMsg struct {
	images map[string]image.Image
	errs   map[string]error
}

// New returns the bubbletea model for ctrl.
func New(ctrl *viewer.Controller, opts Options) tea.Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	if opts.Display.CellWidth <= 0 {
		opts.Display.CellWidth = config.Default().Display.CellWidth
	}

	return model{
		ctrl:      ctrl,
		keys:      newKeyMap(opts.Keys),
		display:   opts.Display,
		verbose:   opts.Verbose,
		logger:    logger,
		images:    map[string]image.Image{},
		imageErrs: map[string]error{},
		rendered:  map[imageKey]string{},
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		title:     title,
	}
}

// Run shows the presentation until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *viewer.Controller, opts Options) error {
	p := tea.NewProgram(New(ctrl, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return loadImages(m.ctrl.Slides(), m.logger)
}

// loadImages decodes every image slide up front so frames never touch the disk.
func loadImages(slides []slide.Slide, logger *slog.Logger) tea.Cmd {
	var uris []string
	for _, s := range slides {
		if img, ok := s.(slide.Image); ok {
			uris = append(uris, img.URI)
		}
	}
	if len(uris) == 0 {
		return nil
	}

	return func() tea.Msg {
		msg := imagesLoadedMsg{images: map[string]image.Image{}, errs: map[string]error{}}
		for _, uri := range uris {
			if _, seen := msg.images[uri]; seen {
				continue
			}
			if _, failed := msg.errs[uri]; failed {
				continue
			}
			img, err := imageload.Load(uri)
			if err != nil {
				logger.Warn("failed to load image", slog.String("uri", uri), slog.String("error", err.Error()))
				msg.errs[uri] = err
				continue
			}
			logger.Debug("loaded image", slog.String("uri", uri), slog.Int("width", img.Bounds().Dx()), slog.Int("height", img.Bounds().Dy()))
			msg.images[uri] = img
		}
		return msg
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = max(msg.Width-4, 0)
		clear(m.rendered)
		m.logger.Debug("window resized", slog.Int("cols", msg.Width), slog.Int("rows", msg.Height))
		if m.showHelp {
			m.help = m.renderHelp()
		}
		return m, m.progress.SetPercent(m.ctrl.Progress())

	case imagesLoadedMsg:
		m.images = msg.images
		m.imageErrs = msg.errs
		clear(m.rendered)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.help = m.renderHelp()
			}
			return m, nil

		case m.showHelp && key.Matches(msg, m.keys.CloseHelp):
			m.showHelp = false
			return m, nil
		}

		if !m.ctrl.OnKey(msg.String()) {
			return m, nil
		}
		m.logger.Debug("slide changed", slog.Int("index", m.ctrl.Index()+1), slog.Int("total", m.ctrl.Total()))
		return m, m.progress.SetPercent(m.ctrl.Progress())

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m model) renderHelp() string {
	out, err := renderHelp(m.title, m.keys, m.width)
	if err != nil {
		m.logger.Error("rendering help", slog.String("error", err.Error()))
		return helpMarkdown(m.title, m.keys)
	}
	return out
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading slides..."
	}

	var footer []string
	if m.display.ShowStatus {
		footer = append(footer, m.statusLine())
	}
	if m.display.ShowProgress {
		footer = append(footer, m.progress.View())
	}
	contentHeight := max(m.height-len(footer), 1)

	var content string
	if m.showHelp {
		content = fitHeight(m.help, contentHeight)
	} else {
		content = m.slideView(contentHeight)
	}

	return strings.Join(append([]string{content}, footer...), "\n")
}

func (m model) slideView(rows int) string {
	canvas := &termCanvas{
		cols:      m.width,
		rows:      rows,
		cellWidth: m.display.CellWidth,
		images:    m.images,
		imageErrs: m.imageErrs,
		rendered:  m.rendered,
	}

	spec := m.ctrl.CurrentView(canvas.viewportWidth())
	if err := spec.Draw(canvas); err != nil {
		m.logger.Error("drawing slide", slog.Int("index", m.ctrl.Index()+1), slog.String("error", err.Error()))
		return fitHeight("Error: "+err.Error(), rows)
	}
	return canvas.out
}

func (m model) statusLine() string {
	slideInfo := fmt.Sprintf("Slide %d/%d", m.ctrl.Index()+1, m.ctrl.Total())
	if m.verbose {
		if spec, ok := m.ctrl.CurrentView(float64(m.width) * m.display.CellWidth).(viewer.TextSpec); ok {
			slideInfo += fmt.Sprintf("  %.1fpt", spec.FontSize)
		}
	}

	style := lipgloss.NewStyle().
		Width(m.width).
		Background(lipgloss.Color(m.display.StatusBackground)).
		Foreground(lipgloss.Color(m.display.StatusForeground)).
		Padding(0, 1)

	left, right := slideInfo, m.title

	// Account for padding (1 on each side) and a minimum gap.
	available := m.width - 2
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > available {
		maxTitle := available - lipgloss.Width(left) - 2
		if maxTitle < 4 {
			right = ""
		} else {
			right = truncate(right, maxTitle)
		}
	}

	gap := max(available-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return style.Render(left + strings.Repeat(" ", gap) + right)
}

// truncate shortens s to at most width display cells, ending in "...".
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}

// fitHeight cuts or pads s to exactly rows lines.
func fitHeight(s string, rows int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
