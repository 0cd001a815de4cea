// Package dash renders a live terminal dashboard: a ticking clock, the
// host's system info, and the current configuration. The config panel
// reloads when the config file changes on disk.
package dash

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"levonctl/internal/config"
	"levonctl/internal/system"
)

type tickMsg time.Time

type configReloadedMsg struct {
	values map[string]string
	err    error
}

type watchErrMsg struct{ err error }

type Model struct {
	now      time.Time
	info     system.Info
	cfgFile  string
	cfgVals  map[string]string
	lastErr  string
	watcher  *fsnotify.Watcher
	quitting bool
}

// New builds the dashboard model from an already-loaded config. When the
// config came from a file, changes to that file refresh the config panel.
func New(cfg *config.Config) Model {
	m := Model{
		now:     time.Now(),
		info:    system.Collect(),
		cfgFile: cfg.FileUsed(),
		cfgVals: cfg.Flatten(),
	}
	if m.cfgFile != "" {
		if w, err := fsnotify.NewWatcher(); err == nil {
			if err := w.Add(m.cfgFile); err == nil {
				m.watcher = w
			} else {
				_ = w.Close()
				m.lastErr = fmt.Sprintf("watch %s: %v", m.cfgFile, err)
			}
		} else {
			m.lastErr = fmt.Sprintf("fsnotify: %v", err)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher, m.cfgFile))
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForChange blocks on the watcher and reloads the config after a
// write or create event on the config file.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Name != path || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				cfg, err := config.Load(path)
				if err != nil {
					return configReloadedMsg{err: err}
				}
				return configReloadedMsg{values: cfg.Flatten()}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			if m.watcher != nil {
				_ = m.watcher.Close()
			}
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	case configReloadedMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
		} else {
			m.cfgVals = msg.values
			m.lastErr = ""
		}
		return m, waitForChange(m.watcher, m.cfgFile)
	case watchErrMsg:
		m.lastErr = msg.err.Error()
		return m, waitForChange(m.watcher, m.cfgFile)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(clockStyle.Render(m.now.Format("2006-01-02 15:04:05")))
	b.WriteString("\n\n")

	sys := renderPanel("System", [][2]string{
		{"Platform", strings.TrimSpace(m.info.Platform + " " + m.info.PlatformRelease)},
		{"Architecture", m.info.Architecture},
		{"Hostname", m.info.Hostname},
		{"CPUs", fmt.Sprintf("%d", m.info.NumCPU)},
		{"Go", m.info.GoVersion},
	})

	cfgRows := make([][2]string, 0, len(m.cfgVals))
	keys := make([]string, 0, len(m.cfgVals))
	for k := range m.cfgVals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cfgRows = append(cfgRows, [2]string{k, m.cfgVals[k]})
	}
	cfgTitle := "Config"
	if m.cfgFile != "" {
		cfgTitle = "Config · " + m.cfgFile
	}
	cfg := renderPanel(cfgTitle, cfgRows)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sys, cfg))

	foot := "q to quit"
	if m.cfgFile != "" {
		foot += " · config reloads on change"
	}
	b.WriteString("\n")
	b.WriteString(footStyle.Render(foot))
	if m.lastErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.lastErr))
	}
	b.WriteString("\n")
	return b.String()
}

func renderPanel(title string, rows [][2]string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(valueStyle.Render(r[1]))
	}
	return panelStyle.Render(b.String())
}

// Run starts the dashboard program.
func Run(cfg *config.Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}
