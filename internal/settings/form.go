package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"levonctl/internal/config"
)

// Run launches an interactive form to edit the logging and cache settings
// and writes the result back to config.ini on submit.
func Run(cfg *config.Config) error {
	level := cfg.GetString("logging.level")
	dir := cfg.GetString("logging.dir")
	rotation := cfg.GetString("logging.rotation")
	cacheOn := cfg.GetBool("cache.enabled")

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Edit logging and cache options; saved to config.ini"),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("debug", "debug"),
					huh.NewOption("info", "info"),
					huh.NewOption("warn", "warn"),
					huh.NewOption("error", "error"),
				).
				Value(&level),
			huh.NewInput().
				Title("Log directory").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("directory must not be empty")
					}
					return nil
				}).
				Value(&dir),
			huh.NewSelect[string]().
				Title("Rotation").
				Options(huh.NewOption("daily", "daily")).
				Value(&rotation),
			huh.NewConfirm().
				Title("Cache enabled").
				Value(&cacheOn),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	cfg.Set("logging.level", level)
	cfg.Set("logging.dir", strings.TrimSpace(dir))
	cfg.Set("logging.rotation", rotation)
	cfg.Set("cache.enabled", cacheOn)
	if err := cfg.Write(); err != nil {
		return err
	}
	fmt.Printf("\n✓ settings saved (%s)\n\n", cfg.FileUsed())
	return nil
}
