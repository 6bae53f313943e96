package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/bankaccount/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

func setupLogger(cfg *config.Log, out io.Writer) *slog.Logger {
	if cfg == nil {
		cfg = &config.Log{Format: "auto"}
	}

	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Padding(0, 1).
		Foreground(errorTxtColor)
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Padding(0, 1).
		Foreground(infoTxtColor)
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Padding(0, 1).
		Foreground(warnTxtColor)
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Padding(0, 1).
		Foreground(debugTxtColor)

	styles.Keys["error"] = lipgloss.NewStyle().Foreground(errorTxtColor)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["message"] = lipgloss.NewStyle().Foreground(warnTxtColor)
	styles.Values["message"] = lipgloss.NewStyle().Bold(true)
	styles.Keys["account_number"] = lipgloss.NewStyle().Foreground(infoTxtColor)
	styles.Values["account_number"] = lipgloss.NewStyle().Bold(true)

	logger := log.NewWithOptions(out, log.Options{
		ReportCaller:    cfg.Level < 0,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatterFor(cfg.Format, out),
	})
	logger.SetStyles(styles)

	return slog.New(logger)
}

// formatterFor maps the configured format to a charmbracelet formatter.
// "auto" picks text on a terminal and JSON otherwise.
func formatterFor(format string, out io.Writer) log.Formatter {
	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	if f, ok := formattersMap[format]; ok {
		return f
	}
	if isTerminal(out) {
		return log.TextFormatter
	}
	return log.JSONFormatter
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}

var _ fdWriter = os.Stdout
