package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go_currency_converter/internal/app"
	"go_currency_converter/internal/config"
	"go_currency_converter/internal/converter"
	"go_currency_converter/internal/external"
	"go_currency_converter/internal/logger"
	"go_currency_converter/internal/models"
	"go_currency_converter/internal/theme"

	"github.com/fatih/color"
)

const usage = `Usage: convert <command> [arguments]
Commands:
  <amount> <from> <to>   convert amount, e.g. convert 100 USD EUR
  currencies             list supported currencies
  theme                  show current theme
  theme toggle           switch between dark and light`

type cli struct {
	conv   *converter.Service
	themes *theme.Controller
	out    io.Writer
	errOut io.Writer
}

func main() {
	cfg := config.Load()
	log := logger.NewWithOutput("warn", "text", os.Stderr)
	ctx := context.Background()

	store, closeStore, err := app.OpenThemeStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	c := &cli{
		conv:   converter.New(external.New(&cfg.External, log), cfg.External.BaseCurrency, log),
		themes: theme.NewController(ctx, store, log),
		out:    color.Output,
		errOut: color.Error,
	}
	code := c.run(ctx, os.Args[1:])

	if err := closeStore(); err != nil {
		log.WithError(err).Warn("Failed to close theme store")
	}
	os.Exit(code)
}

func (c *cli) run(ctx context.Context, args []string) int {
	p := paletteFor(c.themes.Current())

	switch {
	case len(args) == 1 && args[0] == "currencies":
		fmt.Fprintln(c.out, strings.Join(models.SupportedCurrencies, " "))
		return 0
	case len(args) == 1 && args[0] == "theme":
		p.status.Fprintln(c.out, c.themes.Current())
		return 0
	case len(args) == 2 && args[0] == "theme" && args[1] == "toggle":
		next, err := c.themes.Toggle(ctx)
		if err != nil {
			return c.fail(err)
		}
		paletteFor(next).status.Fprintln(c.out, next)
		return 0
	case len(args) == 3:
		resp, err := c.conv.ConvertInput(ctx, args[0], args[1], args[2])
		if err != nil {
			return c.fail(err)
		}
		p.status.Fprintln(c.out, resp.Status)
		p.result.Fprintln(c.out, resp.Result)
		return 0
	default:
		fmt.Fprintln(c.errOut, usage)
		return 2
	}
}

func (c *cli) fail(err error) int {
	color.New(color.FgRed).Fprintln(c.errOut, converter.UserMessage(err))
	return 1
}

type palette struct {
	status *color.Color
	result *color.Color
}

// Цвета вывода для темы
func paletteFor(t models.Theme) palette {
	if t.IsDark() {
		return palette{
			status: color.New(color.FgCyan),
			result: color.New(color.FgHiWhite, color.Bold),
		}
	}
	return palette{
		status: color.New(color.FgBlue),
		result: color.New(color.FgBlack, color.Bold),
	}
}
