package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/abyssdigger/srclog"
	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)

	sourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	levelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	allowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32"))

	denyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func main() {
	app := &cli.Command{
		Name:  "srclog",
		Usage: "Inspect and try out source-scoped logging configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: "srclog.toml",
			},
		},
		Commands: []*cli.Command{
			checkCommand(),
			dumpCommand(),
			demoCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// checkCommand reports whether a (source, level) pair would print under
// the configured thresholds.
func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Check whether a source would log at a given level",
		ArgsUsage: "<source> <level>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected <source> <level>, got %d arguments", c.Args().Len())
			}
			source := c.Args().Get(0)
			level := srclog.ParseLevel(c.Args().Get(1))
			if level == srclog.LVL_INVALID {
				return fmt.Errorf("unknown level %q", c.Args().Get(1))
			}
			l, err := buildFromConfig(c.String("config"))
			if err != nil {
				return err
			}
			defer l.Destroy()
			verdict := denyStyle.Render("DENIED")
			if l.WillBePrinted(source, level) {
				verdict = allowStyle.Render("ALLOWED")
			}
			fmt.Printf("%s at %s: %s\n", sourceStyle.Render(source), level.String(), verdict)
			return nil
		},
	}
}

// dumpCommand prints the registered sources and their thresholds.
func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Show the configured sources and their minimal levels",
		Action: func(ctx context.Context, c *cli.Command) error {
			l, err := buildFromConfig(c.String("config"))
			if err != nil {
				return err
			}
			defer l.Destroy()
			snap := l.SrcDump()
			if snap == nil {
				return fmt.Errorf("logging context is not initialized")
			}
			fmt.Println(titleStyle.Render("global level: " + snap.GlobalLevel.String()))
			for _, descr := range snap.Sources {
				fmt.Printf("  %s %s\n",
					sourceStyle.Render(padSource(descr.Source)),
					levelStyle.Render(descr.MinLevel.String()))
			}
			if len(snap.Sources) == 0 {
				fmt.Println(levelStyle.Render("  (no sources registered)"))
			}
			return nil
		},
	}
}

// demoCommand emits sample formatted and raw-hexdump output for every
// configured source so the line format can be eyeballed.
func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Emit sample log lines (including a raw hexdump) to stderr",
		Action: func(ctx context.Context, c *cli.Command) error {
			l, err := buildFromConfig(c.String("config"))
			if err != nil {
				return err
			}
			defer l.Destroy()
			snap := l.SrcDump()
			if snap == nil {
				return fmt.Errorf("logging context is not initialized")
			}
			sample := []byte("srclog hexdump sample: \x00\x01\x02\xfe\xff")
			for _, descr := range snap.Sources {
				for level := srclog.LVL_TRACE; level <= srclog.LVL_ERROR; level++ {
					l.Logf(descr.Source, level, "sample message at %s", level)
				}
				l.LogRaw(descr.Source, sample)
			}
			return nil
		},
	}
}

func buildFromConfig(path string) (*srclog.Logger, error) {
	cfg, err := srclog.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return cfg.Build(os.Stderr)
}

func padSource(source string) string {
	if len(source) >= srclog.SRC_DISPLAY_MAX_SIZE {
		return source
	}
	return source + strings.Repeat(" ", srclog.SRC_DISPLAY_MAX_SIZE-len(source))
}
