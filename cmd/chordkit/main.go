// Package main is the chordkit keymap toolkit.
//
// It loads keymap files (JSON, TOML, or YAML), prints canonical shortcut
// ids and platform display strings, and reports binding conflicts.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-runewidth"

	"github.com/chordkit/chordkit/internal/key"
	"github.com/chordkit/chordkit/internal/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	switch args[0] {
	case "ids":
		return runIDs(args[1:])
	case "lint":
		return runLint(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "version", "-v", "--version":
		fmt.Printf("chordkit %s (%s)\n", version, commit)
		return 0
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "chordkit - keyboard shortcut toolkit\n\n")
	fmt.Fprintf(os.Stderr, "Usage: chordkit <command> [options] <keymap-file>...\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  ids     Print canonical ids and display strings for each binding\n")
	fmt.Fprintf(os.Stderr, "  lint    Report duplicate and prefix conflicts in a binding table\n")
	fmt.Fprintf(os.Stderr, "  watch   Re-lint a keymap file whenever it changes on disk\n")
	fmt.Fprintf(os.Stderr, "  version Show version information\n")
}

func loadKeymaps(paths []string) ([]*keymap.Keymap, int) {
	loader := keymap.NewLoader()
	var maps []*keymap.Keymap
	for _, path := range paths {
		km, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			return nil, 1
		}
		maps = append(maps, km)
	}
	return maps, 0
}

func runIDs(args []string) int {
	fs := flag.NewFlagSet("ids", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chordkit ids <keymap-file>...\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	maps, code := loadKeymaps(fs.Args())
	if code != 0 {
		return code
	}

	for _, km := range maps {
		printIDs(km)
	}
	return 0
}

type idRow struct {
	raw     string
	id      string
	display string
	actions string
}

func printIDs(km *keymap.Keymap) {
	rows := make([]idRow, 0, len(km.Bindings))
	for _, pb := range km.Parse() {
		d := key.Describe(pb.Sequence)
		rows = append(rows, idRow{
			raw:     pb.Keys,
			id:      d.ID,
			display: d.Display,
			actions: strings.Join(pb.Actions, ", "),
		})
	}

	// Column widths use display cell width, not byte length, so glyph
	// renderings like ⌘K line up.
	var rawW, idW, dispW int
	for _, r := range rows {
		rawW = max(rawW, runewidth.StringWidth(r.raw))
		idW = max(idW, runewidth.StringWidth(r.id))
		dispW = max(dispW, runewidth.StringWidth(r.display))
	}

	fmt.Printf("%s:\n", km.Name)
	for _, r := range rows {
		fmt.Printf("  %s  %s  %s  %s\n",
			runewidth.FillRight(r.raw, rawW),
			runewidth.FillRight(r.id, idW),
			runewidth.FillRight(r.display, dispW),
			r.actions)
	}
}

func runLint(args []string) int {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	quiet := fs.Bool("q", false, "Suppress output, report via exit code only")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chordkit lint [options] <keymap-file>...\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	maps, code := loadKeymaps(fs.Args())
	if code != 0 {
		return code
	}

	conflicted := false
	for _, km := range maps {
		report := keymap.Analyze(km)
		if report.HasConflicts() {
			conflicted = true
		}
		if !*quiet {
			printReport(km, report)
		}
	}
	if conflicted {
		return 1
	}
	return 0
}

func printReport(km *keymap.Keymap, report *keymap.Report) {
	list := report.List()
	if len(list) == 0 {
		fmt.Printf("%s: no conflicts\n", km.Name)
		return
	}

	fmt.Printf("%s: %d conflict(s)\n", km.Name, len(list))
	for _, c := range list {
		switch c.Type {
		case keymap.ConflictDuplicate:
			fmt.Printf("  duplicate  %-16s bound to %s\n", c.Key, strings.Join(c.Actions, ", "))
		case keymap.ConflictPrefix:
			fmt.Printf("  prefix     %-16s overlaps %s\n", c.Key, strings.Join(c.Partners, ", "))
		}
	}
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chordkit watch <keymap-file>\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	path := fs.Arg(0)

	maps, code := loadKeymaps([]string{path})
	if code != 0 {
		return code
	}
	printReport(maps[0], keymap.Analyze(maps[0]))

	watcher, err := keymap.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: watch %s: %v\n", path, err)
		return 1
	}
	defer watcher.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	fmt.Fprintf(os.Stderr, "watching %s\n", path)
	for {
		select {
		case km, ok := <-watcher.Keymaps():
			if !ok {
				return 0
			}
			printReport(km, keymap.Analyze(km))
		case err, ok := <-watcher.Errors():
			if !ok {
				return 0
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		case <-signals:
			return 0
		}
	}
}
