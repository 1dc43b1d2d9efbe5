// Command lvgrid runs a grid puzzle solver against an input file.
//
// Usage:
//
//	lvgrid -day 12 -part 2 [-input day12.txt] [-view] [-v]
//
// The answer is printed on stdout. With -view the input is parsed as a
// character grid, its regions are labelled and shown in the terminal until
// a key is pressed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/puzzle"
	"github.com/katalvlaran/lvgrid/viewer"
)

type config struct {
	day     int
	part    int
	input   string
	view    bool
	verbose bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvgrid", flag.ContinueOnError)
	fs.IntVar(&cfg.day, "day", 0, "puzzle day, one of "+daysList())
	fs.IntVar(&cfg.part, "part", 1, "puzzle part (1 or 2)")
	fs.StringVar(&cfg.input, "input", "", "input file (default dayN.txt)")
	fs.BoolVar(&cfg.view, "view", false, "show the labelled input grid instead of solving")
	fs.BoolVar(&cfg.verbose, "v", false, "log elapsed time")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.input == "" {
		cfg.input = fmt.Sprintf("day%d.txt", cfg.day)
	}

	return cfg, nil
}

func daysList() string {
	days := puzzle.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strconv.Itoa(d)
	}

	return strings.Join(names, ", ")
}

// solve looks up the solver, runs it on the file contents and writes the
// answer to w.
func solve(cfg config, text string, w io.Writer) error {
	s, err := puzzle.Lookup(cfg.day, cfg.part)
	if err != nil {
		return err
	}
	start := time.Now()
	answer, err := s(text)
	if err != nil {
		return fmt.Errorf("day %d part %d: %w", cfg.day, cfg.part, err)
	}
	if cfg.verbose {
		log.Printf("day %d part %d solved in %v", cfg.day, cfg.part, time.Since(start))
	}
	_, err = fmt.Fprintln(w, answer)

	return err
}

func view(text string) error {
	g, err := grid.Parse(text, grid.WithPadding(' '))
	if err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	viewer.Run(s, g)

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvgrid: ")

	cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	if cfg.view {
		if err := view(string(data)); err != nil {
			log.Fatalf("view: %v", err)
		}
		return
	}
	if err := solve(cfg, string(data), os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
