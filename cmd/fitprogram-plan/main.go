package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/meltforce/fitprogram/internal/catalog"
	"github.com/meltforce/fitprogram/internal/energy"
	"github.com/meltforce/fitprogram/internal/localstate"
	"github.com/meltforce/fitprogram/internal/planner"
	"github.com/meltforce/fitprogram/internal/program"
	"github.com/meltforce/fitprogram/internal/progress"
	"github.com/meltforce/fitprogram/internal/registry"
	"github.com/meltforce/fitprogram/internal/remote"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// The CLI is single-user; it shares the id of the server's local user.
const localUser = 1

const usage = `Usage: fitprogram-plan [flags] <command> [args]

Commands:
  program               list every day of the program
  day <n>               show one day with its exercises
  week <n>              show one week
  next                  show the next day not yet completed
  summary               show overall progress
  done <day> [id]       mark a day, or one exercise of it, complete
  undo <day> [id]       clear a day or exercise mark
  reset                 clear all completions

Flags:
`

func main() {
	weightKg := flag.Float64("weight", energy.DefaultWeightKg, "body weight in kg for calorie estimates")
	weeks := flag.Int("weeks", program.DefaultWeeks, "number of standard weeks before the bonus days")
	stateDir := flag.String("state", "", "directory for the completion database (default ~/.fitprogram)")
	serverURL := flag.String("server", "", "FitProgram server URL; completions are kept there instead of locally (-weight and -weeks must match its profile)")
	apiKey := flag.String("api-key", os.Getenv("FITPROGRAM_AUTH_API_KEY"), "API key for -server mutations")
	asJSON := flag.Bool("json", false, "print JSON instead of text")
	verbose := flag.Bool("v", false, "debug logging")
	version := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println("fitprogram-plan", Version)
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	prog, err := program.Generate(catalog.Default(), registry.Default(), *weightKg,
		program.WithWeeks(*weeks),
		program.WithLogger(log),
	)
	if err != nil {
		log.Error("program generation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var store progress.Store
	if *serverURL != "" {
		store = remote.NewClient(*serverURL, *apiKey)
		log.Debug("remote mode", "server", *serverURL)
	} else {
		state, err := openState(ctx, *stateDir, prog, log)
		if err != nil {
			log.Error("failed to open state database", "error", err)
			os.Exit(1)
		}
		defer state.Close()
		store = state
	}

	c := &cli{plan: planner.New(prog, store, log), json: *asJSON}
	if err := c.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openState opens the local completion database and warns when it was
// last used with a different program.
func openState(ctx context.Context, dir string, prog *program.Program, log *slog.Logger) (*localstate.StateDB, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".fitprogram")
	}
	state, err := localstate.Open(dir)
	if err != nil {
		return nil, err
	}

	fp, err := localstate.Fingerprint(prog)
	if err != nil {
		return state, nil
	}
	if changed, err := state.CheckFingerprint(ctx, fp); err != nil {
		log.Warn("program fingerprint check failed", "error", err)
	} else if changed {
		log.Warn("program changed since completions were recorded; exercise marks may not line up", "state", dir)
	}
	return state, nil
}

type cli struct {
	plan *planner.Planner
	json bool
}

func (c *cli) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "program":
		view, err := c.plan.Program(ctx)
		if err != nil {
			return err
		}
		if c.json {
			return printJSON(view)
		}
		for _, w := range view.Workouts {
			printHeader(w)
		}
		return nil

	case "day":
		day, err := intArg(rest, 0, "day")
		if err != nil {
			return err
		}
		w, err := c.plan.WorkoutByDay(ctx, day)
		if err != nil {
			return err
		}
		snap, err := c.plan.WorkoutProgress(ctx, day, localUser)
		if err != nil {
			return err
		}
		if c.json {
			return printJSON(map[string]any{"workout": w, "progress": snap})
		}
		c.printDay(ctx, *w, snap)
		return nil

	case "week":
		week, err := intArg(rest, 0, "week")
		if err != nil {
			return err
		}
		ws, err := c.plan.WorkoutsByWeek(ctx, week)
		if err != nil {
			return err
		}
		sum, err := c.plan.WeekSummary(ctx, week, 0, localUser)
		if err != nil {
			return err
		}
		if c.json {
			return printJSON(map[string]any{"workouts": ws, "summary": sum})
		}
		if len(ws) == 0 {
			fmt.Printf("No workouts in week %d\n", week)
			return nil
		}
		for _, w := range ws {
			printHeader(w)
		}
		printSummary(sum)
		return nil

	case "next":
		next, err := c.plan.NextWorkout(ctx, localUser)
		if err != nil {
			return err
		}
		if c.json {
			return printJSON(next)
		}
		if next.Complete {
			fmt.Println("Every day is complete.")
			return nil
		}
		snap, err := c.plan.WorkoutProgress(ctx, next.Workout.Day, localUser)
		if err != nil {
			return err
		}
		c.printDay(ctx, *next.Workout, snap)
		return nil

	case "summary":
		sum, err := c.plan.Summary(ctx, 0, localUser)
		if err != nil {
			return err
		}
		if c.json {
			return printJSON(sum)
		}
		printSummary(sum)
		return nil

	case "done", "undo":
		done := cmd == "done"
		day, err := intArg(rest, 0, "day")
		if err != nil {
			return err
		}
		if len(rest) > 1 {
			id, err := intArg(rest, 1, "exercise id")
			if err != nil {
				return err
			}
			return c.plan.MarkExercise(ctx, localUser, day, id, done)
		}
		return c.plan.MarkDay(ctx, localUser, day, done)

	case "reset":
		return c.plan.Reset(ctx, localUser)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func intArg(args []string, i int, name string) (int, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, args[i])
	}
	return n, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printHeader(w program.Workout) {
	tag := ""
	switch {
	case w.Bonus:
		tag = " [bonus]"
	case w.Rest:
		tag = " [recovery]"
	}
	fmt.Printf("Day %2d  week %d  %-28s %3d min  %6.1f kcal%s\n",
		w.Day, w.Week, w.Title, w.TargetDuration, w.EstimatedCalories, tag)
}

func (c *cli) printDay(ctx context.Context, w program.Workout, snap *progress.Snapshot) {
	st, _ := c.plan.Completions(ctx, localUser)

	fmt.Println()
	fmt.Printf("=== Day %d: %s ===\n", w.Day, w.Title)
	if w.Focus != "" {
		fmt.Printf("  Focus:    %s\n", w.Focus)
	}
	fmt.Printf("  Target:   %d min (estimated %.1f min, %.1f kcal)\n",
		w.TargetDuration, w.EstimatedDuration, w.EstimatedCalories)
	fmt.Printf("  Progress: %d/%d exercises (%d%%)\n", snap.CompletedCount, snap.TotalCount, snap.Percent)
	fmt.Println()
	for _, e := range w.Exercises {
		mark := " "
		if st.Exercises[progress.Key(w.Day, e.ID)] {
			mark = "x"
		}
		fmt.Printf("  [%s] %4d  %-30s %-28s %s\n", mark, e.ID, e.Name, instruction(e.Exercise), e.Difficulty)
		for _, alt := range e.Alternatives {
			fmt.Printf("        or  %-30s %s\n", alt.Name, instruction(alt.Exercise))
		}
	}
	fmt.Println()
}

func instruction(e program.Exercise) string {
	if e.Prescription != nil {
		return e.Prescription.String()
	}
	return e.Reps
}

func printSummary(s *progress.Summary) {
	fmt.Println()
	fmt.Println("=== Progress ===")
	fmt.Printf("  Days:      %d/%d\n", s.CompletedDays, s.TotalDays)
	fmt.Printf("  Minutes:   %.1f of %d (%d%%)\n", s.CompletedMinutes, s.TotalTargetMinutes, s.OverallPercent)
	fmt.Printf("  Calories:  %.1f of %.1f\n", s.CompletedCalories, s.TotalEstimatedCalories)
	fmt.Printf("  Remaining: %.1f min, %.1f kcal\n", s.RemainingMinutes, s.RemainingCalories)
	fmt.Println()
}
