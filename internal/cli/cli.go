package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soukando/taishin/internal/analytics"
	"github.com/soukando/taishin/internal/catalog"
	"github.com/soukando/taishin/internal/clipboard"
	"github.com/soukando/taishin/internal/directory"
	"github.com/soukando/taishin/internal/result"
	"github.com/soukando/taishin/internal/scoring"
	"github.com/soukando/taishin/internal/session"
	"github.com/soukando/taishin/internal/store"
	"github.com/soukando/taishin/internal/tui"
)

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `taishin: constitutional typing questionnaire

Usage:
  taishin                 run the interactive questionnaire
  taishin result [--copy] print the saved result; --copy also copies it
  taishin reset           delete the saved answers and profile
  taishin validate        check the embedded question catalog
  taishin help            show this message
`
}

func Run(args []string) error {
	if len(args) == 0 {
		return runTUI()
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "result":
		return runResult(args[1:])
	case "reset":
		if len(args) != 1 {
			return UsageError{Message: "reset takes no arguments"}
		}
		return runReset()
	case "validate":
		if len(args) != 1 {
			return UsageError{Message: "validate takes no arguments"}
		}
		return runValidate()
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}

func runTUI() error {
	data, err := catalog.Load()
	if err != nil {
		return err
	}
	listing, err := directory.Load()
	if err != nil {
		return err
	}

	// A missing home directory degrades to an in-memory session: the quiz
	// still works, it just does not survive the process.
	var port store.Port
	var events analytics.Emitter = analytics.Nop{}
	if fs, err := store.NewFileStore(); err == nil {
		port = fs
		events = analytics.NewLog(filepath.Join(fs.Dir(), "events.log"))
	} else {
		port = store.NewMemStore()
	}

	sess := session.New(data, port, events)
	return tui.Start(sess, events, listing)
}

func runResult(args []string) error {
	fs := flag.NewFlagSet("result", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	copyFlag := fs.Bool("copy", false, "also copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "result takes only flags (no positional args)"}
	}

	data, err := catalog.Load()
	if err != nil {
		return err
	}
	files, err := store.NewFileStore()
	if err != nil {
		return err
	}

	snap := files.LoadAnswers()
	if len(snap) == 0 {
		return fmt.Errorf("no saved answers (run `taishin` to take the questionnaire)")
	}
	profile, _ := files.LoadProfile()

	totals := scoring.Score(snap, data.Questions(profile.Cohort), data.Registry)
	text := result.ShareText(scoring.Rank(totals, data.Registry), profile)
	fmt.Fprintln(os.Stdout, text)

	if *copyFlag {
		switch clipboard.New().Copy(text) {
		case clipboard.CopiedPrimary, clipboard.CopiedFallback:
			fmt.Fprintln(os.Stderr, "copied to clipboard")
		default:
			fmt.Fprintln(os.Stderr, "could not access a clipboard; copy the text above manually")
		}
	}
	return nil
}

func runReset() error {
	files, err := store.NewFileStore()
	if err != nil {
		return err
	}
	if err := files.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "saved answers and profile removed")
	return nil
}

func runValidate() error {
	_, err := catalog.Load()
	if err == nil {
		fmt.Fprintln(os.Stdout, "OK")
		return nil
	}

	var verrs catalog.ValidationErrors
	if errors.As(err, &verrs) {
		fmt.Fprintln(os.Stdout, "invalid catalog:")
		for _, e := range verrs {
			fmt.Fprintf(os.Stdout, "- %s: %s\n", e.Path, e.Message)
		}
		return errors.New("validation failed")
	}
	return err
}
