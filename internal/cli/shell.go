package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/packlist/internal/engine"
	"github.com/idilsaglam/packlist/internal/export"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

const clearPrompt = "Are you sure you want to delete all the items?"

// Shell reads one command per line and applies it to the engine.
// Indexes typed by the user are 1-based positions in the current view.
type Shell struct {
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
	log    zerolog.Logger

	// Prompt is printed before each line when non-empty.
	Prompt string

	failed bool
}

func NewShell(e *engine.Engine, in io.Reader, out, errOut io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
		log:    log.With().Str("component", "shell").Logger(),
	}
}

// Run reads until EOF or quit. It returns 1 if reading failed or any command
// failed, 0 otherwise.
func (s *Shell) Run() int {
	for {
		if s.Prompt != "" {
			fmt.Fprint(s.out, s.Prompt)
		}
		if !s.in.Scan() {
			break
		}
		if quit := s.Exec(s.in.Text()); quit {
			break
		}
	}
	if err := s.in.Err(); err != nil {
		ui.Fail(s.errOut, "read: "+err.Error())
		return 1
	}
	if s.failed {
		return 1
	}
	return 0
}

// Exec runs a single command line and reports whether the shell should stop.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false
	}
	cmd, a := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug().Str("command", cmd).Strs("args", a).Msg("Executing command")

	switch cmd {
	case "help", "?":
		PrintShellHelp(s.out)

	case "quit", "exit", "q":
		return true

	case "ls", "list":
		s.doList()

	case "add":
		if len(a) == 0 {
			s.fail("usage: add [quantity] <description...>")
			return false
		}
		s.doAdd(a)

	case "toggle", "pack", "done":
		if it, ok := s.entryArg(cmd, a); ok {
			s.engine.ToggleItemPacked(it.ID)
			if after, _ := s.engine.Get(it.ID); after.Packed {
				ui.OK(s.out, "packed "+it.Description)
			} else {
				ui.OK(s.out, "unpacked "+it.Description)
			}
		}

	case "rm", "delete":
		if it, ok := s.entryArg(cmd, a); ok {
			s.engine.DeleteItem(it.ID)
			ui.OK(s.out, "removed "+it.Description)
		}

	case "sort":
		if len(a) != 1 {
			s.fail("usage: sort <input|description|packed>")
			return false
		}
		m, err := model.ParseSortMode(a[0])
		if err == nil {
			err = s.engine.SetSortMode(m)
		}
		if err != nil {
			s.fail("sort: " + err.Error())
			return false
		}
		ui.OK(s.out, m.Label())

	case "clear":
		s.doClear()

	case "stats":
		fmt.Fprintln(s.out, ui.SummaryMessage(s.engine.Summary()))

	case "export", "json":
		if err := export.Write(s.out, s.engine.SortMode(), s.engine.View(), s.engine.Summary()); err != nil {
			s.fail("export: " + err.Error())
		}

	default:
		s.fail("unknown command: " + cmd + " (try `help`)")
	}
	return false
}

func PrintShellHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  add [qty] <description...>   Add an item (qty 1-20, default 1)
  ls                           Show the list in the current sort order
  toggle <n>                   Pack/unpack item n of the list shown by ls
  rm <n>                       Remove item n
  sort <mode>                  input | description | packed
  clear                        Delete every item (asks first)
  stats                        Print the packing summary
  export                       Print the list as JSON
  help                         This text
  quit                         Leave the shell
`)
}

// -------------- command impls ----------------

func (s *Shell) fail(msg string) {
	s.failed = true
	ui.Fail(s.errOut, msg)
}

func (s *Shell) doAdd(a []string) {
	qty := 1
	if n, err := strconv.Atoi(a[0]); err == nil {
		qty, a = n, a[1:]
	}
	it, err := s.engine.AddItem(strings.Join(a, " "), qty)
	switch {
	case errors.Is(err, model.ErrEmptyDescription):
		s.fail("add: empty description")
		return
	case err != nil:
		s.fail("add: " + err.Error())
		return
	}
	ui.OK(s.out, fmt.Sprintf("added %d %s", it.Quantity, it.Description))
}

// entryArg resolves a 1-based index into the current view.
func (s *Shell) entryArg(cmd string, a []string) (model.Entry, bool) {
	if len(a) != 1 {
		s.fail("usage: " + cmd + " <index>")
		return model.Entry{}, false
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		s.fail(cmd + ": not a number: " + a[0])
		return model.Entry{}, false
	}
	view := s.engine.View()
	if n < 1 || n > len(view) {
		s.fail(fmt.Sprintf("index out of range: have %d, got %d", len(view), n))
		fmt.Fprintln(s.errOut, ui.C(ui.Current().Muted, "Hint: run `ls` to see valid indexes"))
		return model.Entry{}, false
	}
	return view[n-1], true
}

func (s *Shell) doClear() {
	if s.engine.Len() == 0 {
		ui.OK(s.out, "nothing to clear")
		return
	}
	fmt.Fprint(s.out, clearPrompt+" [y/N] ")
	answer := ""
	if s.in.Scan() {
		answer = strings.ToLower(strings.TrimSpace(s.in.Text()))
	}
	fmt.Fprintln(s.out)
	if answer != "y" && answer != "yes" {
		ui.OK(s.out, "kept all items")
		return
	}
	s.engine.ClearList()
	ui.OK(s.out, "cleared")
}

func (s *Shell) doList() {
	t := ui.Current()
	sum := s.engine.Summary()
	view := s.engine.View()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Far Away"),
		ui.C(t.Success, t.SymDone), sum.Packed,
		ui.C(t.Pending, t.SymPending), sum.Total-sum.Packed,
		ui.C(t.Accent, "Total"), sum.Total,
	)

	lines := []string{header, ui.C(t.Muted, s.engine.SortMode().Label()), ""}
	if len(view) == 0 {
		lines = append(lines, ui.C(t.Muted, "no items"))
	}
	for i, it := range view {
		lines = append(lines, ui.EntryLine(i+1, it))
	}
	lines = append(lines, "", ui.SummaryMessage(sum))
	if !sum.Empty {
		lines = append(lines, ui.C(t.Muted, ui.ProgressBar(sum.Packed, sum.Total, sum.Percent, 28)))
	}
	ui.Panel(s.out, lines)
}
