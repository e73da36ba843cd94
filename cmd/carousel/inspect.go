package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/Gaurav-Gosain/carousel/internal/app"
	"github.com/Gaurav-Gosain/carousel/internal/config"
	"github.com/Gaurav-Gosain/carousel/internal/render"
	"github.com/Gaurav-Gosain/carousel/internal/theme"
	"github.com/Gaurav-Gosain/carousel/pkg/carousel"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// inspectOptions are the flags shared by the track and dots commands
type inspectOptions struct {
	current int
	loaded  []int
	json    bool
	render  bool
	width   int
}

// inspectState is one carousel state computed straight from the core
type inspectState struct {
	spec   carousel.Spec
	slides []carousel.Slide
	model  *app.Model
}

func newInspectState(cmd *cobra.Command, args []string, opts inspectOptions) (*inspectState, error) {
	items, err := loadItems(args)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items = app.GenerateItems(config.DefaultItemCount)
	}
	userConfig := loadConfig(cmd)

	width := outputWidth(opts.width)
	m := app.New(app.Options{Items: items, Config: userConfig, Width: width})

	s := m.Spec()
	s.CurrentSlide = opts.current
	s.IDPrefix = carousel.DefaultIDPrefix
	s.FocusOnSelect = nil
	s.LazyLoadedList = nil
	if s.LazyLoad {
		s.LazyLoadedList = opts.loaded
		if s.LazyLoadedList == nil {
			s.LazyLoadedList = carousel.OnDemandLazySlides(s)
		}
	}

	return &inspectState{spec: s, slides: carousel.SlidesFrom(items...), model: m}, nil
}

// outputWidth returns flag, else the terminal width, else the fallback
func outputWidth(flag int) int {
	if flag > 0 {
		return flag
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return config.FallbackWidth
}

// stdout downsamples colors to what the terminal (or pipe) supports
func stdout() io.Writer {
	return colorprofile.NewWriter(os.Stdout, os.Environ())
}

func printTrack(cmd *cobra.Command, args []string, opts inspectOptions) error {
	st, err := newInspectState(cmd, args, opts)
	if err != nil {
		return err
	}
	if opts.render {
		return renderState(st, opts.current)
	}

	track, err := carousel.BuildTrack(st.spec, st.slides, carousel.DefaultBounds(st.spec))
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(track)
	}

	rows := make([][]string, 0, len(track))
	for _, d := range track {
		rows = append(rows, []string{
			d.Key,
			d.Placement.String(),
			strconv.Itoa(d.Index),
			strconv.Itoa(d.Source),
			d.ClassName,
			yesNo(d.Hydrated),
			styleSummary(d.Style),
		})
	}
	t := inspectTable([]string{"Key", "Placement", "Index", "Source", "Classes", "Hydrated", "Style"}, rows, func(row int) bool {
		return track[row].Classes.Current
	})
	_, err = fmt.Fprintln(stdout(), t.Render())
	return err
}

func printDots(cmd *cobra.Command, args []string, opts inspectOptions) error {
	st, err := newInspectState(cmd, args, opts)
	if err != nil {
		return err
	}
	if opts.render {
		return renderState(st, opts.current)
	}

	dots, err := carousel.BuildDots(st.spec, st.slides)
	if err != nil {
		return err
	}
	if opts.json {
		return writeJSON(dots)
	}

	rows := make([][]string, 0, len(dots))
	for _, d := range dots {
		rows = append(rows, []string{
			strconv.Itoa(d.Index + 1),
			fmt.Sprintf("%d..%d", d.Left, d.Right),
			yesNo(d.Active),
			d.ControlsID,
		})
	}
	t := inspectTable([]string{"Dot", "Slides", "Active", "Controls"}, rows, func(row int) bool {
		return dots[row].Active
	})
	w := stdout()
	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d dots\n", carousel.DotCount(st.spec))
	return err
}

// renderState draws the frame the interactive carousel would show at current
func renderState(st *inspectState, current int) error {
	m := st.model
	if err := m.GoTo(current); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout(), render.View(m.Scene()))
	return err
}

func inspectTable(headers []string, rows [][]string, highlight func(row int) bool) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.CLITableHeader()).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	marked := cell.Foreground(theme.CLITableKey()).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.CLITableBorder())).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row >= 0 && row < len(rows) && highlight(row):
				return marked
			default:
				return cell
			}
		})
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func styleSummary(st carousel.Style) string {
	var parts []string
	if st.Width != nil {
		parts = append(parts, fmt.Sprintf("width=%d", *st.Width))
	}
	if st.Left != nil {
		parts = append(parts, fmt.Sprintf("left=%d", *st.Left))
	}
	if st.Top != nil {
		parts = append(parts, fmt.Sprintf("top=%d", *st.Top))
	}
	if st.Opacity != nil {
		parts = append(parts, fmt.Sprintf("opacity=%g", *st.Opacity))
	}
	if st.Transition != "" {
		parts = append(parts, "transition="+st.Transition)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
