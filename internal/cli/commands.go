package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/fieldlist/internal/model"
	"github.com/idilsaglam/fieldlist/internal/render"
	"github.com/idilsaglam/fieldlist/internal/tui"
	"github.com/idilsaglam/fieldlist/internal/ui"
)

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fieldlist",
		Short: "Edit a list field of title/content/hide items",
		Long: `fieldlist edits one structured field: an ordered list of items, each with
a title, free-form content and a hide flag. Every change is written to the
field store immediately.

Run without a subcommand to open the interactive editor.`,
		Example: `  fieldlist
  fieldlist add --title "Shipping" --content "Two to five days."
  fieldlist ls
  fieldlist mv 3 1
  fieldlist --backend sqlite --path cms.db --entry post-42 --field faq ls`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown subcommand: %s", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, cmd.Annotations["interactive"] == "true")
		},
		Annotations: map[string]string{"interactive": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fieldlist/config.toml)")
	pf.StringVar(&a.backend, "backend", "", "field store backend: file or sqlite")
	pf.StringVarP(&a.path, "path", "p", "", "field file (.json/.yaml) or sqlite database")
	pf.StringVar(&a.entry, "entry", "", "entry id (sqlite)")
	pf.StringVar(&a.fieldID, "field", "", "field id (sqlite)")
	pf.StringVar(&a.theme, "theme", "", "classic, neon or mono")
	pf.StringVar(&a.color, "color", "auto", "auto, always or never")
	pf.StringVar(&a.logFile, "log-file", "", "append logs to this file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.editCmd(),
		a.lsCmd(),
		a.showCmd(),
		a.addCmd(),
		a.setCmd(),
		a.hideCmd(),
		a.rmCmd(),
		a.mvCmd(),
		a.historyCmd(),
	)
	return root
}

func (a *app) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "edit",
		Short:       "Open the interactive editor",
		Args:        exactArgs(0, "edit"),
		Annotations: map[string]string{"interactive": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit()
		},
	}
}

func (a *app) runEdit() error {
	return a.withSession(func(s *session) error {
		final, err := tui.Run(s.ctrl, tui.Options{
			Theme:  a.cfg.UI.Theme,
			Logger: a.log,
			Label:  s.label,
		})
		if err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		if n := final.Commits(); n > 0 {
			a.printer().OK(fmt.Sprintf("%d change(s) saved", n))
		}
		return nil
	})
}

func (a *app) lsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  exactArgs(0, "ls [--json]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				items := s.ctrl.Items()
				if asJSON {
					enc := json.NewEncoder(a.out)
					enc.SetIndent("", "  ")
					return enc.Encode(items)
				}
				a.printList(items, s.label)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the field value as JSON")
	return cmd
}

func (a *app) printList(items []model.Item, label string) {
	p := a.printer()
	t := p.Theme()
	if len(items) == 0 {
		p.Println(p.C(t.Muted, "no items"))
		p.Println("Run: fieldlist add --title <title>")
		return
	}

	visible, hidden := model.Stats(items)
	lines := []string{
		fmt.Sprintf("%s   %s %d  %s %d  %s %d",
			p.C(t.Title, "Items"),
			p.C(t.Success, t.BoxShown), visible,
			p.C(t.Pending, t.BoxHidden), hidden,
			p.C(t.Accent, "Total"), len(items)),
		p.C(t.Muted, label),
		"",
	}
	for i, it := range items {
		box := p.C(t.Success, t.BoxShown)
		if it.Hide {
			box = p.C(t.Pending, t.BoxHidden)
		}
		title := it.Title
		if title == "" {
			title = p.C(t.Error, t.Missing+" title required")
		}
		line := fmt.Sprintf("%2d. %s %s", i+1, box, title)
		if c := firstLine(it.Content); c != "" {
			line += p.C(t.Muted, "  "+c)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "visible "+ui.ProgressBar(visible, len(items), 20))
	p.Panel(lines)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func (a *app) showCmd() *cobra.Command {
	var (
		style string
		width int
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the visible items as Markdown",
		Args:  exactArgs(0, "show [--style auto|dark|light|notty] [--width n]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch render.Style(style) {
			case render.StyleAuto, render.StyleDark, render.StyleLight, render.StyleNoTTY:
			default:
				return usagef("unknown --style %q", style)
			}
			return a.withSession(func(s *session) error {
				out := render.Terminal(s.ctrl.Items(), width, render.Style(style))
				if out == "" {
					a.printer().Println("nothing visible")
					return nil
				}
				_, err := fmt.Fprintln(a.out, out)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&style, "style", string(render.StyleAuto), "glamour style: auto, dark, light or notty")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var (
		title, content string
		hide           bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new item",
		Args:  exactArgs(0, "add [--title t] [--content c] [--hide]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				if err := s.ctrl.Append(); err != nil {
					return err
				}
				i := s.ctrl.Len() - 1
				if title != "" {
					if err := s.ctrl.EditField(i, model.FieldTitle, title); err != nil {
						return err
					}
				}
				if content != "" {
					if err := s.ctrl.EditField(i, model.FieldContent, content); err != nil {
						return err
					}
				}
				if hide {
					if err := s.ctrl.ToggleHide(i, true); err != nil {
						return err
					}
				}
				a.printer().OK(fmt.Sprintf("added #%d", i+1))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title of the new item")
	cmd.Flags().StringVar(&content, "content", "", "content of the new item")
	cmd.Flags().BoolVar(&hide, "hide", false, "add the item hidden")
	return cmd
}

func (a *app) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <index> <title|content> <value...>",
		Short: "Replace the title or content of an item",
		Args:  rangeArgs(2, -1, "set <index> <title|content> <value...>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseField(args[1])
			if err != nil {
				return err
			}
			value := strings.Join(args[2:], " ")
			return a.withSession(func(s *session) error {
				i, err := parseIndex(args[0], s.ctrl.Len())
				if err != nil {
					return err
				}
				if err := s.ctrl.EditField(i, f, value); err != nil {
					return err
				}
				a.printer().OK(fmt.Sprintf("updated %s of #%d", f, i+1))
				return nil
			})
		},
	}
}

func (a *app) hideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hide <index> [true|false]",
		Short: "Set the hide flag of an item (default true)",
		Args:  rangeArgs(1, 2, "hide <index> [true|false]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			hide := true
			if len(args) == 2 {
				b, err := parseBool(args[1])
				if err != nil {
					return err
				}
				hide = b
			}
			return a.withSession(func(s *session) error {
				i, err := parseIndex(args[0], s.ctrl.Len())
				if err != nil {
					return err
				}
				if err := s.ctrl.ToggleHide(i, hide); err != nil {
					return err
				}
				state := "shown"
				if hide {
					state = "hidden"
				}
				a.printer().OK(fmt.Sprintf("#%d %s", i+1, state))
				return nil
			})
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Remove an item",
		Args:  exactArgs(1, "rm <index>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				i, err := parseIndex(args[0], s.ctrl.Len())
				if err != nil {
					return err
				}
				if err := s.ctrl.RemoveAt(i); err != nil {
					return err
				}
				a.printer().OK("removed")
				return nil
			})
		},
	}
}

func (a *app) mvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move an item to another position",
		Args:  exactArgs(2, "mv <from> <to>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				n := s.ctrl.Len()
				from, err := parseIndex(args[0], n)
				if err != nil {
					return err
				}
				to, err := parseIndex(args[1], n)
				if err != nil {
					return err
				}
				if err := s.ctrl.MoveItem(from, to); err != nil {
					return err
				}
				a.printer().OK(fmt.Sprintf("moved #%d to #%d", from+1, to+1))
				return nil
			})
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past writes of the field (sqlite backend)",
		Args:  exactArgs(0, "history [--limit n]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				if s.sqlite == nil {
					return usagef("history needs the sqlite backend")
				}
				revs, err := s.sqlite.Revisions(limit)
				if err != nil {
					return err
				}
				p := a.printer()
				if len(revs) == 0 {
					p.Println(p.C(p.Theme().Muted, "no revisions"))
					return nil
				}
				for _, r := range revs {
					visible, hidden := model.Stats(r.Items)
					p.Println(fmt.Sprintf("%s  %s  %d items (%d hidden)",
						p.C(p.Theme().Accent, r.ID[:8]),
						r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						visible+hidden, hidden))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of revisions to show (0 for all)")
	return cmd
}
