package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"datesieve/internal/core/datescan"
	"datesieve/internal/core/version"
	"datesieve/internal/platform/config"
	"datesieve/internal/platform/logger"
	"datesieve/internal/services/api/dates/domain"
	"datesieve/internal/services/api/dates/service"
)

type app struct {
	plain   bool
	formats []string
	svc     *service.Svc
	now     func() time.Time
}

func newRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:           "datesieve",
		Short:         "Find, parse and normalize dates in free text",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			engine := datescan.NewWithOptions(nil, datescan.Options{Logger: logger.Named("engine")})
			opt := service.FromConfig(config.App())
			opt.Now = a.now
			a.svc = service.New(engine, opt)
		},
	}
	root.PersistentFlags().BoolVar(&a.plain, "plain", false, "print normalized values instead of JSON lines")

	root.AddCommand(
		a.findCmd(),
		a.firstCmd(),
		a.parseCmd(),
		a.relativeCmd(),
		a.intervalCmd(),
		a.diffCmd(),
		a.formatsCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [text...]",
		Short: "Print every date in the text, in order of appearance",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			found, err := a.svc.Find(cmd.Context(), domain.FindInput{Text: text, Formats: a.formats})
			if err != nil {
				return err
			}
			for _, d := range found {
				if err := a.emit(cmd.OutOrStdout(), d); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&a.formats, "formats", nil, "restrict to these catalog names (comma separated)")
	return cmd
}

func (a *app) firstCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "first [text...]",
		Short: "Print the most specific date in the text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			d, err := a.svc.First(cmd.Context(), domain.FirstInput{Text: text, Format: format})
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "only try this catalog name")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse input that is exactly one date; stdin is read line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.parseOne(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " "), format)
			}
			text, err := input(cmd, nil)
			if err != nil {
				return err
			}
			var failed error
			for _, line := range strings.Split(text, "\n") {
				if strings.TrimSpace(line) == "" {
					continue
				}
				if err := a.parseOne(cmd.Context(), cmd.OutOrStdout(), line, format); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", strings.TrimSpace(line), err)
					failed = err
				}
			}
			return failed
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "only try this catalog name")
	return cmd
}

func (a *app) parseOne(ctx context.Context, w io.Writer, text, format string) error {
	d, err := a.svc.Parse(ctx, domain.ParseInput{Text: text, Format: format})
	if err != nil {
		return err
	}
	return a.emit(w, d)
}

func (a *app) relativeCmd() *cobra.Command {
	var reference string
	cmd := &cobra.Command{
		Use:   "relative [text...]",
		Short: `Resolve "N units ago" against --reference or now`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			d, err := a.svc.Relative(cmd.Context(), domain.RelativeInput{Text: text, Reference: reference})
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), d)
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "reference time in any common layout, UTC when no zone is given")
	return cmd
}

func (a *app) intervalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interval [text...]",
		Short: "Sum a duration phrase such as 4 hrs 20 mins",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			out, err := a.svc.Interval(cmd.Context(), domain.IntervalInput{Text: text})
			if err != nil {
				return err
			}
			if a.plain {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Seconds)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Difference between two dates at their common precision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.svc.Diff(cmd.Context(), domain.DiffInput{A: args[0], B: args[1], Unit: unit})
			if err != nil {
				return err
			}
			if a.plain {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Value)
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "second", "second, minute, hour or day")
	return cmd
}

func (a *app) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the format catalog in scan order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.svc.Formats(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range rows {
				if a.plain {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-9s %s\n", r.Name, r.Rank, r.Layout); err != nil {
						return err
					}
					continue
				}
				if err := writeJSON(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), version.Info("datesieve"))
		},
	}
}

func (a *app) emit(w io.Writer, d domain.Date) error {
	if a.plain {
		_, err := fmt.Fprintln(w, d.Normalized)
		return err
	}
	return writeJSON(w, d)
}

func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// input joins args, or reads all of stdin when there are none
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
