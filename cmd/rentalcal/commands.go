package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/vehicle-marketplace/rental-search/internal/availability"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
	"github.com/vehicle-marketplace/rental-search/internal/usecase"
)

const appVersion = "1.0.0"

// nowLayouts are accepted by --now, read in the --tz location.
var nowLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// options are the persistent flags shared by every subcommand.
type options struct {
	tz       string
	now      string
	buffer   time.Duration
	duration time.Duration
	interval time.Duration
	asJSON   bool
}

// useCase builds the rental search use case from the flags. Only the
// calculator-backed operations are reachable from the CLI.
func (o *options) useCase() (usecase.RentalSearchUseCase, error) {
	loc, err := timeutil.LoadLocation(o.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz: %w", err)
	}

	var clock timeutil.Clock = timeutil.NewRealClock()
	if strings.TrimSpace(o.now) != "" {
		t, err := parseNow(o.now, loc)
		if err != nil {
			return nil, err
		}
		clock = timeutil.NewMockClock(t)
	}

	calc := availability.NewCalculator(clock, &availability.Config{
		BookingBuffer:   o.buffer,
		NoBookingBuffer: o.buffer == 0,
		RentalDuration:  o.duration,
		SlotInterval:    o.interval,
		Location:        loc,
	})
	return usecase.NewRentalSearchUseCase(calc, nil, nil), nil
}

func parseNow(s string, loc *time.Location) (time.Time, error) {
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(s), loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want YYYY-MM-DDTHH:MM or RFC3339", s)
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rentalcal",
		Short:         "Rental availability window calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.Version = appVersion
	root.SetVersionTemplate("rentalcal v{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&opts.tz, "tz", timeutil.IST, "IANA timezone whose calendar defines today")
	pf.StringVar(&opts.now, "now", "", "Fixed current time (YYYY-MM-DDTHH:MM or RFC3339); defaults to the system clock")
	pf.DurationVar(&opts.buffer, "buffer", availability.DefaultBookingBuffer, "Booking buffer before the earliest slot today")
	pf.DurationVar(&opts.duration, "duration", availability.DefaultRentalDuration, "Rental duration used to derive the dropoff")
	pf.DurationVar(&opts.interval, "interval", availability.DefaultSlotInterval, "Slot spacing; must divide 24h")
	pf.BoolVar(&opts.asJSON, "json", false, "Print JSON instead of text")

	root.AddCommand(
		newReferenceCmd(opts),
		newCalendarCmd(opts),
		newSlotsCmd(opts),
		newDropoffCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

func newReferenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Show today and the buffered clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}
			ref := uc.Reference(cmd.Context())
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), ref)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "today:           %s\nnow with buffer: %s\ntimezone:        %s\n",
				ref.Today, ref.NowWithBuffer, ref.Timezone)
			return nil
		},
	}
}

func newCalendarCmd(opts *options) *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid; past days are marked with a dash, today with an asterisk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}

			var q usecase.CalendarQuery
			if cmd.Flags().Changed("month") {
				m := month - 1
				q.Month = &m
			}
			if cmd.Flags().Changed("year") {
				q.Year = &year
			}

			res, err := uc.Calendar(cmd.Context(), q)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printCalendar(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default current)")
	cmd.Flags().IntVar(&year, "year", 0, "Year (default current)")
	return cmd
}

func newSlotsCmd(opts *options) *cobra.Command {
	var date, role, pickupDate, pickupTime string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the time slots of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}
			if date == "" {
				date = uc.Reference(cmd.Context()).Today
			}

			slots, err := uc.TimeSlots(cmd.Context(), usecase.SlotQuery{
				Date:       date,
				Role:       domain.ParseRole(role),
				PickupDate: pickupDate,
				PickupTime: pickupTime,
			})
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), slots)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, s := range slots {
				mark := ""
				if !s.Selectable {
					mark = "unavailable"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Value, s.Display, mark)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&role, "role", string(domain.RolePickup), "pickup or dropoff")
	cmd.Flags().StringVar(&pickupDate, "pickup-date", "", "Pickup date when --role=dropoff")
	cmd.Flags().StringVar(&pickupTime, "pickup-time", "", "Pickup time when --role=dropoff")
	return cmd
}

func newDropoffCmd(opts *options) *cobra.Command {
	var pickupDate, pickupTime string

	cmd := &cobra.Command{
		Use:   "dropoff",
		Short: "Derive the dropoff one rental duration after pickup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}
			res, err := uc.DeriveDropoff(cmd.Context(), pickupDate, pickupTime)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.DropoffDate, res.DropoffTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&pickupDate, "pickup-date", "", "Pickup date YYYY-MM-DD")
	cmd.Flags().StringVar(&pickupTime, "pickup-time", "", "Pickup time HH:MM")
	_ = cmd.MarkFlagRequired("pickup-date")
	_ = cmd.MarkFlagRequired("pickup-time")
	return cmd
}

func newValidateCmd(opts *options) *cobra.Command {
	var q struct {
		date, clock, role, pickupDate, pickupTime string
	}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a date and time can be chosen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := opts.useCase()
			if err != nil {
				return err
			}
			res, err := uc.ValidateSelection(cmd.Context(), usecase.SelectionQuery{
				Date:       q.date,
				Time:       q.clock,
				Role:       domain.ParseRole(q.role),
				PickupDate: q.pickupDate,
				PickupTime: q.pickupTime,
			})
			if err != nil {
				return err
			}
			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "date: %s\n", verdict(res.DateValid))
			if q.clock != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "time: %s\n", verdict(res.TimeValid))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&q.date, "date", "", "Date YYYY-MM-DD")
	cmd.Flags().StringVar(&q.clock, "time", "", "Time HH:MM (optional)")
	cmd.Flags().StringVar(&q.role, "role", string(domain.RolePickup), "pickup or dropoff")
	cmd.Flags().StringVar(&q.pickupDate, "pickup-date", "", "Pickup date when --role=dropoff")
	cmd.Flags().StringVar(&q.pickupTime, "pickup-time", "", "Pickup time when --role=dropoff")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "not selectable"
}

// printCalendar renders the grid one week per line. Days outside the month are blank.
func printCalendar(w io.Writer, res *usecase.CalendarResult) {
	first := time.Date(res.View.Year, time.Month(res.View.Month+1), 1, 0, 0, 0, 0, time.UTC)
	fmt.Fprintf(w, "%s\n", first.Format("January 2006"))
	fmt.Fprintln(w, " Su  Mo  Tu  We  Th  Fr  Sa")

	var line strings.Builder
	for i, d := range res.Days {
		switch {
		case !d.IsCurrentMonth:
			line.WriteString("    ")
		case d.IsToday:
			fmt.Fprintf(&line, "%3d*", d.Day)
		case d.IsPast:
			fmt.Fprintf(&line, "%3d-", d.Day)
		default:
			fmt.Fprintf(&line, "%3d ", d.Day)
		}
		if i%7 == 6 {
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
