package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/api/validation"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/service"
	"github.com/spf13/cobra"
)

func metricsCmd() *cobra.Command {
	var req domain.CalculateMetricsRequest

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute body-composition metrics and print them as JSON",
		Example: `  alcaravan metrics --gender Femenino --age 34 --weight 60 --height 165 \
    --waist 75 --hip 100 --neck 33`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fieldErrors := validation.Validate(req); fieldErrors != nil {
				msgs := make([]string, 0, len(fieldErrors))
				for _, fe := range fieldErrors {
					msgs = append(msgs, fe.Field+" "+fe.Message)
				}
				return fmt.Errorf("invalid measurements: %s", strings.Join(msgs, "; "))
			}

			resp, err := service.NewMetricsService(time.Now).Calculate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Gender, "gender", "", "gender label, e.g. male, F, Femenino")
	flags.IntVar(&req.Age, "age", 0, "age in years")
	flags.StringVar(&req.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD), used when --age is not set")
	flags.Float64Var(&req.Weight, "weight", 0, "weight in kg")
	flags.Float64Var(&req.Height, "height", 0, "height in cm")
	flags.Float64Var(&req.Waist, "waist", 0, "waist circumference in cm")
	flags.Float64Var(&req.Hip, "hip", 0, "hip circumference in cm")
	flags.Float64Var(&req.Neck, "neck", 0, "neck circumference in cm")
	_ = cmd.MarkFlagRequired("gender")

	return cmd
}

type slotOutput struct {
	Label       string          `json:"label"`
	StartTime   string          `json:"start_time,omitempty"`
	MinuteOfDay *int            `json:"minute_of_day,omitempty"`
	Window      schedule.Window `json:"window"`
	Layout      schedule.Layout `json:"layout"`
}

func slotCmd() *cobra.Command {
	window := schedule.Window{StartHour: 8, EndHour: 17, PixelsPerMinute: 1.5, NudgePx: 1}

	cmd := &cobra.Command{
		Use:     "slot <time-label>",
		Short:   "Place a time label on the day grid",
		Example: `  alcaravan slot "02:30 PM" --start-hour 8 --end-hour 17`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if window.StartHour < 0 || window.EndHour > 24 || window.StartHour >= window.EndHour || window.PixelsPerMinute <= 0 {
				return fmt.Errorf("invalid window: need 0 <= start-hour < end-hour <= 24 and px-per-minute > 0")
			}

			out := slotOutput{
				Label:  args[0],
				Window: window,
				Layout: schedule.PositionFromTime(args[0], window),
			}
			if minute, ok := schedule.MinuteOfDay(args[0]); ok {
				out.MinuteOfDay = &minute
				if minute < 24*60 {
					out.StartTime = schedule.FormatMinuteOfDay(minute)
				}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&window.StartHour, "start-hour", window.StartHour, "first visible hour")
	flags.IntVar(&window.EndHour, "end-hour", window.EndHour, "hour after the last visible one")
	flags.Float64Var(&window.PixelsPerMinute, "px-per-minute", window.PixelsPerMinute, "vertical scale")
	flags.Float64Var(&window.NudgePx, "nudge", window.NudgePx, "constant added to visible offsets")

	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
