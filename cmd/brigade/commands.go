package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/brigade/internal/command"
	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/station"
)

func newStationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "stations",
		Aliases: []string{"ls"},
		Short:   "List stations with their dishes and stock",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.out.Stations(a.reg.Stations())
		},
	}
}

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu [query]",
		Short: "List catalog dishes, optionally filtered by name, cuisine or ingredient",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				dishes []domain.DishSummary
				err    error
			)
			if len(args) == 1 {
				dishes, err = a.catalog.Search(cmd.Context(), args[0])
			} else {
				dishes, err = a.catalog.List(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("listing dishes: %w", err)
			}
			a.out.Menu(dishes)
			return nil
		},
	}
}

func newFulfillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fulfill <dish>",
		Short: "Report which stations can fulfill an order for a dish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dish := args[0]
			ok := a.reg.CanFulfillAnywhere(dish)
			a.out.Outcome(ok, "fulfill "+dish, strings.Join(a.reg.FulfillingStations(dish), ", "))
			if !ok {
				return fmt.Errorf("no station can fulfill %q", dish)
			}
			return nil
		},
	}
}

func newPrepareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prepare <station> <dish>",
		Short: "Prepare a dish at a station and show the remaining stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stationName, dish := args[0], args[1]
			ok := a.reg.PrepareAt(stationName, dish)
			a.out.Outcome(ok, fmt.Sprintf("prepare %s at %s", dish, stationName), "")
			if !ok {
				return fmt.Errorf("could not prepare %q at %q", dish, stationName)
			}
			if s := a.reg.FindStation(stationName); s != nil {
				a.out.Stations([]*station.Station{s})
			}
			return nil
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	var showStations bool
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a kitchen script (use - for stdin)",
		Long: `Run a kitchen script against the loaded layout. One command per line:

  add <station>                 remove <station>
  front <station>               merge <into> <from>
  assign <station> <dish>       stock <station> <ingredient> <qty> [price]
  can <dish>                    prepare <station> <dish>
  list

Quote names containing spaces. Lines starting with # are comments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}

			exec := command.NewExecutor(a.reg, a.catalog, a.log)
			results, err := exec.Run(cmd.Context(), in)
			for _, r := range results {
				a.out.Outcome(r.OK, r.Command.String(), r.Detail)
			}
			if err != nil {
				return err
			}
			if showStations {
				a.out.Stations(a.reg.Stations())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showStations, "stations", "s", false, "print the stations after the script finishes")
	return cmd
}
