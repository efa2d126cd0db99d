package main

import (
	"encoding/json"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skip-mev/escrow-auction/simapp"
)

// NewRunCmd returns the command that plays a scenario and prints the step
// results and the final state.
func NewRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Deliver the configured scenario and print the resulting state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, results, err := setupApp(v)
			if err != nil {
				return err
			}

			out := struct {
				Steps []StepResult               `json:"steps"`
				State map[string]json.RawMessage `json:"state"`
			}{
				Steps: results,
				State: app.ExportGenesis(),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().Bool(flagStrict, false, "stop at the first failing step")

	return cmd
}

// setupApp builds an in-memory app, plays the scenario and commits it.
func setupApp(v *viper.Viper) (*simapp.App, []StepResult, error) {
	logger, err := newLogger(v)
	if err != nil {
		return nil, nil, err
	}

	scenario, err := LoadScenario(v)
	if err != nil {
		return nil, nil, err
	}

	app, err := simapp.New(logger, dbm.NewMemDB())
	if err != nil {
		return nil, nil, err
	}

	if err := app.InitChain(nil); err != nil {
		return nil, nil, err
	}

	runner := NewRunner(app, scenario)
	if err := runner.Setup(); err != nil {
		return nil, nil, err
	}

	results, err := runner.Run(v.GetBool(flagStrict))
	if err != nil {
		return nil, nil, err
	}

	for _, res := range results {
		if res.Error != "" {
			logger.Info("step failed", "step", res.Step, "action", res.Action, "auction", res.Auction, "err", res.Error)
		}
	}

	app.Commit()

	return app, results, nil
}
