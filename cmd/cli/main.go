package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hexcast/app"
	"hexcast/internal/casting"
	"hexcast/internal/config"
	"hexcast/internal/fusion"
	"hexcast/internal/signal"
	"hexcast/pkg/logger"
)

func main() {
	// Optional .env; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "hexcast",
		Short: "Deterministic hexagram casting and metric signal evaluation",
	}

	rootCmd.AddCommand(
		newCastCmd(),
		newSignalsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, OutputFile: cfg.Log.OutputFile}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newCastCmd() *cobra.Command {
	var seed int64
	var seedText string
	var method string
	var profile string
	var goal, contextText, intent, riskPref string
	var options []string
	var risk, urgency, agency float64
	var trend bool

	cmd := &cobra.Command{
		Use:   "cast",
		Short: "Cast a hexagram reading",
		Long: `Cast a six-line hexagram, derive its primary, relating and mutual
structures, and fuse them with the active weighting profile.

Example: hexcast cast --seed 42 --method coin --profile classic --goal "change jobs" --context "offer on the table"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			policy, err := config.LoadPolicy(cfg.Paths.PolicyFile)
			if err != nil {
				return err
			}
			engine, err := fusion.NewEngine(policy)
			if err != nil {
				return err
			}

			defaultMethod, err := casting.ParseMethod(cfg.Method)
			if err != nil {
				return err
			}
			service := app.NewReadingService(engine, cfg.Profile, defaultMethod)

			req := app.ReadingRequest{
				SeedText: seedText,
				Method:   method,
				Profile:  profile,
				Features: buildFeatures(cmd, goal, contextText, options, intent, riskPref,
					risk, urgency, agency, trend),
			}
			if cmd.Flags().Changed("seed") {
				resolved := uint32(seed)
				req.Seed = &resolved
			}

			reading, err := service.NewReading(req)
			if err != nil {
				return err
			}
			return printJSON(reading)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "integer seed for exact replay")
	cmd.Flags().StringVar(&seedText, "seed-text", "", "string seed, hashed deterministically")
	cmd.Flags().StringVar(&method, "method", "", "casting method: coin, yarrow, uniform")
	cmd.Flags().StringVar(&profile, "profile", "", "weighting profile: classic, balanced, dynamic")
	cmd.Flags().StringVar(&goal, "goal", "", "goal statement")
	cmd.Flags().StringVar(&contextText, "context", "", "situation context")
	cmd.Flags().StringSliceVar(&options, "options", nil, "options under consideration")
	cmd.Flags().StringVar(&intent, "intent", "", "intent category (timing, risk)")
	cmd.Flags().StringVar(&riskPref, "risk-pref", "", "risk preference (conservative, aggressive)")
	cmd.Flags().Float64Var(&risk, "risk", 0, "risk score in [0,1]")
	cmd.Flags().Float64Var(&urgency, "urgency", 0, "urgency in [0,1]")
	cmd.Flags().Float64Var(&agency, "agency", 0, "agency in [0,1]")
	cmd.Flags().BoolVar(&trend, "trend", false, "trend is favorable")
	return cmd
}

func newSignalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signals [metric=v1,v2,...]...",
		Short: "Evaluate metric series against threshold definitions",
		Long: `Evaluate one or more labeled series against the configured threshold
definitions, reporting zone, signal, slope, confidence, crossings and
reversals.

Example: hexcast signals progress=0.2,0.35,0.5,0.62,0.71 stress=0.4,0.5,0.65`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			defs, err := config.LoadThresholds(cfg.Paths.ThresholdsFile)
			if err != nil {
				return err
			}
			service := app.NewSignalService(signal.NewEvaluator(defs))

			series, err := parseSeriesArgs(args)
			if err != nil {
				return err
			}
			return printJSON(service.EvaluateAll(series))
		},
	}
	return cmd
}

func buildFeatures(cmd *cobra.Command, goal, contextText string, options []string,
	intent, riskPref string, risk, urgency, agency float64, trend bool) fusion.FeatureBundle {

	feats := fusion.FeatureBundle{
		Goal:           goal,
		Context:        contextText,
		Options:        options,
		Intent:         intent,
		RiskPreference: riskPref,
	}
	// Only flags the user actually set become present features.
	if cmd.Flags().Changed("risk") {
		feats.RiskScore = fusion.Float64(risk)
	}
	if cmd.Flags().Changed("urgency") {
		feats.Urgency = fusion.Float64(urgency)
	}
	if cmd.Flags().Changed("agency") {
		feats.Agency = fusion.Float64(agency)
	}
	if cmd.Flags().Changed("trend") {
		feats.TrendPositive = fusion.Bool(trend)
	}
	return feats
}

func parseSeriesArgs(args []string) ([]signal.Series, error) {
	series := make([]signal.Series, 0, len(args))
	for _, arg := range args {
		name, list, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid series %q, want metric=v1,v2,...", arg)
		}
		parts := strings.Split(list, ",")
		values := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid value %q in series %q: %w", p, name, err)
			}
			values = append(values, v)
		}
		series = append(series, signal.Series{ID: name, Values: values})
	}
	return series, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
