package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/kmorton/planwise/internal/calculation"
	"github.com/kmorton/planwise/internal/compare"
	"github.com/kmorton/planwise/internal/config"
	"github.com/kmorton/planwise/internal/domain"
	"github.com/kmorton/planwise/internal/milestone"
	"github.com/kmorton/planwise/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "planwise",
	Short: "Personal finance planning calculator",
	Long:  "Debt payoff simulation, financial milestone tracking, and tax contribution planning from a single snapshot file",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "planwise %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadSnapshot parses and sanitizes the snapshot file named in args[0].
func loadSnapshot(args []string) (*domain.FinancialSnapshot, error) {
	parser := config.NewInputParser()
	return parser.LoadFromFile(args[0])
}

func payoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payoff [snapshot-file]",
		Short: "Simulate debt payoff under the preferred strategy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}

			strategy := snapshot.Debt.PreferredStrategy
			if s, _ := cmd.Flags().GetString("strategy"); s != "" {
				strategy = domain.Strategy(s)
				if !strategy.Valid() {
					return fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
				}
			}
			extra := snapshot.ExtraPayment()
			if e, _ := cmd.Flags().GetFloat64("extra"); cmd.Flags().Changed("extra") {
				extra = decimal.NewFromFloat(e)
			}

			sim := calculation.NewPayoffSimulator()
			if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
				sim.SetLogger(simpleCLILogger{})
			}
			result := sim.Simulate(snapshot.Debts, extra, strategy, time.Now())
			fmt.Print(output.FormatPaydown(result))
			return nil
		},
	}
	cmd.Flags().String("strategy", "", "override the snapshot's strategy (avalanche|snowball)")
	cmd.Flags().Float64("extra", 0, "override the monthly extra-payment pool")
	cmd.Flags().Bool("debug", false, "log per-month simulation events")
	return cmd
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [snapshot-file]",
		Short: "Compare avalanche and snowball payoff strategies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}

			extra := snapshot.ExtraPayment()
			if e, _ := cmd.Flags().GetFloat64("extra"); cmd.Flags().Changed("extra") {
				extra = decimal.NewFromFloat(e)
			}

			engine := compare.NewEngine()
			result := engine.CompareStrategies(snapshot.Debts, extra, time.Now())
			if result == nil {
				fmt.Println("No active debts. Nothing to compare.")
				return nil
			}

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				out, err := (&compare.JSONFormatter{}).Format(result)
				if err != nil {
					return err
				}
				fmt.Print(out)
			case "csv":
				out, err := (&compare.CSVFormatter{}).Format(result)
				if err != nil {
					return err
				}
				fmt.Print(out)
			default:
				fmt.Print((&compare.TableFormatter{}).Format(result))
			}
			return nil
		},
	}
	cmd.Flags().String("format", "table", "output format (table|json|csv)")
	cmd.Flags().Float64("extra", 0, "override the monthly extra-payment pool")
	return cmd
}

func milestonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "milestones [snapshot-file]",
		Short: "Evaluate all financial milestones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			engine := milestone.NewEngine()
			milestones := engine.GetMilestones(snapshot)
			next := engine.GetNextMilestone(snapshot)
			fmt.Print(output.FormatSummary(calculation.Summarize(snapshot)))
			fmt.Println()
			fmt.Print(output.FormatMilestones(milestones, next))
			return nil
		},
	}
}

func nextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next [snapshot-file]",
		Short: "Show the next recommended milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			next := milestone.NewEngine().GetNextMilestone(snapshot)
			if next == nil {
				fmt.Println("All milestones completed. Nothing left to recommend.")
				return nil
			}
			fmt.Printf("%s: %s\n", next.Title, next.Description)
			return nil
		},
	}
}

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax [snapshot-file]",
		Short: "Compute a single tax scenario from the snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}

			income := snapshot.General.AnnualIncome
			if v, _ := cmd.Flags().GetFloat64("income"); cmd.Flags().Changed("income") {
				income = decimal.NewFromFloat(v)
			}
			deductions := decimal.Zero
			if v, _ := cmd.Flags().GetFloat64("deductions"); cmd.Flags().Changed("deductions") {
				deductions = decimal.NewFromFloat(v)
			}

			calc := calculation.NewScenarioCalculator()
			scenario := calc.ComputeTaxScenario(income, deductions, snapshot.General.FilingStatus, snapshot.General.MSA)
			fmt.Print(output.FormatTaxScenario("Tax scenario", scenario))
			return nil
		},
	}
	cmd.Flags().Float64("income", 0, "override annual gross income")
	cmd.Flags().Float64("deductions", 0, "pre-tax deductions to apply")
	return cmd
}

func destinyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "destiny [snapshot-file]",
		Short: "Compare baseline vs with-allocations tax scenarios",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := loadSnapshot(args)
			if err != nil {
				return err
			}
			engine := calculation.NewTaxDestinyEngine()
			if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
				engine.SetLogger(simpleCLILogger{})
			}
			result := engine.ComputeTaxDestiny(snapshot)
			if result == nil {
				fmt.Println("No annual income in the snapshot; nothing to plan.")
				return nil
			}
			fmt.Print(output.FormatTaxDestiny(result))
			return nil
		},
	}
	cmd.Flags().Bool("debug", false, "log engine events")
	return cmd
}

func main() {
	rootCmd.AddCommand(
		payoffCmd(),
		compareCmd(),
		milestonesCmd(),
		nextCmd(),
		taxCmd(),
		destinyCmd(),
		versionCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
