// Command plotcore evaluates plot attribute values and chooses axis steps.
package main

import (
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "plotcore",
	Short: "Evaluate plot attributes and choose axis steps",
	Long: `plotcore reads the attribute values of a plot description: exact numbers
like "-3pi/4", tuples like "(0, 2pi)", and MathML expressions.

  eval  - print exact labels and approximations of attributes
  step  - choose the tick step for an axis`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(errColor.Sprint(err))
	}
}

var (
	errColor   = color.New(color.FgRed)
	exactColor = color.New(color.FgCyan, color.Bold)
	echoColor  = color.New(color.Faint)
	nameColor  = color.New(color.FgYellow)
)
