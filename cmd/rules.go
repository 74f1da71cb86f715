package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain the deduction rules",
	Run: func(cmd *cobra.Command, args []string) {
		title := color.New(color.Bold)
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)

		title.Println("venndrop rules")
		fmt.Println()
		fmt.Println("Each circle hides one answer card with a color, a shape, and a size.")
		fmt.Println("Drag shapes from the tray; the badge shows the verdict on release:")
		fmt.Println()
		fmt.Printf("  overlap      %s if the shape shares at least one attribute with\n", green.Sprint("green"))
		fmt.Println("               EACH hidden answer (any axes, same or different)")
		fmt.Printf("  circle/box   %s only for the exact hidden card of that side,\n", green.Sprint("green"))
		fmt.Printf("               identical on all three axes; anything else is %s\n", red.Sprint("red"))
		fmt.Println()
		fmt.Println("Dropping outside the diagram returns the shape to the tray.")
		fmt.Println("Keys: r restart round, s toggle sound, q quit.")
	},
}
