package cmd

import (
	"fmt"

	"github.com/ms-henglu/logtree/tree"
	"github.com/spf13/cobra"
)

func NewDemoCmd() *cobra.Command {
	var charSet string
	var all bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Prints a sample build log in one or all character sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			sets := []tree.CharSet{tree.CharSetDefault}
			if all {
				sets = tree.CharSets()
			} else if charSet != "" {
				cs, err := tree.ParseCharSet(charSet)
				if err != nil {
					return fmt.Errorf("%w (available: %v)", err, tree.CharSets())
				}
				sets = []tree.CharSet{cs}
			}

			sink := tree.WriterSink{W: cmd.OutOrStdout()}
			for _, cs := range sets {
				if _, err := demoTree(cs).DrawTo(sink); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&charSet, "charset", "c", "", "Character set to draw with")
	cmd.Flags().BoolVar(&all, "all", false, "Draw the sample once per character set")
	return cmd
}

// demoTree builds a sample build log that uses every style bucket.
func demoTree(cs tree.CharSet) *tree.Node {
	root := tree.New(fmt.Sprintf("Build (%s)", cs),
		tree.WithCharSet(cs),
		tree.WithStyles(tree.Style{Bold: tree.Bool(true)}),
	)

	compile := root.Colored(tree.ColorCyan, "Compiling", tree.WithChildStyles(tree.Style{Italic: tree.Bool(true)}))
	compile.Colored(tree.ColorGreen, "main.go ok")
	compile.Colored(tree.ColorYellow, "util.go 1 warning").
		Add("unused variable 'tmp'", tree.WithStyles(tree.Style{Color: tree.ColorBrightBlack}))

	test := root.Add("Testing", tree.WithCascadingStyles(tree.Style{Color: tree.ColorBrightBlue}))
	test.Add("unit: 42 passed")
	test.Colored(tree.ColorRed, "e2e: 1 failed", tree.WithStyles(tree.Style{Inverse: tree.Bool(true)}))

	root.Add("Linking").Add("bin/app", tree.WithStyles(tree.Style{Underline: tree.Bool(true)}))
	return root
}
