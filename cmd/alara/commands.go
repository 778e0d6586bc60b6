package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/alara/result"
	"github.com/katalvlaran/alara/solver"
)

func solveCommand(ctx *cli.Context) error {
	sv, err := loadProblem(ctx.String("input"))
	if err != nil {
		return err
	}

	out, err := sv.Solve()
	if err != nil {
		return err
	}

	printOutput(out)

	if path := ctx.String("dump"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := result.WriteDump(f, out.Records()); err != nil {
			return err
		}
		fmt.Printf("wrote %d records to %s\n", len(out.Targets), path)
	}
	return nil
}

func printOutput(out *solver.Output) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprint(w, "target\tmixture\tcomponent\tnuclide\tshutdown")
	for _, tau := range out.CoolingTimes {
		fmt.Fprintf(w, "\t%gs", tau)
	}
	fmt.Fprintln(w)

	for _, to := range out.Targets {
		for _, cr := range to.PerComponent {
			for _, row := range cr.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s", to.Target, cr.Mixture, cr.Component, row.KZA)
				for _, v := range row.Values {
					fmt.Fprintf(w, "\t%.6e", v)
				}
				fmt.Fprintln(w)
			}
		}
	}
}

func inspectCommand(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("expected exactly one dump file argument")
	}
	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := result.ReadDump(f)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "target\tcomponent\tvalues")
	for _, rec := range recs {
		for _, e := range rec.Entries {
			fmt.Fprintf(w, "%s\t%d", rec.Target, e.ComponentID)
			for _, v := range e.Values {
				fmt.Fprintf(w, "\t%.6e", v)
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
