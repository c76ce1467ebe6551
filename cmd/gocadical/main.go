//go:build cgo
// +build cgo

// Command gocadical solves DIMACS CNF files with the CaDiCaL engine.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vhavlena/cadical-go/cadical"
)

type rootOptions struct {
	verbose bool
	logJSON bool
}

func (o *rootOptions) logger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if o.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if o.logJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// newRootCmd builds the command tree. The exit status of a solve is stored
// in *code.
func newRootCmd(intr *interrupts, code *int) *cobra.Command {
	o := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "gocadical",
		Short:         "Solve SAT problems in DIMACS CNF with CaDiCaL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "use debug log level")
	cmd.PersistentFlags().BoolVar(&o.logJSON, "log-json", false, "log in JSON instead of text")

	cmd.AddCommand(newSolveCmd(o, intr, code))
	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "Print the engine's options and configurations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cadical.Usage()
			cadical.Configurations()
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the engine version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "c version %s\nc signature %s\n", cadical.Version(), cadical.Signature())
			return cadical.Build(cmd.OutOrStdout(), "c ")
		},
	})
	return cmd
}

func main() {
	intr := newInterrupts()
	stop := intr.listen()
	code := 0
	err := newRootCmd(intr, &code).Execute()
	stop()
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	os.Exit(code)
}
