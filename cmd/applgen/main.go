// Command applgen writes the N-ary Apply/Partial entry points of a
// container kind. Each container package runs it through go generate:
//
//	//go:generate go run ../../cmd/applgen --kind seq --out apply_gen.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"
)

type options struct {
	kind     string
	out      string
	maxArity int
	verbose  bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "applgen",
		Short:         "Generate N-ary applicative helpers for a container kind",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(opts)
		},
	}
	flags := root.Flags()
	flags.StringVar(&opts.kind, "kind", "", "container kind: "+strings.Join(kindNames(), ", "))
	flags.StringVar(&opts.out, "out", "apply_gen.go", "output file")
	flags.IntVar(&opts.maxArity, "max-arity", maxArity, "highest arity to generate")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	_ = root.MarkFlagRequired("kind")
	return root
}

func generate(opts *options) error {
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	k, found := kinds[opts.kind]
	if !found {
		return fmt.Errorf("unknown kind %q, want one of: %s", opts.kind, strings.Join(kindNames(), ", "))
	}

	logger := log.WithFields(log.Fields{"kind": opts.kind, "out": opts.out})
	logger.Debugf("rendering arities %d..%d", minArity, opts.maxArity)

	src, err := render(k, opts.maxArity)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	logger.Infof("wrote %d bytes", len(src))
	return nil
}

func main() {
	log.SetHandler(cli.New(os.Stderr))
	log.SetLevel(log.InfoLevel)

	if err := newRootCommand().Execute(); err != nil {
		log.WithError(err).Fatal("applgen")
	}
}
