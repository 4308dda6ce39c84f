package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/NickyBoy89/solpact/nodeutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// cliFlags holds the values of every command-line flag
type cliFlags struct {
	output     string
	outDir     string
	configPath string
	solcPath   string
	sourcePath string
	banner     bool
	keepGoing  bool
	watch      bool
	verbose    bool
}

var flags cliFlags

var rootCmd = &cobra.Command{
	Use:   "solpact [flags] <input.sol | input.json>...",
	Short: "Transpiles Solidity contracts into Compact",
	Long: `solpact converts Solidity contracts into Compact programs.

Solidity files are parsed with solc, and a JSON file holding an AST that solc
already produced can be given instead. With a single input and no output
flags, the result is written to standard output.`,
	Args:          cobra.MinimumNArgs(1),
	RunE:          cmdRunTranspile,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "file to write the output to (single input only)")
	rootCmd.Flags().StringVar(&flags.outDir, "out-dir", "", "directory to write the outputs into, defaults to next to each input")
	rootCmd.Flags().StringVar(&flags.configPath, "config", DefaultConfigPath, "path of the project config")
	rootCmd.Flags().StringVar(&flags.solcPath, "solc", "solc", "solc binary used to parse Solidity files")
	rootCmd.Flags().StringVar(&flags.sourcePath, "source", "", "Solidity source of a JSON input, used for comments (single input only)")
	rootCmd.Flags().BoolVar(&flags.banner, "banner", false, "start the output with a generated-code comment")
	rootCmd.Flags().BoolVar(&flags.keepGoing, "keep-going", false, "write the output even if some declarations fail")
	rootCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "transpile again whenever an input changes")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "additional debug info")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// cmdRunTranspile transpiles every input once, and then keeps watching them
// if asked to
func cmdRunTranspile(cmd *cobra.Command, args []string) error {
	if flags.verbose {
		log.SetLevel(log.DebugLevel)
	}

	if len(args) > 1 && flags.output != "" {
		return errors.New("--output can only be used with a single input, use --out-dir instead")
	}
	if len(args) > 1 && flags.sourcePath != "" {
		return errors.New("--source can only be used with a single input")
	}

	config, err := LoadProjectConfig(flags.configPath)
	if err != nil {
		return err
	}

	runner := &batchRunner{
		flags: flags,
		opts: Options{
			Config:    config,
			Banner:    flags.banner,
			KeepGoing: flags.keepGoing,
		},
		toStdout: len(args) == 1 && flags.output == "" && flags.outDir == "",
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	batchErr := runner.RunAll(ctx, args)
	if !flags.watch {
		return batchErr
	}
	if batchErr != nil {
		log.Error(batchErr)
	}

	return WatchInputs(ctx, args, func(path string) {
		if err := runner.Run(ctx, path); err != nil {
			log.Error(err)
		}
	})
}

// batchRunner transpiles input files independently of each other
type batchRunner struct {
	flags    cliFlags
	opts     Options
	toStdout bool

	// stdoutLock keeps outputs written to stdout from interleaving
	stdoutLock sync.Mutex
}

// RunAll transpiles every input in parallel, and returns the first error once
// every input has finished
func (br *batchRunner) RunAll(ctx context.Context, inputs []string) error {
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for _, input := range inputs {
		group.Go(func() error {
			return br.Run(ctx, input)
		})
	}
	return group.Wait()
}

// Run transpiles a single input file and writes its output
func (br *batchRunner) Run(ctx context.Context, inputPath string) error {
	log.WithField("input", inputPath).Info("Started transpiling file")

	input, err := LoadInput(ctx, inputPath, br.flags.solcPath, br.flags.sourcePath)
	if err != nil {
		return err
	}

	output, err := Transpile(input.Unit, input.Comments, br.opts)
	if err != nil {
		reportDiagnostics(input, err)
		if !br.opts.KeepGoing {
			return errors.Wrapf(err, "failed to transpile '%s'", inputPath)
		}
	}

	if br.toStdout {
		br.stdoutLock.Lock()
		defer br.stdoutLock.Unlock()
		_, err := fmt.Fprint(os.Stdout, output)
		return err
	}

	outputPath := br.outputPath(inputPath)
	if parent := filepath.Dir(outputPath); parent != "" {
		if err := os.MkdirAll(parent, 0o775); err != nil {
			return errors.Wrapf(err, "failed to create output dir '%s'", parent)
		}
	}
	if err := os.WriteFile(outputPath, []byte(output), 0o664); err != nil {
		return errors.Wrapf(err, "failed to write output file '%s'", outputPath)
	}

	log.WithFields(log.Fields{
		"input":  inputPath,
		"output": outputPath,
	}).Info("Wrote Compact output")
	return nil
}

func (br *batchRunner) outputPath(inputPath string) string {
	if br.flags.output != "" {
		return br.flags.output
	}
	compactPath := ChangeFileExtension(inputPath, ".compact")
	if br.flags.outDir != "" {
		return filepath.Join(br.flags.outDir, filepath.Base(compactPath))
	}
	return compactPath
}

// reportDiagnostics logs every failed declaration, with its line and column
// when the source text is known
func reportDiagnostics(input *Input, err error) {
	var diagnostics nodeutil.Diagnostics
	if !errors.As(err, &diagnostics) {
		return
	}

	for _, diagnostic := range diagnostics {
		fields := log.Fields{"input": input.Path}

		var nodeErr *nodeutil.NodeError
		if errors.As(diagnostic, &nodeErr) {
			fields["kind"] = nodeErr.Kind.String()
			fields["node"] = nodeErr.Node
			if line, col := nodeErr.Pos.LineCol(input.Source); line > 0 {
				fields["line"] = line
				fields["column"] = col
			}
		}
		log.WithFields(fields).Warn(diagnostic.Error())
	}
}

// ChangeFileExtension replaces the extension of a path, or adds one if the
// file has none
// Ex: contracts/Counter.sol -> contracts/Counter.compact
func ChangeFileExtension(filePath, to string) string {
	return strings.TrimSuffix(filePath, filepath.Ext(filePath)) + to
}
