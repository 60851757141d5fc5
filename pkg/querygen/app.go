package querygen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lintang-b-s/querygen/pkg/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const programName = "querygen"

var errorLabel = color.New(color.FgRed, color.Bold)

func usage() string {
	return fmt.Sprintf("Usage: %s -n <num_values> -m <max_node_id> <output>", programName)
}

type App struct {
	stdin  *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
	writer *Writer
}

func NewApp(stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger, cfg util.Config) *App {
	return &App{
		stdin:  bufio.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
		logger: logger,
		writer: NewWriter(cfg, logger),
	}
}

// Run parses args, writes the query file and returns the process exit code.
func (a *App) Run(args []string) int {
	opts, err := a.Parse(args)
	if err == nil {
		err = a.writer.GenerateFile(opts)
	}

	code := util.ExitCode(err)
	if code != 0 {
		errorLabel.Fprint(a.stderr, "ERROR:")
		fmt.Fprintf(a.stderr, " %s\n%s\n", err.Error(), usage())
		a.logger.Debug("querygen failed", zap.Error(err))
	}
	return code
}

// Parse validates the command line and, when the output already exists,
// asks before it gets overwritten. Help and a declined overwrite are
// reported as util.ErrHelp and util.ErrAborted.
func (a *App) Parse(args []string) (Options, error) {
	var opts Options

	help := &helpFlag{}
	maxNodeID := newPositiveInt("max_node_id", "m", args)
	numValues := newPositiveInt("num_values", "n", args)

	cmd := &cobra.Command{
		Use:           programName,
		Short:         "Generate random source/destination pairs for shortest path queries",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarPF(help, "help", "h", "Shows this help screen").NoOptDefVal = "true"
	flags.VarP(maxNodeID, "max_node_id", "m", "Set the max vertex id")
	flags.VarP(numValues, "num_values", "n", "Set the number of values to produce")
	seed := flags.Int64P("seed", "s", 0, "Seed for the random generator (default: current time)")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprintf(c.OutOrStdout(), "%s\n%s", usage(), c.Flags().FlagUsages())
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if help.requested {
			c.HelpFunc()(c, nil)
			return util.WrapErrorf(nil, util.ErrHelp, "help requested")
		}
		for _, v := range []*positiveInt{maxNodeID, numValues} {
			if v.err != nil {
				return v.err
			}
		}
		return util.WrapErrorf(err, util.ErrParse, "%s", util.Capitalize(err.Error()))
	})
	cmd.RunE = func(c *cobra.Command, positional []string) error {
		switch {
		case len(positional) == 0:
			return util.WrapErrorf(nil, util.ErrMissingArgument, "Missing argument <output>")
		case len(positional) > 1:
			return util.WrapErrorf(nil, util.ErrTooManyArguments, "Too many free arguments: %s",
				strings.Join(positional, " "))
		}

		opts = Options{
			MaxNodeID: maxNodeID.value,
			NumValues: numValues.value,
			Output:    positional[0],
			Seed:      *seed,
			SeedSet:   c.Flags().Changed("seed"),
		}
		if err := opts.validate(); err != nil {
			return err
		}
		return a.checkOutput(opts.Output)
	}

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if len(args) == 0 {
		cmd.HelpFunc()(cmd, args)
		return Options{}, util.WrapErrorf(nil, util.ErrHelp, "help requested")
	}

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (a *App) checkOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		// let the writer report it
		a.logger.Debug("cannot stat output", zap.String("output", path), zap.Error(err))
		return nil
	}

	if !info.Mode().IsRegular() {
		return util.WrapErrorf(nil, util.ErrNotRegularFile,
			"The file `%s' already exists but it is not a regular file and cannot be overwritten", path)
	}

	ok, err := Confirm(a.stdin, a.stdout, overwritePrompt(path))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.stdout, "Aborted by the user!")
		return util.WrapErrorf(nil, util.ErrAborted, "Aborted by the user!")
	}
	return nil
}
