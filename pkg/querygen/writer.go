package querygen

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lintang-b-s/querygen/pkg/util"
	"go.uber.org/zap"
)

const timestampLayout = "15:04:05 02-01-2006"

type Writer struct {
	bufferSize       int
	progressInterval int
	logger           *zap.Logger
	now              func() time.Time
}

func NewWriter(cfg util.Config, logger *zap.Logger) *Writer {
	return &Writer{
		bufferSize:       cfg.BufferSize,
		progressInterval: cfg.ProgressInterval,
		logger:           logger,
		now:              time.Now,
	}
}

// WriteQueries writes the header and opts.NumValues pairs drawn from sampler.
func (wr *Writer) WriteQueries(out io.Writer, opts Options, sampler *Sampler) error {
	w := bufio.NewWriterSize(out, wr.bufferSize)

	fmt.Fprintf(w, "# This file contains %d values, with max vertex id: %d\n", opts.NumValues, opts.MaxNodeID)
	fmt.Fprintf(w, "# Generated on: %s\n\n", wr.now().Local().Format(timestampLayout))

	var line []byte
	for i := 0; i < opts.NumValues; i++ {
		p := sampler.Next()

		line = strconv.AppendInt(line[:0], int64(p.Source), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(p.Destination), 10)
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return util.WrapErrorf(err, util.ErrWrite, "Cannot write `%s': %v", opts.Output, err)
		}

		if wr.progressInterval > 0 && (i+1)%wr.progressInterval == 0 {
			wr.logger.Debug("generated queries", zap.Int("done", i+1), zap.Int("total", opts.NumValues))
		}
	}

	if err := w.Flush(); err != nil {
		return util.WrapErrorf(err, util.ErrWrite, "Cannot write `%s': %v", opts.Output, err)
	}
	return nil
}

// GenerateFile truncates opts.Output and fills it with random queries.
func (wr *Writer) GenerateFile(opts Options) (err error) {
	seed := opts.Seed
	if !opts.SeedSet {
		seed = wr.now().UnixNano()
	}

	fout, err := os.Create(opts.Output)
	if err != nil {
		return util.WrapErrorf(err, util.ErrWrite, "Cannot open `%s' for writing: %v", opts.Output, err)
	}
	defer func() {
		if cerr := fout.Close(); cerr != nil && err == nil {
			err = util.WrapErrorf(cerr, util.ErrWrite, "Cannot close `%s': %v", opts.Output, cerr)
		}
	}()

	wr.logger.Info("generating random queries", zap.String("output", opts.Output),
		zap.Int("num_values", opts.NumValues), zap.Int("max_node_id", opts.MaxNodeID), zap.Int64("seed", seed))

	return wr.WriteQueries(fout, opts, NewSeededSampler(opts.MaxNodeID, seed))
}
