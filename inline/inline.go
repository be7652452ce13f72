// Package inline runs extractions without any interaction and prints the results.
package inline

import (
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/extractor"
	"github.com/tubex-cli/tubex/history"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/log"
	"github.com/tubex-cli/tubex/quality"
)

// SessionFactory builds a configured session for an input.
type SessionFactory func(input string) *extractor.Session

// Options control Run.
type Options struct {
	Out            io.Writer
	Inputs         []string
	Quality        quality.Tier
	Format         Format
	WithCandidates bool
	NewSession     SessionFactory
}

// Run resolves every input one after another and writes the collected output.
// Failures are reported per result and do not stop the remaining inputs.
func Run(options *Options) (*Output, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	output := &Output{Results: make([]*Result, 0, len(options.Inputs))}
	for _, input := range options.Inputs {
		s := options.NewSession(input)
		if s.Err() == nil {
			<-s.Start()
		}

		result := NewResult(input, options.Quality, s, options.WithCandidates)
		output.Results = append(output.Results, result)

		if result.Error != "" {
			log.Warnf("%s: %s", input, result.Error)
			continue
		}

		if viper.GetBool(key.HistorySaveOnExtract) {
			if err := history.Save(history.Record{
				VideoID: result.VideoID,
				Title:   result.Meta.Title,
				Author:  result.Meta.Author,
				Quality: options.Quality.String(),
				URL:     s.RequestURL(),
			}); err != nil {
				log.Warnf("save history: %s", err)
			}
		}
	}

	return output, Write(options.Out, output, options.Format)
}
