package output

import "github.com/finsim/finsim/internal/domain"

// Formatter defines a pluggable output formatter. Implementations should be
// pure (no side effects besides deterministic formatting); the core results
// carry raw decimals and all display formatting happens here.
type Formatter interface {
	FormatRetirement(result *domain.SimulationResult) ([]byte, error)
	FormatSweep(result *domain.SweepResult) ([]byte, error)
	FormatDCA(result *domain.DCAResult) ([]byte, error)
	FormatInflation(points []domain.PurchasingPowerPoint) ([]byte, error)
	FormatInflationSweep(result *domain.InflationSweepResult) ([]byte, error)
	// Name returns a short identifier for lookup and logging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil if unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
