package packer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// NoSelection is the result row for a line where no item fits.
const NoSelection = "-"

// LineSeparator joins result rows. It follows the host platform.
var LineSeparator = lineSeparator()

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Option configures a Packer.
type Option func(*Packer)

// WithCurrencySymbol sets the marker stripped from cost fields.
func WithCurrencySymbol(symbol string) Option {
	return func(p *Packer) {
		p.currencySymbol = symbol
	}
}

// WithLogger attaches a logger for debug tracing of each line.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Packer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSelector overrides the selection algorithm, primarily for tests.
func WithSelector(selector Selector) Option {
	return func(p *Packer) {
		p.selector = selector
	}
}

// Packer turns package definition files into result rows.
type Packer struct {
	currencySymbol string
	logger         *zap.Logger
	selector       Selector
}

// New creates a Packer. Without options it strips DefaultCurrencySymbol
// and logs nothing.
func New(opts ...Option) *Packer {
	p := &Packer{
		currencySymbol: DefaultCurrencySymbol,
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.selector == nil {
		p.selector = NewSelector(p.logger)
	}
	return p
}

// Pack reads the file at path and returns one result row per package line.
func Pack(path string, opts ...Option) (string, error) {
	return New(opts...).Pack(path)
}

// CurrencySymbol returns the configured cost marker.
func (p *Packer) CurrencySymbol() string {
	return p.currencySymbol
}

// Pack reads the file at path and returns one result row per package line.
// The first invalid line aborts the whole file.
func (p *Packer) Pack(path string) (string, error) {
	p.logger.Debug("input file", zap.String("path", path))

	if strings.TrimSpace(path) == "" {
		return "", newError(ErrEmptyFilePath, path, "File path cannot be null or empty")
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: ErrFileNotFound, Raw: path, Msg: fmt.Sprintf("File %s not found", path), Err: err}
		}
		return "", &Error{Kind: ErrIO, Raw: path, Msg: "Error reading input file", Err: err}
	}
	defer f.Close()

	return p.PackReader(f)
}

// PackReader processes package lines from r. Blank lines are skipped.
func (p *Packer) PackReader(r io.Reader) (string, error) {
	var out strings.Builder
	sep := ""

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		p.logger.Debug("read input line", zap.String("line", line))
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := p.PackLine(line)
		if err != nil {
			return "", err
		}
		out.WriteString(sep)
		out.WriteString(row)
		sep = LineSeparator
	}
	if err := scanner.Err(); err != nil {
		return "", &Error{Kind: ErrIO, Msg: "Error reading input file", Err: err}
	}

	return out.String(), nil
}

// PackLine parses a single package line and returns its result row.
func (p *Packer) PackLine(line string) (string, error) {
	parsed, err := ParseLine(line, p.currencySymbol)
	if err != nil {
		return "", err
	}
	p.logger.Debug("package parsed",
		zap.Float64("capacity", parsed.Capacity),
		zap.Int("items", len(parsed.Items)),
	)

	best, ok := p.selector.Select(parsed.Items, parsed.Capacity)
	if !ok {
		return NoSelection, nil
	}
	return best.Key(), nil
}
