package packer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const sampleInput = `81 : (1,53.38,€45) (2,88.62,€98) (3,78.48,€3) (4,72.30,€76) (5,30.18,€9) (6,46.34,€48)
8 : (1,15.3,€34)
75 : (1,85.31,€29) (2,14.55,€74) (3,3.98,€16) (4,26.24,€55) (5,63.69,€52) (6,76.25,€75) (7,60.02,€74) (8,93.18,€35) (9,89.95,€78)
56 : (1,90.72,€13) (2,33.80,€40) (3,43.15,€10) (4,37.97,€16) (5,46.81,€36) (6,48.77,€79) (7,81.80,€45) (8,19.36,€79) (9,6.76,€64)
`

func joinRows(rows ...string) string {
	return strings.Join(rows, LineSeparator)
}

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPack(t *testing.T) {
	got, err := Pack(writeInput(t, sampleInput))
	require.NoError(t, err)
	assert.Equal(t, joinRows("4", "-", "2,7", "8,9"), got)
}

func TestPackWithCurrency(t *testing.T) {
	path := writeInput(t, "10 : (1,10,$10) (2,15,$500) (3,5,$20) (4,5,$20)\n")

	got, err := Pack(path, WithCurrencySymbol("$"))
	require.NoError(t, err)
	assert.Equal(t, "3,4", got)

	_, err = Pack(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCostFormat)
	assert.Equal(t, `Incorrect format for thing's cost: "$10"`, err.Error())
}

func TestPackFileErrors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		for _, path := range []string{"", "   "} {
			_, err := Pack(path)
			assert.ErrorIs(t, err, ErrEmptyFilePath)
			assert.EqualError(t, err, "File path cannot be null or empty")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := Pack(path)
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.EqualError(t, err, "File "+path+" not found")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := Pack(t.TempDir())
		assert.ErrorIs(t, err, ErrIO)
	})
}

func TestPackReader(t *testing.T) {
	t.Run("blank lines are skipped", func(t *testing.T) {
		got, err := New().PackReader(strings.NewReader("\n8 : (1,15.3,€34)\n   \n10 : (1,10,€10)\n\n"))
		require.NoError(t, err)
		assert.Equal(t, joinRows("-", "1"), got)
	})

	t.Run("windows line endings", func(t *testing.T) {
		got, err := New().PackReader(strings.NewReader("10 : (1,10,€10)\r\n10 : (1,11,€10)\r\n"))
		require.NoError(t, err)
		assert.Equal(t, joinRows("1", "-"), got)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := New().PackReader(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("first invalid line aborts everything", func(t *testing.T) {
		input := "10 : (1,10,€10)\n-81 : (1,1,€1)\n10 : (1,10,€10)\n"

		got, err := New().PackReader(strings.NewReader(input))
		require.Error(t, err)
		assert.Empty(t, got)
		assert.ErrorIs(t, err, ErrNegativeWeight)
		assert.EqualError(t, err, `Package weight is negative: "-81"`)
	})

	t.Run("read failure", func(t *testing.T) {
		boom := errors.New("disk on fire")

		_, err := New().PackReader(iotest.ErrReader(boom))
		assert.ErrorIs(t, err, ErrIO)
		assert.ErrorIs(t, err, boom)
		assert.EqualError(t, err, "Error reading input file")
	})
}

func TestPackLine(t *testing.T) {
	p := New()

	got, err := p.PackLine("10 : (1,10,€10) (2,15,€500)")
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = p.PackLine("1 : (1,10,€10) (2,15,€500) (3,5,€20) (4,5,€20)")
	require.NoError(t, err)
	assert.Equal(t, NoSelection, got)

	got, err = p.PackLine("10 : ")
	require.NoError(t, err)
	assert.Equal(t, NoSelection, got)
}

type stubSelector struct {
	calls []Line
	pick  Combination
}

func (s *stubSelector) Select(items []Item, capacity float64) (Combination, bool) {
	s.calls = append(s.calls, Line{Capacity: capacity, Items: items})
	return s.pick, len(s.pick.Indices) > 0
}

func TestPackUsesConfiguredSelector(t *testing.T) {
	stub := &stubSelector{pick: Combination{Indices: []int{42, 7}}}

	got, err := New(WithSelector(stub)).PackLine("3.5 : (1,1,€1) (2,2,€2)")
	require.NoError(t, err)

	assert.Equal(t, "42,7", got)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, 3.5, stub.calls[0].Capacity)
	assert.Len(t, stub.calls[0].Items, 2)
}

func TestNewDefaults(t *testing.T) {
	p := New()
	assert.Equal(t, DefaultCurrencySymbol, p.CurrencySymbol())

	p = New(WithCurrencySymbol("$"), WithCurrencySymbol("R$"))
	assert.Equal(t, "R$", p.CurrencySymbol(), "last option wins")

	p = New(WithLogger(nil))
	assert.NotNil(t, p.logger)
}

func TestPackLogsDebugTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	_, err := New(WithLogger(zap.New(core))).PackReader(strings.NewReader("10 : (1,10,€10) (2,5,€20)\n"))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("read input line").Len())
	assert.Equal(t, 1, logs.FilterMessage("package parsed").Len())
	assert.Equal(t, 2, logs.FilterMessage("item combined").Len())
	assert.NotZero(t, logs.FilterMessage("best combination updated").Len())
}
