//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseSerial finds the serial line among other cpuinfo fields.
func TestParseSerial(t *testing.T) {
	t.Parallel()

	cpuinfo := strings.Join([]string{
		"processor\t: 0",
		"model name\t: ARMv7 Processor rev 4 (v7l)",
		"Hardware\t: BCM2835",
		"Serial\t\t: 00000000401b6db6",
		"Model\t\t: Raspberry Pi 3 Model B Rev 1.2",
	}, "\n")

	require.Equal(t, uint64(0x401b6db6), ParseSerial(strings.NewReader(cpuinfo)))
}

// TestParseSerial_Missing returns zero without a serial line or with garbage.
func TestParseSerial_Missing(t *testing.T) {
	t.Parallel()

	require.Zero(t, ParseSerial(strings.NewReader("processor\t: 0\n")))
	require.Zero(t, ParseSerial(strings.NewReader("Serial\t\t: not-hex\n")))
	require.Zero(t, ParseSerial(strings.NewReader("")))
}

// TestEnsureSingleInstance ignores the current process.
func TestEnsureSingleInstance(t *testing.T) {
	t.Parallel()

	require.NoError(t, ensureSingleInstance("greenhouse-controller-test-does-not-exist", os.Getpid()))
}

// TestEnsureSingleInstance_Detects reports the current process when treated as a foreign one.
func TestEnsureSingleInstance_Detects(t *testing.T) {
	t.Parallel()

	executable, err := os.Executable()
	require.NoError(t, err)

	name := executable[strings.LastIndex(executable, string(os.PathSeparator))+1:]

	err = ensureSingleInstance(name, -1)
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

// TestSameExecutable accepts kernel-truncated names.
func TestSameExecutable(t *testing.T) {
	t.Parallel()

	require.True(t, sameExecutable("greenhouse-controller", "greenhouse-controller"))
	require.True(t, sameExecutable("greenhouse-controller", "greenhouse-cont"))
	require.False(t, sameExecutable("greenhouse-controller", "greenhouse"))
	require.False(t, sameExecutable("greenhouse-controller", "bash"))
}
