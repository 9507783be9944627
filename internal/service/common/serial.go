//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

// CPUInfoPath is where the kernel publishes the board serial number.
const CPUInfoPath = "/proc/cpuinfo"

// serialPrefix introduces the serial line in cpuinfo.
const serialPrefix = "serial\t\t:"

// Serial returns the board serial number, or 0 when it cannot be determined.
func Serial() uint64 {
	f, err := os.Open(CPUInfoPath)
	if err != nil {
		return 0
	}

	defer func() {
		_ = f.Close()
	}()

	return ParseSerial(f)
}

// ParseSerial scans cpuinfo-formatted text for the hexadecimal serial line.
// The last matching line wins; 0 means not found or unparsable.
func ParseSerial(r io.Reader) uint64 {
	var serial uint64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < len(serialPrefix) || !strings.EqualFold(line[:len(serialPrefix)], serialPrefix) {
			continue
		}

		value := strings.TrimSpace(line[len(serialPrefix):])

		parsed, err := strconv.ParseUint(value, 16, 64)
		if err != nil {
			continue
		}

		serial = parsed
	}

	return serial
}
