package ezo

import (
	"fmt"
	"strconv"
	"strings"
)

// exportDone is the sentinel the chip sends after the last export string.
const exportDone = "*DONE"

// maxExportStrings bounds the export loop against a chip that never sends
// the done sentinel.
const maxExportStrings = 128

// ExportLengths reports how many export strings the stored calibration
// occupies and their total size in bytes. Reply shape: "10,120".
func (d *Device) ExportLengths() (count int, size int, err error) {
	text, err := d.text(ExportInfo())
	if err != nil {
		return 0, 0, err
	}

	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, &FormatError{Text: text}
	}
	count, countErr := strconv.Atoi(parts[0])
	size, sizeErr := strconv.Atoi(parts[1])
	if countErr != nil || sizeErr != nil {
		return 0, 0, &FormatError{Text: text}
	}
	return count, size, nil
}

// ExportCalibration reads out the chip's calibration as a sequence of
// strings that can later be replayed with ImportCalibration, for example
// onto a replacement chip. The chip is drained until it answers "*DONE".
func (d *Device) ExportCalibration() ([]string, error) {
	count, size, err := d.ExportLengths()
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, count)
	for i := 0; i < maxExportStrings; i++ {
		text, err := d.text(Export())
		if err != nil {
			return nil, err
		}
		if text == exportDone {
			d.logInfo("calibration exported", "strings", len(lines), "bytes", size)
			return lines, nil
		}
		lines = append(lines, text)
	}
	return nil, fmt.Errorf("calibration export did not finish after %d strings", maxExportStrings)
}

// ImportCalibration replays previously exported calibration strings onto
// the chip. The chip reboots once the final string has been loaded.
func (d *Device) ImportCalibration(lines []string) error {
	for i, line := range lines {
		if _, err := d.text(Import(line)); err != nil {
			return fmt.Errorf("import string %d of %d: %w", i+1, len(lines), err)
		}
	}
	d.logInfo("calibration imported", "strings", len(lines))
	return nil
}
