package simio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// recolorHeader names the position file columns in the emitted CSV.
var recolorHeader = []string{"local_id", "pos_x", "pos_y", "pos_z", "area", "type"}

// Recolor rewrites a positions file as CSV with the compound area label
// reduced to its numeric part ("area_7" becomes "7"), which keeps the column
// usable as a plain scalar in downstream tooling. Comment lines are dropped;
// all other columns pass through untouched.
func Recolor(src string, dst io.Writer) error {
	lines, err := readLines(src)
	if err != nil {
		return err
	}

	w := csv.NewWriter(dst)
	if err := w.Write(recolorHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, line := range lines {
		if isComment(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < posMinFields {
			return parseError(src, i+1, "", ErrMalformedLine)
		}

		record := make([]string, 0, len(recolorHeader))
		for j, f := range fields {
			if j >= len(recolorHeader) {
				break
			}
			if j == posFieldArea {
				f = strings.TrimPrefix(f, "area"+areaPrefixSep)
			}
			record = append(record, f)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// RecolorLayout recolors a layout's position file in place next to the
// source, returning the path written.
func (l Layout) RecolorLayout() (string, error) {
	out := l.RecoloredPositionsPath()
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := Recolor(l.PositionsPath(), f); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", out, err)
	}
	return out, nil
}
