package gotext

import "golang.org/x/text/unicode/bidi"

// bidiRun is a half-open rune range with a single text direction.
type bidiRun struct {
	start, end int
	rtl        bool
}

// bidiRuns splits text into directional runs using the Unicode
// bidirectional algorithm with a left-to-right base direction. Any bidi
// resolution failure degrades to a single left-to-right run.
func bidiRuns(text string) []bidiRun {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	rtl := make([]bool, len(runes))
	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight))
	if ordering, err := p.Order(); err == nil {
		// run.Pos() returns rune indices (start, end inclusive).
		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			if run.Direction() != bidi.RightToLeft {
				continue
			}
			start, end := run.Pos()
			for j := max(start, 0); j <= end && j < len(rtl); j++ {
				rtl[j] = true
			}
		}
	}

	var runs []bidiRun
	runStart := 0
	for i := 1; i < len(runes); i++ {
		if rtl[i] != rtl[runStart] {
			runs = append(runs, bidiRun{start: runStart, end: i, rtl: rtl[runStart]})
			runStart = i
		}
	}
	return append(runs, bidiRun{start: runStart, end: len(runes), rtl: rtl[runStart]})
}
