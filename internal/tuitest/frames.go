package tuitest

import (
	"regexp"
	"strconv"
	"strings"
)

// Frame is one full redraw of the session note screen. Plain has escape
// sequences removed and trailing blanks trimmed from every line.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	// Bubble Tea clears the screen (ED) before every full redraw.
	eraseDisplay = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	escapeSeq    = regexp.MustCompile(`\x1b\][^\x07]*(?:\x07|\x1b\\)|\x1b\[[0-9;?]*[A-Za-z]|[\x0e\x0f]`)

	meterEntry    = regexp.MustCompile(`([A-Z][a-z]+) (\d+)`)
	pickerHeading = regexp.MustCompile(`Pick ([a-z]+)\s+(\d+) selected`)
)

const meterSeparator = "  •  "

func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, chunk := range eraseDisplay.Split(stream, -1) {
		chunk = strings.TrimPrefix(strings.Trim(chunk, "\x00"), "\x1b[H")
		if f, ok := newFrame(len(frames), chunk); ok {
			frames = append(frames, f)
		}
	}
	if len(frames) == 0 && stream != "" {
		// Inline mode without a clear still counts as one redraw.
		f, _ := newFrame(0, stream)
		frames = append(frames, f)
	}
	return frames
}

func newFrame(index int, ansi string) (Frame, bool) {
	lines := strings.Split(escapeSeq.ReplaceAllString(ansi, ""), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Frame{}, false
	}
	return Frame{Index: index, ANSI: ansi, Plain: strings.Join(lines, "\n")}, true
}

// Meter reads one counter from the form's status bar, e.g. "Interventions"
// or "Observations". It reports false when the frame has no status bar or the
// counter is missing.
func (f Frame) Meter(name string) (int, bool) {
	for _, line := range strings.Split(f.Plain, "\n") {
		if !strings.Contains(line, meterSeparator) || !strings.Contains(line, "Mode ") {
			continue
		}
		for _, entry := range strings.Split(line, meterSeparator) {
			m := meterEntry.FindStringSubmatch(strings.TrimSpace(entry))
			if m == nil || m[1] != name {
				continue
			}
			n, err := strconv.Atoi(m[2])
			return n, err == nil
		}
	}
	return 0, false
}

// PickerSelection reads the picker heading and returns the category being
// picked with its selection count. It reports false outside the picker.
func (f Frame) PickerSelection() (category string, count int, ok bool) {
	m := pickerHeading.FindStringSubmatch(f.Plain)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

// FinalFrame returns the last captured frame. The second return value is false
// when no frames were recorded.
func (r *Recording) FinalFrame() (Frame, bool) {
	return r.LastFrame(func(Frame) bool { return true })
}

// LastFrame returns the newest frame accepted by match.
func (r *Recording) LastFrame(match func(Frame) bool) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for i := len(r.Frames) - 1; i >= 0; i-- {
		if match(r.Frames[i]) {
			return r.Frames[i], true
		}
	}
	return Frame{}, false
}

// LastFrameContaining returns the newest frame whose plain text contains
// text.
func (r *Recording) LastFrameContaining(text string) (Frame, bool) {
	return r.LastFrame(func(f Frame) bool { return strings.Contains(f.Plain, text) })
}
