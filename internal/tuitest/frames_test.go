package tuitest

import (
	"bytes"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mSession Note\x1b[0m   \r\nfirst\x1b[2J\x1b[HSession Note\r\nsecond\r\n\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "Session Note\nfirst" {
		t.Fatalf("unexpected first frame %q", frames[0].Plain)
	}
	rec := &Recording{Frames: frames}
	last, ok := rec.FinalFrame()
	if !ok || last.Plain != "Session Note\nsecond" {
		t.Fatalf("unexpected final frame %q", last.Plain)
	}
	if f, ok := rec.LastFrameContaining("first"); !ok || f.Index != 0 {
		t.Fatalf("expected first frame, got %+v", f)
	}
	if _, ok := rec.LastFrameContaining("missing"); ok {
		t.Fatal("unexpected match")
	}
}

func TestFrameReadsStatusBarMeters(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[HSession Note\r\n\x1b[48;2;142;202;230m Mode telephone  •  60 min  •  Interventions 2  •  Observations 0 \x1b[0m\r\n")
	frames := parseFrames(raw)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if n, ok := frames[0].Meter("Interventions"); !ok || n != 2 {
		t.Fatalf("interventions meter = %d, %v", n, ok)
	}
	if n, ok := frames[0].Meter("Observations"); !ok || n != 0 {
		t.Fatalf("observations meter = %d, %v", n, ok)
	}
	if _, ok := frames[0].Meter("Mode"); ok {
		t.Fatal("mode is not a counter")
	}
	if _, _, ok := frames[0].PickerSelection(); ok {
		t.Fatal("form frame has no picker heading")
	}
}

func TestFrameReadsPickerHeading(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mPick interventions\x1b[0m\x1b[2m   3 selected\x1b[0m\r\n> defusion\r\n")
	rec := &Recording{Frames: parseFrames(raw)}
	f, ok := rec.LastFrame(func(f Frame) bool {
		_, _, ok := f.PickerSelection()
		return ok
	})
	if !ok {
		t.Fatal("picker frame not found")
	}
	category, count, _ := f.PickerSelection()
	if category != "interventions" || count != 3 {
		t.Fatalf("got %q %d", category, count)
	}
	if _, ok := f.Meter("Interventions"); ok {
		t.Fatal("picker frame has no status bar")
	}
}

func TestTerminalResponderAnswersQueries(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("hello\x1b]11;?"))
	if out.Len() != 0 {
		t.Fatalf("partial query answered: %q", out.String())
	}
	tr.Process([]byte("\x07 and \x1b[6n"))
	want := "\x1b]11;rgb:0000/0000/0000\x07\x1b[1;1R"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}
