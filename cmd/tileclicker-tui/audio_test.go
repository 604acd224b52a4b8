package main

import (
	"math"
	"testing"
	"time"
)

func TestToneLengthAndFade(t *testing.T) {
	tn := newTone(440, 10*time.Millisecond)
	want := sampleRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 64)
	total := 0
	var peakFirst, peakLast float64
	for {
		n, ok := tn.Stream(buf)
		for i := 0; i < n; i++ {
			v := math.Abs(buf[i][0])
			if total+i < want/4 {
				peakFirst = math.Max(peakFirst, v)
			}
			if total+i >= want*3/4 {
				peakLast = math.Max(peakLast, v)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if peakLast >= peakFirst {
		t.Errorf("tail peak %.3f should be below head peak %.3f", peakLast, peakFirst)
	}
}

func TestZeroSoundsIsSilent(t *testing.T) {
	var s Sounds
	s.Purchase()
	s.Sale()
	s.Refused()
	s.Win()
	s.Close()
	if s.enabled {
		t.Error("zero value should stay disabled")
	}
}
