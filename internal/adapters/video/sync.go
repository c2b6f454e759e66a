// Package video converts match clocks into timestamped replay URLs.
//
// Full-match replays include pre-match coverage and breaks, so every period
// carries its own whistle offset: the number of seconds into the video at
// which that period's first whistle blows. The match clock does not reset
// between periods in the event data, hence the per-period minute bases.
package video

import "fmt"

// Match-clock minute at which each period starts.
const (
	secondHalfBase = 45
	extraTime1Base = 90
	extraTime2Base = 105
)

// Sync maps match time to video time for one replay video.
type Sync struct {
	videoID string
	offsets map[int]int
}

// DefaultOffsets are the whistle offsets for the bundled reference replay.
func DefaultOffsets() map[int]int {
	return map[int]int{
		1: 595,
		2: 3963,
		3: 7339,
		4: 8443,
		5: 9500,
	}
}

// New creates a Sync for the given video with per-period whistle offsets.
// Unknown periods fall back to the first-period offset.
func New(videoID string, offsets map[int]int) *Sync {
	if offsets == nil {
		offsets = DefaultOffsets()
	}
	return &Sync{videoID: videoID, offsets: offsets}
}

// Seconds returns the video timestamp in seconds for a match clock reading.
func (s *Sync) Seconds(period, minute, second int) int {
	offset, ok := s.offsets[period]
	if !ok {
		offset = s.offsets[1]
	}

	elapsed := 0
	switch period {
	case 1:
		elapsed = minute*60 + second
	case 2:
		elapsed = (minute-secondHalfBase)*60 + second
	case 3:
		elapsed = (minute-extraTime1Base)*60 + second
	case 4:
		elapsed = (minute-extraTime2Base)*60 + second
	}
	return elapsed + offset
}

// URL returns a shareable replay URL seeking to the match clock reading.
// Returns an empty string when no video is configured.
func (s *Sync) URL(period, minute, second int) string {
	if s.videoID == "" {
		return ""
	}
	return fmt.Sprintf("https://youtu.be/%s?t=%d", s.videoID, s.Seconds(period, minute, second))
}
