// Package oracle hosts the pre-built probability models and the feature
// extraction that feeds them.
//
// Each oracle is an opaque function from a feature vector to a calibrated
// probability. Models may be absent (file never shipped) and predictions may
// fail on malformed vectors; both degrade to "no prediction" so the scorer
// can fall back to its heuristic branch.
package oracle

import (
	"math"

	"github.com/coachos/pitchpilot/internal/domain/event"
	"github.com/coachos/pitchpilot/internal/domain/pitch"
)

// PassFeatures is the fixed-shape input of the pass-success oracle.
type PassFeatures struct {
	StartX        float64
	StartY        float64
	EndX          float64
	EndY          float64
	Length        float64
	Angle         float64
	UnderPressure float64
}

// Vector returns the features in model column order.
func (f PassFeatures) Vector() []float64 {
	return []float64{f.StartX, f.StartY, f.EndX, f.EndY, f.Length, f.Angle, f.UnderPressure}
}

// ShotFeatures is the fixed-shape input of the shot-quality oracle.
type ShotFeatures struct {
	X             float64
	Y             float64
	DistToGoal    float64
	Angle         float64
	UnderPressure float64
}

// Vector returns the features in model column order.
func (f ShotFeatures) Vector() []float64 {
	return []float64{f.X, f.Y, f.DistToGoal, f.Angle, f.UnderPressure}
}

// WinFeatures is the fixed-shape input of the win-probability oracle.
// Differentials are from the designated home side's perspective.
type WinFeatures struct {
	TimeRemaining float64
	ScoreDiff     float64
	QualityDiff   float64
}

// Vector returns the features in model column order.
func (f WinFeatures) Vector() []float64 {
	return []float64{f.TimeRemaining, f.ScoreDiff, f.QualityDiff}
}

// ExtractPassFeatures derives pass oracle features from an event. It returns
// nil when the event has no start or end location; the caller must treat nil
// as "oracle not applicable", never as a zero vector.
func ExtractPassFeatures(ev *event.Event) *PassFeatures {
	if ev.Location == nil || ev.Pass == nil || ev.Pass.EndLocation == nil {
		return nil
	}
	start, end := ev.Location, ev.Pass.EndLocation
	dx := end.X - start.X
	dy := end.Y - start.Y
	return &PassFeatures{
		StartX:        start.X,
		StartY:        start.Y,
		EndX:          end.X,
		EndY:          end.Y,
		Length:        math.Sqrt(dx*dx + dy*dy),
		Angle:         math.Atan2(dy, dx),
		UnderPressure: pressureIndicator(ev),
	}
}

// ExtractShotFeatures derives shot oracle features from an event, or nil
// when the shot has no start location.
func ExtractShotFeatures(ev *event.Event) *ShotFeatures {
	if ev.Location == nil || ev.Shot == nil {
		return nil
	}
	dx := pitch.GoalCenterX - ev.Location.X
	dy := pitch.GoalCenterY - ev.Location.Y
	return &ShotFeatures{
		X:             ev.Location.X,
		Y:             ev.Location.Y,
		DistToGoal:    math.Sqrt(dx*dx + dy*dy),
		Angle:         math.Atan2(math.Abs(dy), dx),
		UnderPressure: pressureIndicator(ev),
	}
}

// ExtractWinFeatures derives win oracle features from the match minute and
// home-relative differentials. Time remaining clamps at zero in extra time.
func ExtractWinFeatures(minute int, scoreDiff int, qualityDiff float64) WinFeatures {
	remaining := 90 - minute
	if remaining < 0 {
		remaining = 0
	}
	return WinFeatures{
		TimeRemaining: float64(remaining),
		ScoreDiff:     float64(scoreDiff),
		QualityDiff:   qualityDiff,
	}
}

func pressureIndicator(ev *event.Event) float64 {
	if ev.UnderPressure {
		return 1.0
	}
	return 0.0
}
