// Command voxrange analyzes a prerecorded voice clip: per-frame pitch
// estimates, rollup statistics, a timbre summary and a calibrated
// voice-range profile, printed as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ardanlabs/conf/v3"

	"github.com/voicelab/voxrange/analysis/pitch"
	"github.com/voicelab/voxrange/analysis/spectral"
	"github.com/voicelab/voxrange/analysis/temporal"
	"github.com/voicelab/voxrange/calibrate"
	"github.com/voicelab/voxrange/logging"
	"github.com/voicelab/voxrange/transcode"
)

var version = "dev"

type report struct {
	File        string                 `json:"file"`
	Duration    string                 `json:"duration"`
	Settings    pitch.AnalysisSettings `json:"settings"`
	Statistics  temporal.Statistics    `json:"statistics"`
	Brightness  float64                `json:"brightness_hz"`
	Calibration calibrate.Result       `json:"calibration"`
	Fallback    bool                   `json:"fallback_profile"`
}

func main() {
	if err := run(); err != nil {
		logging.Error(err, "analysis failed")
		os.Exit(1)
	}
}

func run() error {
	cfg := struct {
		conf.Version
		File                 string  `conf:"short:f"`
		MinFrequency         float64 `conf:"default:80"`
		MaxFrequency         float64 `conf:"default:800"`
		CorrelationThreshold float64 `conf:"default:0.5"`
		BufferLength         int     `conf:"default:2048"`
		Interval             float64 `conf:"default:0.05"`
		SmoothWindow         int     `conf:"default:5"`
		MinimumSamples       int     `conf:"default:30"`
		Verbose              bool    `conf:"default:false"`
	}{
		Version: conf.Version{
			Build: version,
			Desc:  "voice pitch analysis and range calibration",
		},
	}

	help, err := conf.Parse("VOXRANGE", &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Verbose {
		logging.SetLevel(logging.DebugLevel)
	}

	if cfg.File == "" {
		return errors.New("no input file; run with --file <clip.wav>")
	}

	clip, err := transcode.LoadWAV(cfg.File)
	if err != nil {
		return err
	}

	settings := pitch.AnalysisSettings{
		MinFrequency:         cfg.MinFrequency,
		MaxFrequency:         cfg.MaxFrequency,
		CorrelationThreshold: cfg.CorrelationThreshold,
		SampleRate:           clip.SampleRate,
		BufferLength:         cfg.BufferLength,
	}

	estimator, err := pitch.NewEstimator(settings)
	if err != nil {
		return err
	}

	mono := clip.Mono()
	observations := estimator.PreAnalyzeClip(mono, 1, cfg.Interval)

	// Smoothing is presentation-only; calibration always consumes the
	// raw per-frame estimates.
	presented := observations
	if cfg.SmoothWindow > 1 {
		presented = temporal.Smooth(observations, cfg.SmoothWindow)
	}

	statistics := temporal.ComputeStatistics(presented)

	step := max(int(cfg.Interval*float64(clip.SampleRate)), 1)
	brightness := spectral.NewCentroid(clip.SampleRate).ClipBrightness(mono, cfg.BufferLength, step)

	result, fallback, err := runCalibration(observations, cfg.MinimumSamples)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report{
		File:        cfg.File,
		Duration:    clip.Duration.String(),
		Settings:    settings,
		Statistics:  statistics,
		Brightness:  brightness,
		Calibration: result,
		Fallback:    fallback,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	fmt.Println(string(out))
	return nil
}

// runCalibration feeds the raw per-frame estimates into a calibration
// session and reduces them to a profile, falling back to the default
// profile on insufficient data.
func runCalibration(observations []pitch.Observation, minimumSamples int) (calibrate.Result, bool, error) {
	session := calibrate.NewSession(minimumSamples)
	for _, obs := range observations {
		session.Add(obs)
	}
	logging.Debug("collected calibration readings", logging.Fields{
		"voiced_readings": session.SampleCount(),
		"observations":    len(observations),
	})

	result, err := session.Finish()
	if err != nil {
		if !errors.Is(err, calibrate.ErrInsufficientData) {
			return calibrate.Result{}, false, err
		}
		return calibrate.DefaultProfile(), true, nil
	}

	return result, false, nil
}
