package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"walker3d/internal/locomotion"
)

// Config is everything the game reads at startup: window settings, log
// level, and the locomotion tuning constants.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
	LogLevel     string
	Tuning       locomotion.Tuning
}

// Load reads walker3d.yaml from the given directory, if present, on top
// of the defaults. A missing config file is not an error.
func Load(dir string) (Config, error) {
	v := viper.New()

	tun := locomotion.DefaultTuning()

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "walker3d")
	v.SetDefault("logLevel", "info")

	v.SetDefault("movement.onGroundSpeed", tun.OnGroundSpeed)
	v.SetDefault("movement.inAirSpeed", tun.InAirSpeed)
	v.SetDefault("movement.jumpHeight", tun.JumpHeight)
	v.SetDefault("movement.turnSpeed", tun.TurnSpeed)
	v.SetDefault("movement.gravity", tun.Gravity)
	v.SetDefault("movement.eyeHeight", tun.EyeHeight)

	v.SetDefault("look.yawPerPixel", tun.YawPerPixel)
	v.SetDefault("look.pitchPerPixel", tun.PitchPerPixel)
	v.SetDefault("look.maxPitch", tun.MaxPitch)
	v.SetDefault("look.mouseDragThreshold", tun.MouseDragThreshold)
	v.SetDefault("look.touchDragThreshold", tun.TouchDragThreshold)

	v.SetDefault("dolly.pinchDeadzone", tun.PinchDeadzone)
	v.SetDefault("dolly.perPixel", tun.DollyPerPixel)
	v.SetDefault("dolly.wheelStep", tun.WheelDollyStep)

	v.SetDefault("seek.stopDistance", tun.StopDistance)
	v.SetDefault("seek.slowRadius", tun.SlowRadius)
	v.SetDefault("seek.strength", tun.SeekStrength)
	v.SetDefault("seek.stallEpsilon", tun.StallEpsilon)
	v.SetDefault("seek.stallTimeoutMs", int(tun.StallTimeout/time.Millisecond))

	v.SetDefault("camera.lookAhead", tun.LookAhead)

	v.SetConfigName("walker3d")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := Config{
		WindowWidth:  v.GetInt("window.width"),
		WindowHeight: v.GetInt("window.height"),
		WindowTitle:  v.GetString("window.title"),
		LogLevel:     v.GetString("logLevel"),
		Tuning: locomotion.Tuning{
			OnGroundSpeed: float32(v.GetFloat64("movement.onGroundSpeed")),
			InAirSpeed:    float32(v.GetFloat64("movement.inAirSpeed")),
			JumpHeight:    float32(v.GetFloat64("movement.jumpHeight")),
			TurnSpeed:     float32(v.GetFloat64("movement.turnSpeed")),
			Gravity:       float32(v.GetFloat64("movement.gravity")),
			EyeHeight:     float32(v.GetFloat64("movement.eyeHeight")),

			YawPerPixel:        float32(v.GetFloat64("look.yawPerPixel")),
			PitchPerPixel:      float32(v.GetFloat64("look.pitchPerPixel")),
			MaxPitch:           float32(v.GetFloat64("look.maxPitch")),
			MouseDragThreshold: float32(v.GetFloat64("look.mouseDragThreshold")),
			TouchDragThreshold: float32(v.GetFloat64("look.touchDragThreshold")),

			PinchDeadzone:  float32(v.GetFloat64("dolly.pinchDeadzone")),
			DollyPerPixel:  float32(v.GetFloat64("dolly.perPixel")),
			WheelDollyStep: float32(v.GetFloat64("dolly.wheelStep")),

			StopDistance: float32(v.GetFloat64("seek.stopDistance")),
			SlowRadius:   float32(v.GetFloat64("seek.slowRadius")),
			SeekStrength: float32(v.GetFloat64("seek.strength")),
			StallEpsilon: float32(v.GetFloat64("seek.stallEpsilon")),
			StallTimeout: time.Duration(v.GetInt("seek.stallTimeoutMs")) * time.Millisecond,

			LookAhead: float32(v.GetFloat64("camera.lookAhead")),
		},
	}
	return cfg, nil
}
