package universe

import (
	"errors"
	"fmt"
)

// Options represents the Universe's configurable options
type Options struct {
	Width    int
	Height   int
	Speed    int    //initial speed level
	Seed     int64  //random seed, 0 means seeded from the clock
	Pattern  string //initial population: noise, glider or empty
	MaxSteps int    //generation limit for the headless run
}

// default options
const (
	DefWidth    = 100
	DefHeight   = 25
	DefSpeed    = SpeedStart
	DefMaxSteps = 1000
	DefPattern  = PatternNoise
)

// speed levels, MaxSpeed is the uncapped level
const (
	SpeedMin   = 0
	SpeedStart = 1
	MaxSpeed   = 6
)

// initial population patterns
const (
	PatternNoise  = "noise"
	PatternGlider = "glider"
	PatternEmpty  = "empty"
)

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Speed:    DefSpeed,
	Pattern:  DefPattern,
	MaxSteps: DefMaxSteps,
}

var ErrInvalidOptions = errors.New("invalid options")

// Validate checks the options before the universe is created
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: dimension %v x %v", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Speed < SpeedMin || o.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %v is outside [%v, %v]", ErrInvalidOptions, o.Speed, SpeedMin, MaxSpeed)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: negative maxSteps %v", ErrInvalidOptions, o.MaxSteps)
	}
	switch o.Pattern {
	case PatternNoise, PatternGlider, PatternEmpty:
	default:
		return fmt.Errorf("%w: unknown pattern %q", ErrInvalidOptions, o.Pattern)
	}
	return nil
}
