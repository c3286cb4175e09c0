package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity        float64 `json:"gravity"`        // px/s^2, positive is down
	FatalSpeed     float64 `json:"fatalSpeed"`     // landing faster than this kills
	AutoStepAmount int     `json:"autoStepAmount"` // max ledge height climbed while walking
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
	Deceleration float64 `json:"deceleration"`
	MaxSpeed     float64 `json:"maxSpeed"`
	AirControl   float64 `json:"airControl"` // acceleration factor while airborne
}

type JumpConfig struct {
	Impulse float64 `json:"impulse"`
}

// Validate reports settings that would make the simulation meaningless
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return &InvalidValueError{Field: "display.screenWidth/screenHeight"}
	case c.Display.Scale <= 0:
		return &InvalidValueError{Field: "display.scale"}
	case c.Display.Framerate <= 0:
		return &InvalidValueError{Field: "display.framerate"}
	case c.Physics.AutoStepAmount < 0:
		return &InvalidValueError{Field: "physics.autoStepAmount"}
	case c.Movement.MaxSpeed < 0:
		return &InvalidValueError{Field: "movement.maxSpeed"}
	}
	return nil
}

// TickDuration returns the fixed simulation step in seconds
func (c *PhysicsConfig) TickDuration() float64 {
	return 1.0 / float64(c.Display.Framerate)
}

// InvalidValueError reports an out-of-range config value
type InvalidValueError struct {
	Field string
}

func (e *InvalidValueError) Error() string {
	return "invalid config value: " + e.Field
}
