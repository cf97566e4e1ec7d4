package gamemath

import "math"

// Accelerate adds accel to speed and clamps the result to [-max, max].
func Accelerate(speed, accel, max float64) float64 {
	return ClampSpeed(speed+accel, max)
}

// ApplyDecay moves speed toward zero by decay. Speeds whose magnitude is
// below decay snap to exactly zero.
func ApplyDecay(speed, decay float64) float64 {
	if speed >= decay {
		return speed - decay
	}
	if speed <= -decay {
		return speed + decay
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Truncate drops the fractional part of speed, rounding toward zero.
func Truncate(speed float64) int {
	return int(math.Trunc(speed))
}
