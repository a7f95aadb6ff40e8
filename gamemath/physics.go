package gamemath

// ApplyFriction reduces speed toward zero by friction amount without overshooting.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
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

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StepToward moves v one unit toward zero, keeping its sign until it reaches zero.
func StepToward(v int) int {
	if v > 0 {
		return v - 1
	}
	if v < 0 {
		return v + 1
	}
	return 0
}

func AbsInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
