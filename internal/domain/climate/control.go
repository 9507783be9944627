package climate

// ControlState holds the actuator outputs for one cycle.
type ControlState struct {
	Heater     bool
	Humidifier bool
}

// Decide maps setpoints and a reading onto actuator outputs.
//
// An actuator is on only while its reading is strictly below the target, so a
// reading equal to the setpoint switches it off. There is no hysteresis band.
func Decide(target Setpoints, r Reading) ControlState {
	return ControlState{
		Heater:     r.Temperature < target.Temperature,
		Humidifier: r.Humidity < target.Humidity,
	}
}

// OnOff renders an actuator flag the way the console shows it.
func OnOff(on bool) string {
	if on {
		return "ON"
	}

	return "OFF"
}
