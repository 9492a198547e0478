package model

// Watt is a non-negative power rating.
type Watt uint32

type Celsius float64

type Fahrenheit float64

type Kelvin float64

func (c Celsius) Fahrenheit() Fahrenheit {
	return Fahrenheit(float64(c)*9/5 + 32)
}

func (c Celsius) Kelvin() Kelvin {
	return Kelvin(float64(c) + 273.15)
}

func (f Fahrenheit) Celsius() Celsius {
	return Celsius((float64(f) - 32) * 5 / 9)
}

func (k Kelvin) Celsius() Celsius {
	return Celsius(float64(k) - 273.15)
}
