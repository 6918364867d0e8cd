package unitconv

const (
	celsius    = "°C"
	fahrenheit = "°F"
	kelvin     = "K"
	rankine    = "°R"
)

func temperatureCategory() *Category {
	return newCategory(Temperature, "Temperature", "", KindAffine,
		affine(celsius, "Celsius (°C)", "°C", fromCelsius),
		affine(fahrenheit, "Fahrenheit (°F)", "°F", fromFahrenheit),
		affine(kelvin, "Kelvin (K)", "K", fromKelvin),
		affine(rankine, "Rankine (°R)", "°R", fromRankine),
	)
}

func fromCelsius(v float64, target string) (float64, bool) {
	switch target {
	case celsius:
		return v, true
	case fahrenheit:
		return v*9/5 + 32, true
	case kelvin:
		return v + 273.15, true
	case rankine:
		return (v + 273.15) * 9 / 5, true
	}
	return 0, false
}

func fromFahrenheit(v float64, target string) (float64, bool) {
	switch target {
	case fahrenheit:
		return v, true
	case celsius:
		return (v - 32) * 5 / 9, true
	case kelvin:
		return (v-32)*5/9 + 273.15, true
	case rankine:
		return v + 459.67, true
	}
	return 0, false
}

func fromKelvin(v float64, target string) (float64, bool) {
	switch target {
	case kelvin:
		return v, true
	case celsius:
		return v - 273.15, true
	case fahrenheit:
		return (v-273.15)*9/5 + 32, true
	case rankine:
		return v * 9 / 5, true
	}
	return 0, false
}

func fromRankine(v float64, target string) (float64, bool) {
	switch target {
	case rankine:
		return v, true
	case celsius:
		return (v - 491.67) * 5 / 9, true
	case fahrenheit:
		return v - 459.67, true
	case kelvin:
		return v * 5 / 9, true
	}
	return 0, false
}
