package unitconv

func lengthCategory() *Category {
	return newCategory(Length, "Length", "m", KindLinear,
		linear("m", "Meters", "m", 1),
		linear("cm", "Centimeters", "cm", 0.01),
		linear("mm", "Millimeters", "mm", 0.001),
		linear("in", "Inches", "in", 0.0254),
		linear("ft", "Feet", "ft", 0.3048),
		linear("yd", "Yards", "yd", 0.9144),
		linear("km", "Kilometers", "km", 1000),
		linear("mi", "Miles", "mi", 1609.34),
		linear("nmi", "Nautical Miles", "nmi", 1852),
	)
}

func weightCategory() *Category {
	return newCategory(Weight, "Weight", "kg", KindLinear,
		linear("kg", "Kilograms", "kg", 1),
		linear("g", "Grams", "g", 0.001),
		linear("mg", "Milligrams", "mg", 0.000001),
		linear("lb", "Pounds (lbs)", "lb", 0.453592),
		linear("oz", "Ounces (oz)", "oz", 0.0283495),
		linear("ton", "Tons (Metric)", "ton", 1000),
	)
}

func areaCategory() *Category {
	return newCategory(Area, "Area", "m²", KindLinear,
		linear("m²", "Square Meters", "m²", 1),
		linear("ft²", "Square Feet", "ft²", 0.092903),
		linear("km²", "Square Kilometers", "km²", 1_000_000),
		linear("mi²", "Square Miles", "mi²", 2_589_988),
		linear("acre", "Acres", "acre", 4046.86),
		linear("ha", "Hectares", "ha", 10_000),
		linear("yd²", "Square Yards", "yd²", 0.836127),
	)
}

// cooking measures are US customary approximations
func volumeCategory() *Category {
	return newCategory(Volume, "Volume", "ml", KindLinear,
		linear("ml", "Milliliters", "ml", 1),
		linear("L", "Liters", "L", 1000),
		linear("tsp", "Teaspoons", "tsp", 4.92892),
		linear("tbsp", "Tablespoons", "tbsp", 14.7868),
		linear("cup", "Cups (US)", "cup", 236.588),
		linear("fl_oz", "Fluid Ounces", "fl oz", 29.5735),
		linear("gal", "Gallons (US)", "gal", 3785.41),
		linear("m³", "Cubic Meters", "m³", 1_000_000),
		linear("ft³", "Cubic Feet", "ft³", 28316.8),
		linear("in³", "Cubic Inches", "in³", 16.3871),
	)
}

func speedCategory() *Category {
	return newCategory(Speed, "Speed", "km/h", KindLinear,
		linear("km/h", "Kilometers/Hour", "km/h", 1),
		linear("mph", "Miles/Hour", "mph", 1.60934),
		linear("m/s", "Meters/Second", "m/s", 3.6),
		linear("knot", "Knots", "knot", 1.852),
		linear("ft/s", "Feet/Second", "ft/s", 1.09728),
	)
}

// month and year are Gregorian averages, not calendar aware.
func timeCategory() *Category {
	return newCategory(Time, "Time", "sec", KindLinear,
		linear("sec", "Seconds", "s", 1),
		linear("min", "Minutes", "min", 60),
		linear("hr", "Hours", "hr", 3600),
		linear("day", "Days", "day", 86400),
		linear("week", "Weeks", "week", 604800),
		linear("month", "Months (approx)", "month", 2629746),
		linear("year", "Years (approx)", "year", 31556952),
	)
}

// binary multiples
func dataCategory() *Category {
	return newCategory(Data, "Data", "B", KindLinear,
		linear("B", "Bytes", "B", 1),
		linear("KB", "Kilobytes", "KB", 1024),
		linear("MB", "Megabytes", "MB", 1024 * 1024),
		linear("GB", "Gigabytes", "GB", 1024 * 1024 * 1024),
		linear("TB", "Terabytes", "TB", 1024 * 1024 * 1024 * 1024),
	)
}
