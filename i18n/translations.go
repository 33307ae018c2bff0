package i18n

var translations = Table{
	English: {
		"appTitle":           "WeatherMine",
		"appDescription":     "Get accurate weather forecasts and hourly predictions for any city worldwide. Real-time weather data with detailed hourly forecasts.",
		"searchPlaceholder":  "Enter city or village",
		"searchButton":       "Search",
		"useCurrentLocation": "Use current location",

		// conditions
		"clear":  "Clear",
		"cloudy": "Cloudy",
		"rainy":  "Rainy",
		"snowy":  "Snowy",
		"stormy": "Stormy",

		"wind":      "Wind",
		"humidity":  "Humidity",
		"feelsLike": "Feels Like",
		"sunrise":   "Sunrise",
		"sunset":    "Sunset",
		"weather":   "Weather",

		// day/night and seasons
		"day":    "Day",
		"night":  "Night",
		"spring": "Spring",
		"summer": "Summer",
		"autumn": "Autumn",
		"winter": "Winter",

		"hourlyForecast": "24-Hour Forecast",
		"rain":           "Rain",

		"enableLocationTitle": "Enable Location Access",
		"enableLocationText":  "Allow WeatherMine to access your location to show weather for your current area.",
		"allow":               "Allow",
		"notNow":              "Not Now",

		"gettingLocation":    "Getting your location...",
		"loadingWeather":     "Loading weather for your location...",
		"loadingWeatherData": "Loading weather data...",

		// errors
		"locationDenied":      "Location access denied. Please enable location permissions.",
		"locationUnavailable": "Location information unavailable.",
		"locationTimeout":     "Location request timed out.",
		"unableToGetLocation": "Unable to get your location",
		"failedToGetWeather":  "Failed to get weather for your location",
		"cityNotFound":        "City not found",
		"failedToFetch":       "Failed to fetch weather data",

		"settings":     "Settings",
		"theme":        "Theme",
		"language":     "Language",
		"light":        "Light",
		"dark":         "Dark",
		"english":      "English",
		"spanish":      "Spanish",
		"openSettings": "Open settings",

		"home":                 "Home",
		"searchWeather":        "Search Weather",
		"searchHelp":           "Type at least 2 characters to see suggestions",
		"weatherFor":           "Weather for",
		"weatherInformation":   "Weather Information",
		"currentWeatherIn":     "Current weather in",
		"getAccurateForecasts": "Get accurate weather forecasts and hourly predictions.",

		"keywords": "weather, forecast, temperature, humidity, wind, rain, snow, hourly forecast, weather app, meteorology, climate",
	},
	Spanish: {
		"appTitle":           "WeatherMine",
		"appDescription":     "Obtén pronósticos meteorológicos precisos y predicciones por horas para cualquier ciudad del mundo. Datos meteorológicos en tiempo real con pronósticos detallados por horas.",
		"searchPlaceholder":  "Ingresa ciudad o pueblo",
		"searchButton":       "Buscar",
		"useCurrentLocation": "Usar ubicación actual",

		"clear":  "Despejado",
		"cloudy": "Nublado",
		"rainy":  "Lluvioso",
		"snowy":  "Nevado",
		"stormy": "Tormentoso",

		"wind":      "Viento",
		"humidity":  "Humedad",
		"feelsLike": "Sensación",
		"sunrise":   "Amanecer",
		"sunset":    "Atardecer",
		"weather":   "Clima",

		"day":    "Día",
		"night":  "Noche",
		"spring": "Primavera",
		"summer": "Verano",
		"autumn": "Otoño",
		"winter": "Invierno",

		"hourlyForecast": "Pronóstico de 24 Horas",
		"rain":           "Lluvia",

		"enableLocationTitle": "Habilitar Acceso a Ubicación",
		"enableLocationText":  "Permite a WeatherMine acceder a tu ubicación para mostrar el clima de tu área actual.",
		"allow":               "Permitir",
		"notNow":              "Ahora No",

		"gettingLocation":    "Obteniendo tu ubicación...",
		"loadingWeather":     "Cargando clima para tu ubicación...",
		"loadingWeatherData": "Cargando datos del clima...",

		"locationDenied":      "Acceso a ubicación denegado. Por favor habilita los permisos de ubicación.",
		"locationUnavailable": "Información de ubicación no disponible.",
		"locationTimeout":     "Tiempo de espera de ubicación agotado.",
		"unableToGetLocation": "No se puede obtener tu ubicación",
		"failedToGetWeather":  "Error al obtener el clima para tu ubicación",
		"cityNotFound":        "Ciudad no encontrada",
		"failedToFetch":       "Error al obtener datos del clima",

		"settings":     "Configuración",
		"theme":        "Tema",
		"language":     "Idioma",
		"light":        "Claro",
		"dark":         "Oscuro",
		"english":      "Inglés",
		"spanish":      "Español",
		"openSettings": "Abrir configuración",

		"home":                 "Inicio",
		"searchWeather":        "Buscar Clima",
		"searchHelp":           "Escribe al menos 2 caracteres para ver sugerencias",
		"weatherFor":           "Clima para",
		"weatherInformation":   "Información del Clima",
		"currentWeatherIn":     "Clima actual en",
		"getAccurateForecasts": "Obtén pronósticos meteorológicos precisos y predicciones por horas.",

		"keywords": "clima, pronóstico, temperatura, humedad, viento, lluvia, nieve, pronóstico por horas, app del clima, meteorología, tiempo",
	},
}
