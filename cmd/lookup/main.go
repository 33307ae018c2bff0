package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"weathermine/collector"
	"weathermine/datasource"
	"weathermine/i18n"
	"weathermine/models"
	"weathermine/preferences"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configFile := flag.String("config", "config.yaml", "Path to configuration file (YAML or JSON)")
	langFlag := flag.String("lang", "", "Output language (en, es); defaults to the saved preference")
	setLang := flag.String("set-lang", "", "Save the preferred language and exit")
	setTheme := flag.String("set-theme", "", "Save the preferred theme (light, dark) and exit")
	suggest := flag.String("suggest", "", "List places matching a prefix and exit")
	lat := flag.Float64("lat", 0, "Latitude, used with -lon instead of a city name")
	lon := flag.Float64("lon", 0, "Longitude, used with -lat instead of a city name")
	asJSON := flag.Bool("json", false, "Print JSON instead of text")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [city ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	config, err := datasource.LoadConfig(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		config = datasource.DefaultConfig()
	} else if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ApplyEnv()

	prefs, closePrefs, err := preferences.Open(config.Preferences.Path)
	if err != nil {
		log.Fatalf("Failed to open preferences: %v", err)
	}
	defer closePrefs()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *setLang != "" || *setTheme != "" {
		if err := savePreferences(ctx, prefs, *setLang, *setTheme); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("language=%s theme=%s\n", prefs.Language(ctx), prefs.Theme(ctx))
		return
	}

	lang := prefs.Language(ctx)
	if *langFlag != "" {
		lang = i18n.Match(*langFlag)
	}

	c := collector.NewFromConfig(config)

	if *suggest != "" {
		suggestions, err := c.Geocoder().Suggest(ctx, *suggest)
		if err != nil {
			fail(err, lang)
		}
		printSuggestions(suggestions, *asJSON)
		return
	}

	useCoords := isFlagSet("lat") && isFlagSet("lon")
	cities := flag.Args()
	if len(cities) == 0 && !useCoords {
		flag.Usage()
		os.Exit(2)
	}

	if useCoords {
		forecast, err := c.LookupCoordinates(ctx, models.Coordinates{Latitude: *lat, Longitude: *lon}, lang)
		if err != nil {
			fail(err, lang)
		}
		printForecast(forecast, lang, *asJSON)
		return
	}

	failed := false
	for _, res := range c.CollectAll(ctx, cities, lang) {
		if res.Err != nil {
			log.Printf("%s: %s (%v)", res.Query, i18n.Translate(errorKey(res.Err), lang), res.Err)
			failed = true
			continue
		}
		printForecast(*res.Forecast, lang, *asJSON)
	}
	if failed {
		os.Exit(1)
	}
}

func savePreferences(ctx context.Context, prefs *preferences.Preferences, lang, theme string) error {
	if lang != "" {
		l, ok := i18n.Parse(lang)
		if !ok {
			return fmt.Errorf("unsupported language: %s", lang)
		}
		if err := prefs.SetLanguage(ctx, l); err != nil {
			return fmt.Errorf("failed to save language: %w", err)
		}
	}
	if theme != "" {
		t, ok := preferences.ParseTheme(theme)
		if !ok {
			return fmt.Errorf("unsupported theme: %s", theme)
		}
		if err := prefs.SetTheme(ctx, t); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
	}
	return nil
}

func errorKey(err error) string {
	if errors.Is(err, datasource.ErrNotFound) {
		return "cityNotFound"
	}
	return "failedToFetch"
}

func fail(err error, lang i18n.Language) {
	log.Printf("%s (%v)", i18n.Translate(errorKey(err), lang), err)
	os.Exit(1)
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printSuggestions(suggestions []models.Suggestion, asJSON bool) {
	if asJSON {
		printJSON(suggestions)
		return
	}
	for _, s := range suggestions {
		parts := []string{s.Name}
		for _, p := range []string{s.Admin2, s.Admin1, s.Country} {
			if p != "" && p != s.Name {
				parts = append(parts, p)
			}
		}
		fmt.Printf("%s (%.4f, %.4f)\n", strings.Join(parts, ", "), s.Latitude, s.Longitude)
	}
}

func printForecast(f models.NormalizedForecast, lang i18n.Language, asJSON bool) {
	if asJSON {
		printJSON(f)
		return
	}

	t := func(key string) string { return i18n.Translate(key, lang) }

	fmt.Printf("%s %s\n", t("weatherFor"), f.City)
	fmt.Printf("  %d°C (%d° / %d°), %s\n", f.Temperature, f.MinTemperature, f.MaxTemperature, f.Condition)
	fmt.Printf("  %s: %d km/h  %s: %d%%\n", t("wind"), f.WindSpeed, t("humidity"), f.Humidity)
	fmt.Printf("  %s: %s  %s: %s  (%s, %s, %s)\n", t("sunrise"), f.Sunrise, t("sunset"), f.Sunset,
		f.CurrentTime, f.DayNight, f.Season)

	if len(f.HourlyTime) == 0 {
		return
	}
	fmt.Printf("  %s\n", t("hourlyForecast"))
	for i, ts := range f.HourlyTime {
		hour := ts
		if parsed, err := time.Parse("2006-01-02T15:04", ts); err == nil {
			hour = parsed.Format("15:04")
		}
		fmt.Printf("    %s %s %s %s\n", hour,
			at(f.HourlyTemperature, i, "%d°"),
			at(f.HourlyPrecipitation, i, t("rain")+" %.0f%%"),
			at(f.HourlyPrecipitationAmount, i, "%.1f mm"))
	}
}

// at formats values[i] when the sequence is long enough
func at[T any](values []T, i int, format string) string {
	if i >= len(values) {
		return "-"
	}
	return fmt.Sprintf(format, values[i])
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}
}
