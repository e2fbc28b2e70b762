// Command vitalog is a terminal front end for the tracking library: it
// signs in, refreshes the cached state and prints today's summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"vitalog/internal/api"
	"vitalog/internal/api/mockapi"
	"vitalog/internal/api/remoteapi"
	"vitalog/internal/appdata"
	"vitalog/internal/config"
	"vitalog/internal/models"
	"vitalog/internal/summary"
	"vitalog/internal/tokenstore"
)

const (
	waterGoalMl      = 2000
	sleepGoalHours   = 8
	activityGoalMins = 30
)

func main() {
	name := flag.String("name", "", "account name (omit to reuse a stored session)")
	password := flag.String("password", "", "account password")
	remember := flag.Bool("remember", false, "persist the session across restarts")
	logout := flag.Bool("logout", false, "clear the stored session and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	tokens := tokenstore.New(cfg.TokenFile)
	if *logout {
		if err := tokens.Clear(); err != nil {
			log.Fatalf("Failed to clear session: %v", err)
		}
		fmt.Println("Signed out.")
		return
	}

	client := buildClient(cfg)
	ctx := context.Background()

	if *name != "" {
		resp, err := client.Login(ctx, models.Credentials{Name: *name, Password: *password})
		if err != nil {
			log.Fatalf("Login failed: %v", err)
		}
		if err := tokens.Save(resp.Token, *remember); err != nil {
			log.Fatalf("Failed to store session: %v", err)
		}
	}

	store := appdata.New(client, tokens)
	store.RefreshAll(ctx)

	printSummary(store.Snapshot())
}

// buildClient selects the API client implementation per configuration.
func buildClient(cfg *config.Config) api.Client {
	if cfg.ClientMode == config.ModeRemote {
		return remoteapi.New(cfg.APIBaseURL,
			remoteapi.WithTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second))
	}

	opts := []mockapi.Option{mockapi.WithDemoData()}
	if !cfg.MockLatency {
		opts = append(opts, mockapi.WithoutLatency())
	}
	return mockapi.New(opts...)
}

func printSummary(state appdata.State) {
	if state.Profile == nil {
		fmt.Println("Not signed in. Pass -name and -password to log in.")
		return
	}

	fmt.Printf("Signed in as %s\n", state.Profile.Name)
	if state.BMI != nil {
		fmt.Printf("BMI: %.1f (%s)\n", *state.BMI, summary.ClassifyBMI(*state.BMI))
	}

	today := time.Now()
	water := summary.WaterTotal(state.Water, today)
	sleep := summary.SleepTotal(state.Sleep, today)
	activity := summary.ActivityTotal(state.Activity, today)

	fmt.Printf("Water:    %4.0f ml   (%s of %d ml)\n", water, summary.PercentLabel(water, waterGoalMl), waterGoalMl)
	fmt.Printf("Sleep:    %4.1f h    (%s of %d h)\n", sleep, summary.PercentLabel(sleep, sleepGoalHours), sleepGoalHours)
	fmt.Printf("Activity: %4.0f min  (%s of %d min)\n", activity, summary.PercentLabel(activity, activityGoalMins), activityGoalMins)

	if len(state.CustomCategories) > 0 {
		fmt.Println("Tracked categories:")
		for _, cat := range state.CustomCategories {
			fmt.Printf("  - %s\n", cat.CategoryName)
		}
	}
	if state.LastError != "" {
		fmt.Printf("Warning: last refresh error: %s\n", state.LastError)
	}
}
