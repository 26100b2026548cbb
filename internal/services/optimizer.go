package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"aerobook/internal/utils"
)

// RouteSpec is one active route fed to the optimizer prompt.
type RouteSpec struct {
	From       string   `json:"from"`
	To         string   `json:"to"`
	Departures []string `json:"departures"`
}

// DefaultRoutes is the fixed route table the optimizer reasons about.
var DefaultRoutes = []RouteSpec{
	{From: "New York, NY", To: "Boston, MA", Departures: []string{"08:00", "12:00", "16:00"}},
	{From: "Los Angeles, CA", To: "San Francisco, CA", Departures: []string{"09:00", "13:00", "17:00"}},
	{From: "Chicago, IL", To: "Minneapolis, MN", Departures: []string{"07:30", "11:30", "15:30"}},
	{From: "Houston, TX", To: "Dallas, TX", Departures: []string{"10:00", "14:00", "18:00"}},
}

type OptimizedSchedule struct {
	RouteName         string   `json:"route_name"`
	NewDepartureTimes []string `json:"new_departure_times"`
	Justification     string   `json:"justification"`
}

type RouteSuggestion struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	SuggestedTimes []string `json:"suggested_times"`
	Rationale      string   `json:"rationale"`
}

// OptimizationResult is the structured payload shown on the operator
// dashboard. Source tells the UI whether it is live model output or the
// canned fallback.
type OptimizationResult struct {
	OptimizedSchedules  []OptimizedSchedule `json:"optimized_schedules"`
	NewRouteSuggestions []RouteSuggestion   `json:"new_route_suggestions"`
	Source              string              `json:"source"`
}

const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"

	defaultOptimizeTimeout = 15 * time.Second
)

// GenerateFunc produces the raw JSON text for a prompt. The production
// implementation lives in internal/gemini.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// RouteOptimizer degrades to the fallback payload whenever the credential is
// missing or the generation call fails; it never surfaces a hard error and
// never touches the trip store.
type RouteOptimizer struct {
	APIKey    string
	Routes    []RouteSpec
	Timeout   time.Duration
	Generate  GenerateFunc
	RequestID string
}

func (s RouteOptimizer) Optimize(ctx context.Context) OptimizationResult {
	if s.APIKey == "" || s.Generate == nil {
		utils.LogEvent(s.RequestID, "optimizer", "fallback", "no credential configured, serving mock suggestions")
		return FallbackResult()
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultOptimizeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := s.Generate(ctx, BuildPrompt(s.routes()))
	if err != nil {
		utils.LogEvent(s.RequestID, "optimizer", "fallback", "generation failed: "+err.Error())
		return FallbackResult()
	}

	var res OptimizationResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		utils.LogEvent(s.RequestID, "optimizer", "fallback", "unparsable response: "+err.Error())
		return FallbackResult()
	}

	if res.OptimizedSchedules == nil {
		res.OptimizedSchedules = []OptimizedSchedule{}
	}
	if res.NewRouteSuggestions == nil {
		res.NewRouteSuggestions = []RouteSuggestion{}
	}
	res.Source = SourceGemini
	return res
}

func (s RouteOptimizer) routes() []RouteSpec {
	if len(s.Routes) > 0 {
		return s.Routes
	}
	return DefaultRoutes
}

// BuildPrompt renders the optimization request for the model.
func BuildPrompt(routes []RouteSpec) string {
	var sb strings.Builder
	for _, r := range routes {
		fmt.Fprintf(&sb, "- Route: %s to %s, current departures: %s\n", r.From, r.To, strings.Join(r.Departures, ", "))
	}

	return fmt.Sprintf(`You are a logistics and route optimization expert for a transport company called AeroBook Pro.
Given the following routes and constraints, provide optimized schedules and potential new, more efficient routes.
Consider factors like minimizing fuel consumption, avoiding peak traffic hours (assume typical 7-9AM and 4-6PM peaks in major cities), and maximizing passenger capacity.
Drivers must have a 30-minute break after 4 hours of driving.

Current Routes:
%s
Provide your suggestions in a structured JSON format. Do not add any markdown formatting.`, sb.String())
}

// FallbackResult is the canned payload served when the model is unreachable.
func FallbackResult() OptimizationResult {
	return OptimizationResult{
		OptimizedSchedules: []OptimizedSchedule{
			{
				RouteName:         "New York, NY to Boston, MA",
				NewDepartureTimes: []string{"07:00", "11:00", "15:00", "19:00"},
				Justification:     "Adjusted to avoid peak morning and evening traffic in NYC, improving on-time performance. Added an evening departure to capture more demand.",
			},
			{
				RouteName:         "Los Angeles, CA to San Francisco, CA",
				NewDepartureTimes: []string{"08:30", "12:30", "16:30"},
				Justification:     "Slightly delayed departures to miss the worst of LA's morning commute congestion.",
			},
		},
		NewRouteSuggestions: []RouteSuggestion{
			{
				From:           "San Jose, CA",
				To:             "Sacramento, CA",
				SuggestedTimes: []string{"09:00", "16:00"},
				Rationale:      "Connects two major tech and government hubs with high potential commuter traffic. Mid-morning and late-afternoon times are optimal for business travelers.",
			},
		},
		Source: SourceFallback,
	}
}
