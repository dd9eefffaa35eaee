package aggregate_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/jonwraymond/leagueops/aggregate"
	"github.com/jonwraymond/leagueops/cache"
	"github.com/jonwraymond/leagueops/sleeper"
)

func ExampleAggregator_LeagueData() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/league/123":
			fmt.Fprint(w, `{"league_id":"123","name":"Sunday Legends"}`)
		case "/league/123/rosters":
			fmt.Fprint(w, `[{"roster_id":1},{"roster_id":2}]`)
		case "/league/123/users":
			fmt.Fprint(w, `[{"user_id":"u1"},{"user_id":"u2"}]`)
		}
	}))
	defer server.Close()

	client := sleeper.New(sleeper.Config{BaseURL: server.URL, Policy: cache.DefaultPolicy()})
	agg := aggregate.New(client, nil)

	result := agg.LeagueData(context.Background(), "123")

	fmt.Println("Success:", result.Success)
	fmt.Println("League:", result.League.Name)
	fmt.Println("Rosters:", len(result.Rosters), "Users:", len(result.Users))
	// Output:
	// Success: true
	// League: Sunday Legends
	// Rosters: 2 Users: 2
}

func ExampleAggregator_DraftData_noDrafts() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := sleeper.New(sleeper.Config{BaseURL: server.URL, Policy: cache.DefaultPolicy()})
	agg := aggregate.New(client, nil)

	result := agg.DraftData(context.Background(), "123")

	fmt.Println("Success:", result.Success)
	fmt.Println("Error:", result.Error)
	// Output:
	// Success: false
	// Error: No drafts found for this league
}
