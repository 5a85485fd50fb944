package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// A check probes one observable contract of the running server.
type check struct {
	name string
	run  func(ctx context.Context, c *client) error
}

// checks are ordered cheapest first; the runner executes all of them
// regardless of individual failures. Every probe is chosen to be safe
// against a live server: nothing existing is deleted and created records
// use unique names.
var checks = []check{
	{name: "landing page is public", run: checkLanding},
	{name: "auth chain rejects missing and unknown tokens", run: checkAuthChain},
	{name: "admin gate distinguishes 401 from 403", run: checkAdminGate},
	{name: "page limit is capped", run: checkLimitCap},
	{name: "page past the end is empty, not an error", run: checkPastEnd},
	{name: "tail page exhausts the catalog", run: checkTailPage},
	{name: "created records get sequential ids", run: checkSequentialIDs},
	{name: "category search is exact", run: checkCategorySearch},
	{name: "admin delete of unknown username is not found", run: checkDeleteUnknown},
}

func expectStatus(got, want int, what string) error {
	if got != want {
		return fmt.Errorf("%s: got status %d, want %d", what, got, want)
	}
	return nil
}

func checkLanding(ctx context.Context, c *client) error {
	status, body, err := c.get(ctx, "/", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /"); err != nil {
		return err
	}
	if msg, _ := body["message"].(string); msg == "" {
		return fmt.Errorf("GET /: empty message")
	}
	return nil
}

func checkAuthChain(ctx context.Context, c *client) error {
	status, _, err := c.get(ctx, "/profile", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusUnauthorized, "GET /profile without token"); err != nil {
		return err
	}

	status, _, err = c.get(ctx, "/profile", url.Values{"token": {"not-a-token-" + uuid.NewString()}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusUnauthorized, "GET /profile with unknown token"); err != nil {
		return err
	}

	status, body, err := c.get(ctx, "/profile", url.Values{"token": {"bob_token"}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /profile with valid token"); err != nil {
		return err
	}
	profile, _ := body["profile"].(map[string]any)
	if profile == nil || profile["username"] != "bob" {
		return fmt.Errorf("GET /profile: unexpected profile %v", body["profile"])
	}
	return nil
}

func checkAdminGate(ctx context.Context, c *client) error {
	status, _, err := c.get(ctx, "/admin", url.Values{"token": {"bob_token"}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusForbidden, "GET /admin as non-admin"); err != nil {
		return err
	}

	status, _, err = c.get(ctx, "/admin", url.Values{"token": {"alice_token"}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /admin as admin"); err != nil {
		return err
	}

	status, _, err = c.get(ctx, "/admin", nil)
	if err != nil {
		return err
	}
	return expectStatus(status, http.StatusUnauthorized, "GET /admin without token")
}

func checkLimitCap(ctx context.Context, c *client) error {
	status, body, err := c.get(ctx, "/products", url.Values{"limit": {"500"}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /products?limit=500"); err != nil {
		return err
	}
	if limit, _ := body["limit"].(float64); limit != 100 {
		return fmt.Errorf("limit=500 was not reduced to 100, got %v", body["limit"])
	}
	return nil
}

func checkPastEnd(ctx context.Context, c *client) error {
	status, body, err := c.get(ctx, "/products", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /products"); err != nil {
		return err
	}
	total, _ := body["total"].(float64)

	status, body, err = c.get(ctx, "/products", url.Values{"skip": {fmt.Sprint(int(total))}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /products past the end"); err != nil {
		return err
	}
	if products, _ := body["products"].([]any); len(products) != 0 {
		return fmt.Errorf("page past the end returned %d items", len(products))
	}
	if got, _ := body["total"].(float64); got != total {
		return fmt.Errorf("total changed from %v to %v on empty page", total, got)
	}
	return nil
}

func checkTailPage(ctx context.Context, c *client) error {
	status, body, err := c.get(ctx, "/products", nil)
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /products"); err != nil {
		return err
	}
	rawTotal, _ := body["total"].(float64)
	total := int(rawTotal)
	if total < 10 {
		return nil // catalog too small for a meaningful tail probe
	}

	skip := total - 10
	status, body, err = c.get(ctx, "/products", url.Values{
		"skip":  {fmt.Sprint(skip)},
		"limit": {"20"},
	})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET tail page"); err != nil {
		return err
	}
	products, _ := body["products"].([]any)
	if len(products) != 10 {
		return fmt.Errorf("tail page: got %d items, want 10", len(products))
	}
	return nil
}

func checkSequentialIDs(ctx context.Context, c *client) error {
	create := func() (int, error) {
		tag := uuid.NewString()
		status, body, err := c.post(ctx, "/users/", url.Values{
			"name":  {"smoke-" + tag},
			"email": {tag + "@example.com"},
		})
		if err != nil {
			return 0, err
		}
		if err := expectStatus(status, http.StatusOK, "POST /users/"); err != nil {
			return 0, err
		}
		user, _ := body["user"].(map[string]any)
		if user == nil {
			return 0, fmt.Errorf("POST /users/: no user in response")
		}
		id, ok := user["id"].(float64)
		if !ok {
			return 0, fmt.Errorf("POST /users/: user has no numeric id")
		}
		return int(id), nil
	}

	first, err := create()
	if err != nil {
		return err
	}
	second, err := create()
	if err != nil {
		return err
	}
	if second != first+1 {
		return fmt.Errorf("ids not sequential: %d then %d", first, second)
	}

	status, body, err := c.get(ctx, fmt.Sprintf("/users/%d", second), nil)
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET created user"); err != nil {
		return err
	}
	if id, _ := body["id"].(float64); int(id) != second {
		return fmt.Errorf("created user not retrievable by id %d", second)
	}
	return nil
}

func checkCategorySearch(ctx context.Context, c *client) error {
	category := "smoke-" + uuid.NewString()
	status, _, err := c.post(ctx, "/restaurants/", url.Values{
		"name":     {"Smoke Diner"},
		"category": {category},
		"rating":   {"4.0"},
	})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "POST /restaurants/"); err != nil {
		return err
	}

	status, body, err := c.get(ctx, "/restaurants/search", url.Values{"category": {category}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /restaurants/search"); err != nil {
		return err
	}
	if results, _ := body["results"].([]any); len(results) != 1 {
		return fmt.Errorf("search for fresh category: got %d results, want 1", len(results))
	}

	status, body, err = c.get(ctx, "/restaurants/search", url.Values{"category": {"absent-" + category}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusOK, "GET /restaurants/search absent category"); err != nil {
		return err
	}
	if results, _ := body["results"].([]any); len(results) != 0 {
		return fmt.Errorf("search for absent category returned %d results", len(results))
	}
	return nil
}

func checkDeleteUnknown(ctx context.Context, c *client) error {
	username := "ghost-" + uuid.NewString()
	status, _, err := c.delete(ctx, "/users/"+username, url.Values{"token": {"alice_token"}})
	if err != nil {
		return err
	}
	if err := expectStatus(status, http.StatusNotFound, "DELETE unknown username"); err != nil {
		return err
	}

	status, _, err = c.delete(ctx, "/users/"+username, nil)
	if err != nil {
		return err
	}
	return expectStatus(status, http.StatusUnauthorized, "DELETE without token")
}
