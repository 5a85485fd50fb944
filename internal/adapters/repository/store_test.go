package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/hansik/baedal/internal/adapters/repository"
	"github.com/hansik/baedal/internal/domain/auth"
	"github.com/hansik/baedal/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTokenDirectory(t *testing.T) {
	Convey("Given a seeded token directory", t, func() {
		ctx := context.Background()
		d := repository.NewTokenDirectory(repository.WithPrincipals(map[string]auth.Principal{
			"alice_token": {Username: "alice", Email: "alice@example.com", Role: auth.RoleAdmin},
			"bob_token":   {Username: "bob", Email: "bob@example.com", Role: auth.RoleUser},
		}))

		Convey("When resolving a known token", func() {
			p, ok := d.Resolve(ctx, "alice_token")

			Convey("Then the mapped principal is returned", func() {
				So(ok, ShouldBeTrue)
				So(p.Username, ShouldEqual, "alice")
				So(p.Role, ShouldEqual, auth.RoleAdmin)
			})
		})

		Convey("When resolving an unknown token", func() {
			_, ok := d.Resolve(ctx, "mallory_token")

			Convey("Then the lookup misses", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When deleting a known username", func() {
			err := d.Delete(ctx, "bob")

			Convey("Then the principal and its token are gone", func() {
				So(err, ShouldBeNil)
				So(d.Len(ctx), ShouldEqual, 1)
				_, ok := d.Resolve(ctx, "bob_token")
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When deleting an unknown username", func() {
			err := d.Delete(ctx, "mallory")

			Convey("Then it reports not found", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
				So(d.Len(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestUserStore(t *testing.T) {
	Convey("Given a seeded user store", t, func() {
		ctx := context.Background()
		s := repository.NewUserStore(repository.WithUsers([]model.UserRecord{
			{ID: 1, Name: "Kim Chulsoo", Email: "kim@example.com"},
			{ID: 2, Name: "Lee Younghee", Email: "lee@example.com"},
		}))

		Convey("When listing", func() {
			users := s.List(ctx)

			Convey("Then all seeded records come back in order", func() {
				So(users, ShouldHaveLength, 2)
				So(users[0].ID, ShouldEqual, 1)
				So(users[1].Name, ShouldEqual, "Lee Younghee")
			})
		})

		Convey("When getting by id", func() {
			Convey("Then a present id resolves", func() {
				u, err := s.Get(ctx, 2)
				So(err, ShouldBeNil)
				So(u.Email, ShouldEqual, "lee@example.com")
			})

			Convey("And an absent id reports not found", func() {
				_, err := s.Get(ctx, 99)
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When creating records", func() {
			created := s.Create(ctx, "Park Minsoo", "park@example.com")

			Convey("Then the id continues the sequence", func() {
				So(created.ID, ShouldEqual, 3)
				So(s.Len(ctx), ShouldEqual, 3)
			})

			Convey("And the record is immediately retrievable", func() {
				got, err := s.Get(ctx, created.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, created)
			})
		})

		Convey("When creating N records", func() {
			for i := 0; i < 5; i++ {
				s.Create(ctx, fmt.Sprintf("user-%d", i), fmt.Sprintf("u%d@example.com", i))
			}

			Convey("Then ids are unique and increasing", func() {
				users := s.List(ctx)
				for i := 1; i < len(users); i++ {
					So(users[i].ID, ShouldBeGreaterThan, users[i-1].ID)
				}
				So(users[len(users)-1].ID, ShouldEqual, 7)
			})
		})

		Convey("When creating concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 50; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					s.Create(ctx, fmt.Sprintf("c-%d", i), "c@example.com")
				}(i)
			}
			wg.Wait()

			Convey("Then no id is assigned twice", func() {
				seen := make(map[int]bool)
				for _, u := range s.List(ctx) {
					So(seen[u.ID], ShouldBeFalse)
					seen[u.ID] = true
				}
				So(s.Len(ctx), ShouldEqual, 52)
			})
		})
	})
}

func TestCatalog(t *testing.T) {
	Convey("Given the default generated catalog", t, func() {
		ctx := context.Background()
		c := repository.NewCatalog()

		Convey("Then it holds 100 sequential products", func() {
			So(c.Len(ctx), ShouldEqual, 100)
			products := c.List(ctx)
			So(products[0], ShouldResemble, model.Product{ID: 1, Name: "product-1", Price: 1000})
			So(products[99].ID, ShouldEqual, 100)
		})

		Convey("When searching by substring", func() {
			results := c.Search(ctx, "product-10")

			Convey("Then every match contains the keyword", func() {
				// product-10 and product-100
				So(results, ShouldHaveLength, 2)
				So(results[0].Name, ShouldEqual, "product-10")
				So(results[1].Name, ShouldEqual, "product-100")
			})
		})

		Convey("When searching with a keyword that matches nothing", func() {
			results := c.Search(ctx, "PRODUCT")

			Convey("Then matching is case-sensitive and the result is empty", func() {
				So(results, ShouldBeEmpty)
			})
		})
	})

	Convey("Given a custom-size catalog", t, func() {
		ctx := context.Background()
		c := repository.NewCatalog(repository.WithCatalogSize(7))

		Convey("Then the size and prices follow the generator", func() {
			So(c.Len(ctx), ShouldEqual, 7)
			So(c.List(ctx)[6].Price, ShouldEqual, 7000)
		})
	})
}

func TestRestaurantStore(t *testing.T) {
	Convey("Given a seeded restaurant store", t, func() {
		ctx := context.Background()
		s := repository.NewRestaurantStore(repository.WithRestaurants([]model.Restaurant{
			{ID: 1, Name: "Tasty Chicken", Category: "chicken", Rating: 4.5},
			{ID: 2, Name: "Happy Pizza", Category: "pizza", Rating: 4.8},
		}))

		Convey("When searching by an existing category", func() {
			results := s.Search(ctx, "chicken")

			Convey("Then only exact category matches are returned", func() {
				So(results, ShouldHaveLength, 1)
				So(results[0].Name, ShouldEqual, "Tasty Chicken")
			})
		})

		Convey("When searching by a non-existent category", func() {
			results := s.Search(ctx, "sushi")

			Convey("Then the result is empty, not an error", func() {
				So(results, ShouldNotBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When creating a restaurant", func() {
			created := s.Create(ctx, "Lucky Noodles", "noodles", 4.2)

			Convey("Then the id continues the sequence and it is retrievable", func() {
				So(created.ID, ShouldEqual, 3)
				got, err := s.Get(ctx, 3)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, created)
			})
		})

		Convey("When getting an absent id", func() {
			_, err := s.Get(ctx, 42)

			Convey("Then it reports not found", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})
	})
}
