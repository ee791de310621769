// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/lunch-decider/db"
	"github.com/danielhkuo/lunch-decider/models"
	"github.com/danielhkuo/lunch-decider/testutil"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return New(conn)
}

func TestRestaurants(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, r := range []models.Restaurant{
		{ID: "r2", Name: "Pizza Place", APIKey: "key-2"},
		{ID: "r1", Name: "Noodle Bar", APIKey: "key-1"},
	} {
		if err := s.CreateRestaurant(ctx, &r); err != nil {
			t.Fatalf("CreateRestaurant(%s) error = %v", r.Name, err)
		}
	}

	t.Run("listing is ordered by name", func(t *testing.T) {
		list, err := s.ListRestaurants(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 || list[0].ID != "r1" || list[1].ID != "r2" {
			t.Errorf("ListRestaurants() = %+v", list)
		}
	})

	t.Run("lookup by api key", func(t *testing.T) {
		r, err := s.RestaurantByAPIKey(ctx, "key-2")
		if err != nil || r.ID != "r2" {
			t.Errorf("RestaurantByAPIKey() = %+v, %v", r, err)
		}
		if _, err := s.RestaurantByAPIKey(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("RestaurantByAPIKey(missing) error = %v, want ErrNotFound", err)
		}
	})

	t.Run("api key is unique", func(t *testing.T) {
		dup := models.Restaurant{ID: "r3", Name: "Copycat", APIKey: "key-1"}
		if err := s.CreateRestaurant(ctx, &dup); !errors.Is(err, db.ErrUniqueViolation) {
			t.Errorf("CreateRestaurant(dup key) error = %v, want ErrUniqueViolation", err)
		}
	})
}

func TestDishesByIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	noodle := testutil.CreateTestRestaurant(t, s.db, "Noodle Bar")
	pizza := testutil.CreateTestRestaurant(t, s.db, "Pizza Place")
	ramen := testutil.CreateTestDish(t, s.db, noodle.ID, "Ramen", "9.50")
	udon := testutil.CreateTestDish(t, s.db, noodle.ID, "Udon", "8.00")
	margherita := testutil.CreateTestDish(t, s.db, pizza.ID, "Margherita", "11.00")

	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{"own dishes", []string{ramen, udon}, 2},
		{"foreign dish filtered", []string{ramen, margherita}, 1},
		{"duplicates collapse", []string{ramen, ramen}, 1},
		{"unknown id", []string{"missing"}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes, err := s.DishesByIDs(ctx, noodle.ID, tt.ids)
			if err != nil {
				t.Fatal(err)
			}
			if len(dishes) != tt.want {
				t.Errorf("got %d dishes, want %d", len(dishes), tt.want)
			}
			for _, d := range dishes {
				if d.RestaurantID != noodle.ID {
					t.Errorf("dish %s belongs to %s", d.ID, d.RestaurantID)
				}
			}
		})
	}

	t.Run("price round trip", func(t *testing.T) {
		dishes, err := s.DishesByIDs(ctx, noodle.ID, []string{ramen})
		if err != nil {
			t.Fatal(err)
		}
		if got := dishes[0].Price.StringFixed(2); got != "9.50" {
			t.Errorf("price = %s, want 9.50", got)
		}
	})
}

func TestCreateMenu_Atomic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testutil.CreateTestRestaurant(t, s.db, "Noodle Bar")
	ramen := testutil.CreateTestDish(t, s.db, r.ID, "Ramen", "9.50")
	today := testutil.Today()

	// A dangling dish reference fails the second insert
	bad := models.Menu{
		ID:           "m-bad",
		RestaurantID: r.ID,
		Name:         "Broken",
		Date:         today,
		Dishes:       []models.Dish{{ID: ramen}, {ID: "missing"}},
	}
	if err := s.CreateMenu(ctx, &bad); err == nil {
		t.Fatal("expected CreateMenu with unknown dish to fail")
	}
	if _, err := s.MenuForDate(ctx, "m-bad", today); !errors.Is(err, ErrNotFound) {
		t.Errorf("partial menu persisted: %v", err)
	}

	good := models.Menu{ID: "m-good", RestaurantID: r.ID, Name: "Lunch", Date: today, Dishes: []models.Dish{{ID: ramen}}}
	if err := s.CreateMenu(ctx, &good); err != nil {
		t.Fatalf("CreateMenu() error = %v", err)
	}

	dup := models.Menu{ID: "m-dup", RestaurantID: r.ID, Name: "Lunch", Date: today, Dishes: []models.Dish{{ID: ramen}}}
	if err := s.CreateMenu(ctx, &dup); !errors.Is(err, db.ErrUniqueViolation) {
		t.Errorf("duplicate menu error = %v, want ErrUniqueViolation", err)
	}
}

func TestMenuForDate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testutil.CreateTestRestaurant(t, s.db, "Noodle Bar")
	ramen := testutil.CreateTestDish(t, s.db, r.ID, "Ramen", "9.50")
	udon := testutil.CreateTestDish(t, s.db, r.ID, "Udon", "8.00")
	today := testutil.Today()
	menuID := testutil.CreateTestMenu(t, s.db, r.ID, "Lunch", today, udon, ramen)

	m, err := s.MenuForDate(ctx, menuID, today)
	if err != nil {
		t.Fatalf("MenuForDate() error = %v", err)
	}
	if len(m.Dishes) != 2 || m.Dishes[0].Name != "Ramen" || m.Dishes[1].Name != "Udon" {
		t.Errorf("dishes = %+v", m.Dishes)
	}

	if _, err := s.MenuForDate(ctx, menuID, testutil.DaysFromToday(1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("MenuForDate(tomorrow) error = %v, want ErrNotFound", err)
	}
}

func TestListMenusAndCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	noodle := testutil.CreateTestRestaurant(t, s.db, "Noodle Bar")
	pizza := testutil.CreateTestRestaurant(t, s.db, "Pizza Place")
	ramen := testutil.CreateTestDish(t, s.db, noodle.ID, "Ramen", "9.50")
	today := testutil.Today()
	testutil.CreateTestMenu(t, s.db, noodle.ID, "Lunch", today, ramen)
	testutil.CreateTestMenu(t, s.db, noodle.ID, "Lunch", testutil.DaysFromToday(-2), ramen)
	testutil.CreateTestMenu(t, s.db, pizza.ID, "Slices", today)

	menus, err := s.ListMenus(ctx, today, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(menus) != 2 {
		t.Fatalf("expected 2 menus today, got %d", len(menus))
	}
	for _, m := range menus {
		if m.Dishes == nil {
			t.Errorf("menu %s has nil dishes", m.Name)
		}
	}

	menus, err = s.ListMenus(ctx, today, pizza.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(menus) != 1 || menus[0].Name != "Slices" || len(menus[0].Dishes) != 0 {
		t.Errorf("ListMenus(pizza) = %+v", menus)
	}

	counts, err := s.MenuCounts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts[noodle.ID] != 2 || counts[pizza.ID] != 1 {
		t.Errorf("MenuCounts() = %v", counts)
	}
}

func TestVotesAndResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	r := testutil.CreateTestRestaurant(t, s.db, "Noodle Bar")
	today := testutil.Today()
	m1 := testutil.CreateTestMenu(t, s.db, r.ID, "Menu 1", today)
	m2 := testutil.CreateTestMenu(t, s.db, r.ID, "Menu 2", today)
	u1 := testutil.CreateTestUser(t, s.db, "user1", models.RoleEmployee)
	u2 := testutil.CreateTestUser(t, s.db, "user2", models.RoleEmployee)

	for i, v := range []models.Vote{
		{ID: "v1", UserID: u1.ID, MenuID: m1},
		{ID: "v2", UserID: u2.ID, MenuID: m1},
		{ID: "v3", UserID: u2.ID, MenuID: m2},
	} {
		v.VotedAt = time.Now().UTC()
		if err := s.CreateVote(ctx, &v); err != nil {
			t.Fatalf("CreateVote(%d) error = %v", i, err)
		}
	}

	dup := models.Vote{ID: "v4", UserID: u1.ID, MenuID: m1, VotedAt: time.Now().UTC()}
	if err := s.CreateVote(ctx, &dup); !errors.Is(err, db.ErrUniqueViolation) {
		t.Errorf("duplicate vote error = %v, want ErrUniqueViolation", err)
	}

	count, err := s.CountVotes(ctx, m1)
	if err != nil || count != 2 {
		t.Errorf("CountVotes(m1) = %d, %v", count, err)
	}

	results, err := s.ResultsForDate(ctx, today)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.MenuResult{{MenuName: "Menu 1", TotalVotes: 2}, {MenuName: "Menu 2", TotalVotes: 1}}
	if len(results) != 2 || results[0] != want[0] || results[1] != want[1] {
		t.Errorf("ResultsForDate() = %+v, want %+v", results, want)
	}
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := models.User{ID: "u1", Username: "alice", PasswordHash: "hash", Role: models.RoleEmployee, CreatedAt: time.Now().UTC()}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	byID, err := s.UserByID(ctx, "u1")
	if err != nil || byID.Username != "alice" {
		t.Errorf("UserByID() = %+v, %v", byID, err)
	}
	byName, err := s.UserByUsername(ctx, "alice")
	if err != nil || byName.ID != "u1" {
		t.Errorf("UserByUsername() = %+v, %v", byName, err)
	}
	if _, err := s.UserByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UserByID(missing) error = %v, want ErrNotFound", err)
	}

	dup := models.User{ID: "u2", Username: "alice", PasswordHash: "hash", Role: models.RoleAdmin, CreatedAt: time.Now().UTC()}
	if err := s.CreateUser(ctx, &dup); !errors.Is(err, db.ErrUniqueViolation) {
		t.Errorf("duplicate username error = %v, want ErrUniqueViolation", err)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(2, 3); got != "$2, $3, $4" {
		t.Errorf("placeholders(2, 3) = %q", got)
	}
}
