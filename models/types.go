package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User roles. A user's groups are derived from the role.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// DateLayout is the calendar date format used for menus and "today".
const DateLayout = "2006-01-02"

// Default and v2 values of the X-App-Version header
const (
	DefaultAppVersion = "1.0"
	AppVersion2       = "2.0"
)

// Request types

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type CreateDishRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Price       *Price `json:"price" validate:"required"`
}

type CreateMenuRequest struct {
	Name    string   `json:"name" validate:"required,max=50"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	DishIDs []string `json:"dish_ids"`
}

type CreateVoteRequest struct {
	Menu string `json:"menu"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=Admin Employee"`
}

// Response types

type CreateRestaurantResponse struct {
	Restaurant
	APIKey string `json:"api_key"`
}

// RestaurantV2 is the v2 listing shape of a restaurant.
type RestaurantV2 struct {
	Restaurant
	MenuCount      int    `json:"menu_count"`
	AdditionalInfo string `json:"additional_info"`
}

type CreateVoteResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	Username string   `json:"username"`
	Groups   []string `json:"groups"`
}

// Domain types

type Restaurant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	APIKey      string `json:"-"` // Never expose in listings
}

type Dish struct {
	ID           string `json:"id"`
	RestaurantID string `json:"-"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        Price  `json:"price"`
}

type Menu struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Dishes       []Dish `json:"dishes"`
}

type Vote struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user"`
	MenuID  string    `json:"menu"`
	VotedAt time.Time `json:"voted_at"`
}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Groups returns the group memberships derived from the user's role.
func (u User) Groups() []string {
	return []string{u.Role}
}

// IsAdmin reports whether the user carries the Admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Price is a fixed-point amount with two decimal places. It is encoded as a
// JSON string ("12.50") and accepts either a string or a number on input.
type Price struct {
	decimal.Decimal
}

// MaxPrice is the largest price a six-digit, two-place column can hold
var MaxPrice = decimal.RequireFromString("9999.99")

// NewPrice parses a decimal string into a Price
func NewPrice(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, err
	}
	return Price{d}, nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}

// MenuResult is one row of the current-day results.
type MenuResult struct {
	MenuName   string `json:"menu_name"`
	TotalVotes int    `json:"total_votes"`
}

// Identity is the caller as resolved by the access boundary. Services receive
// it explicitly instead of reading request state.
type Identity struct {
	APIKey   string
	UserID   string
	Username string
	Role     string
}

// Authenticated reports whether a user is attached to the identity.
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
