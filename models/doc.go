// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON (validated with validator/v10 tags):

  - CreateRestaurantRequest: name, description
  - CreateDishRequest: name, description, price
  - CreateMenuRequest: name, date (YYYY-MM-DD), dish_ids
  - CreateVoteRequest: menu
  - CreateUserRequest: username, password, role

# Response Types

  - CreateRestaurantResponse: restaurant fields plus api_key
  - RestaurantV2: restaurant fields plus menu_count, additional_info
  - CreateVoteResponse: message
  - UserResponse: username, groups
  - MenuResult: menu_name, total_votes
  - ErrorResponse: error, message

# Domain Types

  - Restaurant: owns dishes and menus, authenticates writes with its API key
  - Dish: priced item, unique by name within a restaurant
  - Menu: dated, named set of dishes, unique by (restaurant, date, name)
  - Vote: one per (user, menu)
  - User: Admin or Employee

# Identity

Identity is the explicit caller value handed to every service call:

	identity := models.Identity{APIKey: r.Header.Get("x-api-key")}

# Constants

Roles:

	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"

Menu dates use DateLayout ("2006-01-02").
*/
package models
