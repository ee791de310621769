// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and constraint
error classification.

# Connections

Open selects the driver from the configured database type:

		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

	  - sqlite (default): modernc.org/sqlite, foreign keys and busy timeout
	    enabled, one open connection
	  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - restaurant: name, description, unique api_key
  - dish: priced items, UNIQUE (restaurant_id, name)
  - menu: dated menus, UNIQUE (restaurant_id, menu_date, name)
  - menu_dish: menu to dish join table
  - app_user: username (unique), bcrypt hash, role
  - vote: UNIQUE (user_id, menu_id)

# Relationships

	restaurant 1──* dish
	restaurant 1──* menu
	menu *──* dish (via menu_dish)
	app_user 1──* vote
	menu 1──* vote

All foreign keys use ON DELETE CASCADE.

# Constraint Errors

IsUniqueViolation recognizes unique constraint failures from both drivers
(SQLSTATE 23505 and SQLITE_CONSTRAINT_UNIQUE/PRIMARYKEY), so callers can turn
a rejected insert into a conflict instead of racing a read-then-write check.
*/
package db
