package config

import (
	"fmt"
	"strings"
	"testing"

	"kdos-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_DSN", "DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "RATE_LIMIT", "RATE_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.DBDriver != "mysql" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !strings.HasPrefix(cfg.DBDSN, "root:@tcp(127.0.0.1:3306)/kdos?") {
		t.Errorf("unexpected mysql DSN %q", cfg.DBDSN)
	}
	if cfg.RateLimit != 5 || cfg.RateBurst != 10 {
		t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "")
	t.Setenv("RATE_LIMIT", "2.5")
	t.Setenv("RATE_BURST", "not-a-number")
	t.Setenv("MIDTRANS_ENV", "production")

	cfg := Load()
	if cfg.DBDSN != "kdos.db" {
		t.Errorf("expected sqlite file default, got %q", cfg.DBDSN)
	}
	if cfg.RateLimit != 2.5 || cfg.RateBurst != 10 {
		t.Errorf("unexpected rate limit %v/%d", cfg.RateLimit, cfg.RateBurst)
	}
	if cfg.MidtransEnv != "production" {
		t.Errorf("unexpected midtrans env %q", cfg.MidtransEnv)
	}
}

func TestOpenSQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Open("sqlite", ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	var enabled int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Error("expected foreign keys to be enforced")
	}

	if _, err := Open("postgres", "", logger.Silent); err == nil {
		t.Error("expected unsupported driver error")
	}
}

func TestMigrateForeignKeysPointAtParents(t *testing.T) {
	db, err := Open("sqlite", ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	table := func(model any) string {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			t.Fatalf("parse %T: %v", model, err)
		}
		return stmt.Schema.Table
	}
	ddl := func(model any) string {
		var sql string
		err := db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table(model)).
			Scan(&sql).Error
		if err != nil {
			t.Fatalf("read schema of %T: %v", model, err)
		}
		return strings.NewReplacer("`", "", `"`, "").Replace(sql)
	}

	for _, parent := range []any{&models.Customer{}, &models.Staff{}, &models.KoiFish{}} {
		if sql := ddl(parent); strings.Contains(sql, "REFERENCES") {
			t.Errorf("%s should not reference other tables: %s", table(parent), sql)
		}
	}

	cases := []struct {
		child  any
		column string
		parent any
	}{
		{&models.Account{}, "customer_id", &models.Customer{}},
		{&models.Account{}, "staff_id", &models.Staff{}},
		{&models.Transport{}, "staff_id", &models.Staff{}},
		{&models.Transport{}, "delivery_staff_id", &models.Staff{}},
		{&models.FishProfile{}, "koi_fish_id", &models.KoiFish{}},
		{&models.FishProfile{}, "customer_id", &models.Customer{}},
		{&models.Order{}, "customer_id", &models.Customer{}},
		{&models.Order{}, "transport_id", &models.Transport{}},
		{&models.OrderDetails{}, "order_id", &models.Order{}},
		{&models.OrderDetails{}, "fish_profile_id", &models.FishProfile{}},
		{&models.HealthStatus{}, "order_details_id", &models.OrderDetails{}},
		{&models.Feedback{}, "order_id", &models.Order{}},
		{&models.Feedback{}, "customer_id", &models.Customer{}},
	}
	for _, tc := range cases {
		want := fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(", tc.column, table(tc.parent))
		if sql := ddl(tc.child); !strings.Contains(sql, want) {
			t.Errorf("%s: missing %q in %s", table(tc.child), want, sql)
		}
	}
}
