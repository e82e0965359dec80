package cmd

import (
	"fmt"
	"log/slog"

	"github.com/frahmantamala/cashbook-management/internal"
	"github.com/frahmantamala/cashbook-management/internal/audit"
	auditSqlite "github.com/frahmantamala/cashbook-management/internal/audit/sqlite"
	"github.com/frahmantamala/cashbook-management/internal/balance"
	"github.com/frahmantamala/cashbook-management/internal/core/events"
	"github.com/frahmantamala/cashbook-management/internal/database"
	"github.com/frahmantamala/cashbook-management/internal/movement"
	movementSqlite "github.com/frahmantamala/cashbook-management/internal/movement/sqlite"
	"github.com/frahmantamala/cashbook-management/internal/obligation"
	obligationSqlite "github.com/frahmantamala/cashbook-management/internal/obligation/sqlite"
	"github.com/frahmantamala/cashbook-management/internal/user"
	userSqlite "github.com/frahmantamala/cashbook-management/internal/user/sqlite"
	"github.com/frahmantamala/cashbook-management/pkg/logger"
)

// Dependencies wires the store handle and every domain service once at
// process start; commands receive the whole bundle.
type Dependencies struct {
	Config      *internal.Config
	Handle      *database.Handle
	Bus         *events.EventBus
	Users       *user.Service
	Movements   *movement.Service
	Obligations *obligation.Service
	Balances    *balance.Service
	Audit       *audit.Service
	Logger      *slog.Logger
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.AppEnv, cfg.Logging.Level)
	log := logger.LoggerWrapper()

	handle, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	bus := events.NewEventBus(log)

	auditService := audit.NewService(auditSqlite.NewAuditRepository(handle), log)
	audit.NewRecorder(auditService, log).Register(bus)

	movementRepo := movementSqlite.NewMovementRepository(handle)
	obligationRepo := obligationSqlite.NewObligationRepository(handle)

	return &Dependencies{
		Config:      cfg,
		Handle:      handle,
		Bus:         bus,
		Users:       user.NewService(userSqlite.NewUserRepository(handle), log),
		Movements:   movement.NewService(movementRepo, bus, log),
		Obligations: obligation.NewService(obligationRepo, log),
		Balances:    balance.NewService(movementRepo, obligationRepo, log),
		Audit:       auditService,
		Logger:      log,
	}, nil
}

func (d *Dependencies) Close() {
	if err := d.Handle.Close(); err != nil {
		d.Logger.Error("database close error", "error", err)
	}
}
