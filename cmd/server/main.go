package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "geoquest/internal/adapter/http"
	metricsinmem "geoquest/internal/adapter/metrics/inmemory"
	gormrepo "geoquest/internal/adapter/repo/gorm"
	worldruntime "geoquest/internal/adapter/world/runtime"
	"geoquest/internal/app/combatround"
	"geoquest/internal/app/interact"
	"geoquest/internal/app/mapview"
	"geoquest/internal/app/ports"
	"geoquest/internal/app/replay"

	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"
)

const demoCharacterID = "demo-hero"

func main() {
	db := mustOpenDB()
	if dir := strings.TrimSpace(os.Getenv("GEOQUEST_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}

	characterRepo := gormrepo.NewCharacterRepo(db)
	sessionRepo := gormrepo.NewCombatSessionRepo(db)
	eventRepo := gormrepo.NewRoundEventRepo(db)
	visitRepo := gormrepo.NewPOIVisitRepo(db)
	txManager := gormrepo.NewTxManager(db)
	seedDemoCharacter(characterRepo)

	worldSeed := intEnv("GEOQUEST_WORLD_SEED", worldruntime.DefaultConfig().Seed)
	worldProvider := worldruntime.NewProvider(worldruntime.Config{
		Seed:       worldSeed,
		ViewRadius: intEnv("GEOQUEST_VIEW_RADIUS", worldruntime.DefaultConfig().ViewRadius),
		ChunkStore: gormrepo.NewWorldChunkRepo(db),
	})
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		MapUC: mapview.UseCase{World: worldProvider},
		InteractUC: interact.UseCase{
			TxManager:  txManager,
			Characters: characterRepo,
			Sessions:   sessionRepo,
			Visits:     visitRepo,
			WorldSeed:  worldSeed,
			Now:        time.Now,
		},
		RoundUC: combatround.UseCase{
			TxManager:  txManager,
			Characters: characterRepo,
			Sessions:   sessionRepo,
			Events:     eventRepo,
			Visits:     visitRepo,
			Metrics:    kpiRecorder,
			Now:        time.Now,
		},
		ReplayUC: replay.UseCase{Sessions: sessionRepo, Events: eventRepo},
		KPI:      kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("GEOQUEST_HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("geoquest server listening on %s (world seed %d, demo character: %s)", addr, worldSeed, demoCharacterID)
	s.Spin()
}

func mustOpenDB() *gorm.DB {
	dsn := os.Getenv("GEOQUEST_DB_DSN")
	if dsn == "" {
		log.Fatal("GEOQUEST_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	return db
}

func seedDemoCharacter(repo ports.CharacterRepository) {
	_, err := repo.GetByID(context.Background(), demoCharacterID)
	if err == nil {
		return
	}
	if !errors.Is(err, ports.ErrNotFound) {
		log.Fatalf("load demo character: %v (did you run SQL migrations?)", err)
	}
	seed := ports.CharacterRecord{
		ID:          demoCharacterID,
		Name:        "Demo Hero",
		Level:       3,
		AttackBonus: 3,
		Damage:      5,
		Armor:       10,
		MaxHP:       50,
		CurrentHP:   50,
		Version:     1,
	}
	if saveErr := repo.SaveWithVersion(context.Background(), seed, 0); saveErr != nil {
		log.Fatalf("seed demo character: %v", saveErr)
	}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
