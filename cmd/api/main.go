// @title Advent API
// @description API for daily cultural challenge app "Advent"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/limbo/advent/internal/api"
	"github.com/limbo/advent/internal/repository"
	"github.com/limbo/advent/internal/service"
	"github.com/limbo/advent/pkg/cleanup"
	"github.com/limbo/advent/pkg/config"
	jwtservice "github.com/limbo/advent/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	assignmentsRepo := repository.NewAssignmentsRepo(&dbCfg)
	badgesRepo := repository.NewBadgesRepo(&dbCfg)

	selector := service.NewChallengeSelector(rand.NewSource(time.Now().UnixNano()))
	userService := service.NewUserService(usersRepo)
	dailyService := service.NewDailyChallengeService(usersRepo, challengesRepo, assignmentsRepo, selector)
	badgeService := service.NewBadgeService(usersRepo, assignmentsRepo, badgesRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	err := badgeService.EnsureCatalog(ctx)
	cancel()
	if err != nil {
		log.Fatal("seeding badge catalog error: " + err.Error())
	}

	serv := api.New(&api.ServicesList{
		UserService:  userService,
		DailyService: dailyService,
		BadgeService: badgeService,
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err = serv.Run(cfg.GetStringDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
