package main

import (
	"Tuanke/config"
	"Tuanke/dao"
	"Tuanke/models"
	"Tuanke/pkg/database"
	"Tuanke/pkg/log"
	"Tuanke/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	appProvider := InitServer(cfg)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "create-admin",
				Usage: "create an admin account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					return createAdmin(ctx, cfg)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

func createAdmin(ctx *cli.Context, cfg *config.Config) error {
	username := ctx.String("username")
	password := ctx.String("password")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminDAO := dao.NewAdmin(database.NewDB(cfg))
	if _, err := adminDAO.FindByUsername(ctx.Context, username); err == nil {
		return fmt.Errorf("admin %s already exists", username)
	}

	admin := &models.Admin{Username: username, PasswordHash: string(hash)}
	if err := adminDAO.Create(ctx.Context, admin); err != nil {
		return err
	}

	log.L.Info("admin created", zap.String("username", username))
	return nil
}
