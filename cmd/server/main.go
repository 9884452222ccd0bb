package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"agrisync/config"
	"agrisync/database"
	"agrisync/router"

	// Auth
	authCtrlImp "agrisync/pkg/auth/controllerImp"
	authRepoImp "agrisync/pkg/auth/repositoryImp"
	"agrisync/pkg/auth/service"
	authSvcImp "agrisync/pkg/auth/serviceImp"

	// Collections
	cropCtrlImp "agrisync/pkg/crop/controllerImp"
	cropRepoImp "agrisync/pkg/crop/repositoryImp"
	expenseCtrlImp "agrisync/pkg/expense/controllerImp"
	expenseRepoImp "agrisync/pkg/expense/repositoryImp"
	fieldCtrlImp "agrisync/pkg/field/controllerImp"
	fieldRepoImp "agrisync/pkg/field/repositoryImp"
	incomeCtrlImp "agrisync/pkg/income/controllerImp"
	incomeRepoImp "agrisync/pkg/income/repositoryImp"
	inputCtrlImp "agrisync/pkg/input/controllerImp"
	inputRepoImp "agrisync/pkg/input/repositoryImp"
	inventoryCtrlImp "agrisync/pkg/inventory/controllerImp"
	inventoryRepoImp "agrisync/pkg/inventory/repositoryImp"
	taskCtrlImp "agrisync/pkg/task/controllerImp"
	taskRepoImp "agrisync/pkg/task/repositoryImp"

	// Finance export + health
	financeCtrlImp "agrisync/pkg/finance/controllerImp"
	healthCtrlImp "agrisync/pkg/health/controllerImp"

	"agrisync/entities"
	"agrisync/pkg/middleware"
	"agrisync/pkg/token"
)

var rootCmd = &cobra.Command{
	Use:   "agrisync",
	Short: "Farm-management REST back end",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		db := database.MustOpen(cfg.DBPath)

		e := echo.New()
		e.HideBanner = true
		e.Use(echoMiddleware.Recover())
		e.Use(echoMiddleware.Logger())

		issuer := token.NewIssuer(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

		// Repos
		userRepo := authRepoImp.New(db)
		fRepo := fieldRepoImp.New(db)
		cRepo := cropRepoImp.New(db)
		iRepo := inputRepoImp.New(db)
		inRepo := incomeRepoImp.New(db)
		exRepo := expenseRepoImp.New(db)
		invRepo := inventoryRepoImp.New(db)
		tRepo := taskRepoImp.New(db)

		// Controllers
		authCtrl := authCtrlImp.New(authSvcImp.New(userRepo, issuer), userRepo)
		cols := router.NewCollections(
			fieldCtrlImp.New(fRepo),
			cropCtrlImp.New(cRepo, fRepo),
			inputCtrlImp.New(iRepo, cRepo),
			incomeCtrlImp.New(inRepo),
			expenseCtrlImp.New(exRepo),
			inventoryCtrlImp.New(invRepo),
			taskCtrlImp.New(tRepo, userRepo),
		)
		exportCtrl := financeCtrlImp.New(inRepo, exRepo)
		hCtrl := healthCtrlImp.NewHealthCtrl(db)

		r := router.New(e, middleware.RequireToken(issuer), authCtrl, cols, exportCtrl, hCtrl)

		log.Printf("listening on :%s", cfg.Port)
		return r.Start(":" + cfg.Port)
	},
}

var (
	adminUsername string
	adminEmail    string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if adminUsername == "" || adminEmail == "" || adminPassword == "" {
			return fmt.Errorf("--username, --email and --password are required")
		}
		cfg := config.Load()
		db := database.MustOpen(cfg.DBPath)

		userRepo := authRepoImp.New(db)
		issuer := token.NewIssuer(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
		svc := authSvcImp.New(userRepo, issuer)

		u, err := svc.Register(service.RegisterInput{
			Username: adminUsername,
			Email:    adminEmail,
			Password: adminPassword,
			Role:     entities.RoleAdmin,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created admin %q (id %d)\n", u.Username, u.ID)
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "", "admin username")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password")
	rootCmd.AddCommand(serveCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
