package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
)

var (
	adminUsername string
	adminPassword string
	adminLevel    int
)

// createAdminCmd bootstraps the first account; registration over HTTP
// already requires a super admin.
var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if adminUsername == "" || adminPassword == "" {
			return errors.New("--username and --password are required")
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		repo, err := a.repository(cmd.Context())
		if err != nil {
			return err
		}
		auth := service.NewAuthService(a.cfg, repo, jwt.NewManager(&a.cfg.Auth), a.logger)

		err = auth.Register(cmd.Context(), &dto.RegisterRequest{
			Username:  adminUsername,
			Password:  adminPassword,
			UserLevel: adminLevel,
		})
		if err != nil {
			return fmt.Errorf("create admin: %w", err)
		}

		a.logger.Info("admin created", zap.String("username", adminUsername), zap.Int("user_level", adminLevel))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVarP(&adminUsername, "username", "u", "", "account name")
	createAdminCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "initial password")
	createAdminCmd.Flags().IntVarP(&adminLevel, "level", "l", model.LevelSuperAdmin, "1 = super admin, 2 = admin")
}
