package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/flavorithm/flavorithm/internal/database"
	"github.com/flavorithm/flavorithm/internal/factories"
	"github.com/flavorithm/flavorithm/internal/repositories/postgres"
	"github.com/flavorithm/flavorithm/internal/restaurant"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with generated menu items and members",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, pool, err := loadConfigAndPool(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		deps := restaurant.Deps{
			Menu:      postgres.NewMenuItemRepository(pool),
			Members:   postgres.NewMemberRepository(pool),
			Allergies: postgres.NewAllergyRepository(pool),
			Orders:    postgres.NewOrderRepository(pool),
		}
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		rest, err := restaurant.New(ctx, cfg.RestaurantName, deps, cfg.RecommendationCount, rng)
		if err != nil {
			return err
		}

		menuFactory := &factories.MenuItemFactory{}
		bar := progressbar.Default(int64(cfg.SeedMenuItems), "seeding menu items")
		for i := 0; i < cfg.SeedMenuItems; i++ {
			item := menuFactory.CreateMenuItem()
			if err := rest.AddMenuItem(ctx, &item); err != nil {
				return fmt.Errorf("seeding menu item: %w", err)
			}
			bar.Add(1)
		}

		memberFactory := &factories.MemberFactory{}
		bar = progressbar.Default(int64(cfg.SeedMembers), "seeding members")
		for i := 0; i < cfg.SeedMembers; i++ {
			profile := memberFactory.CreateProfile()
			if _, err := rest.RegisterMember(ctx, profile.Name, profile.Phone); err != nil {
				return fmt.Errorf("seeding member: %w", err)
			}
			bar.Add(1)
		}

		log.Printf("seeded %d menu items and %d members", cfg.SeedMenuItems, cfg.SeedMembers)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
