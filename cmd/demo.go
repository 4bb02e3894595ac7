package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/flavorithm/flavorithm/internal/database"
	"github.com/flavorithm/flavorithm/internal/events"
	"github.com/flavorithm/flavorithm/internal/factories"
	"github.com/flavorithm/flavorithm/internal/models"
	"github.com/flavorithm/flavorithm/internal/repositories/postgres"
	"github.com/flavorithm/flavorithm/internal/restaurant"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walk through the POS flow",
	Long:  `demo registers a member with a peanut allergy, places and completes an order against the live catalog, and prints the allergen warnings, loyalty balance and dish recommendations that result.`,
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
		if cfg.KafkaEnabled {
			producer, err := events.NewProducer(cfg.KafkaBrokerList, cfg.OrderTopic)
			if err != nil {
				return err
			}
			defer producer.Close()
			deps.Publisher = producer
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		rest, err := restaurant.New(ctx, cfg.RestaurantName, deps, cfg.RecommendationCount, rng)
		if err != nil {
			return err
		}

		menu := rest.Menu()
		if len(menu) == 0 {
			log.Println("catalog is empty, adding a few dishes first")
			menuFactory := &factories.MenuItemFactory{}
			for i := 0; i < 5; i++ {
				item := menuFactory.CreateMenuItem()
				if err := rest.AddMenuItem(ctx, &item); err != nil {
					return err
				}
			}
			menu = rest.Menu()
		}
		log.Printf("%s serves %d dishes", rest.Name(), len(menu))

		member, err := rest.RegisterMember(ctx, "Atisak Tongdeeput", "099-999-9999")
		if err != nil {
			return err
		}
		log.Printf("registered member %s", member.MemberID)

		if _, err := rest.AddAllergy(ctx, member, "peanut", models.SeveritySevere); err != nil {
			return err
		}

		order := rest.CreateOrder(member)
		take := 2
		if len(menu) < take {
			take = len(menu)
		}
		for _, item := range menu[:take] {
			warnings := order.AddItem(item)
			for _, warning := range warnings {
				log.Printf("warning: %s", warning)
			}
		}
		if err := rest.CompleteOrder(ctx, order); err != nil {
			return err
		}
		log.Printf("order %s completed, total %.2f, member now has %d points", order.OrderID, order.TotalAmount, member.Points)

		for _, item := range rest.Recommendations(member) {
			log.Printf("recommended: %s (%.2f)", item.Name, item.Price)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
