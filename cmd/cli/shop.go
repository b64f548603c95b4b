package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"mysterybox-storefront/internal/handler/middleware"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/countdown"
	"mysterybox-storefront/internal/storefront"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Shopper-side client for a running storefront",
}

var shopQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Fetch promotions once and print the cart quote",
	RunE:  runShopQuote,
}

var shopWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep polling promotions and print the session view",
	RunE:  runShopWatch,
}

var shopCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Submit the persisted cart as an order",
	RunE:  runShopCheckout,
}

func init() {
	shopCmd.PersistentFlags().String("api-url", "", "Storefront base URL (overrides STOREFRONT_API_URL)")
	shopCmd.PersistentFlags().String("cart-file", "", "Cart file (overrides STOREFRONT_CART_FILE)")

	shopCheckoutCmd.Flags().String("name", "", "Customer name")
	shopCheckoutCmd.Flags().String("phone", "", "Customer phone")
	shopCheckoutCmd.Flags().String("email", "", "Customer email")
	shopCheckoutCmd.Flags().String("city", "", "Delivery city")
	shopCheckoutCmd.Flags().String("address", "", "Delivery address")
	_ = shopCheckoutCmd.MarkFlagRequired("name")
	_ = shopCheckoutCmd.MarkFlagRequired("phone")

	shopCmd.AddCommand(shopQuoteCmd, shopWatchCmd, shopCheckoutCmd)
	rootCmd.AddCommand(shopCmd)
}

type shopEnv struct {
	session *storefront.Session
	clock   clock.Clock
	logger  *slog.Logger
	cfg     config.StorefrontConfig
}

func newShopEnv(cmd *cobra.Command) (*shopEnv, error) {
	cfg, logCfg, err := config.LoadStorefrontConfig()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.APIURL = v
	}
	if v, _ := cmd.Flags().GetString("cart-file"); v != "" {
		cfg.CartFile = v
	}

	logger := middleware.NewLogger(logCfg).GetSlogLogger()
	clk := clock.NewRealClock()
	client := storefront.NewClient(cfg.APIURL, cfg.RequestTimeout)
	session, err := storefront.NewSession(client, storefront.NewFileCartStore(cfg.CartFile), clk, storefront.ConfigFrom(cfg), logger)
	if err != nil {
		return nil, err
	}
	return &shopEnv{session: session, clock: clk, logger: logger, cfg: cfg}, nil
}

// refresh loads both promotion sources; failures leave pricing on its fallbacks.
func (e *shopEnv) refresh(ctx context.Context) {
	if err := e.session.RefreshFlashOffer(ctx); err != nil {
		e.logger.WarnContext(ctx, "フラッシュオファーの取得に失敗しました", slog.String("error", err.Error()))
	}
	if err := e.session.RefreshSettings(ctx); err != nil {
		e.logger.WarnContext(ctx, "プロモーション設定の取得に失敗しました", slog.String("error", err.Error()))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runShopQuote(cmd *cobra.Command, _ []string) error {
	env, err := newShopEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	env.refresh(ctx)
	return printJSON(cmd.OutOrStdout(), env.session.View(env.clock.Now()))
}

func runShopWatch(cmd *cobra.Command, _ []string) error {
	env, err := newShopEnv(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env.refresh(ctx)
	env.logger.InfoContext(ctx, "🚀 ストアフロントの監視を開始します", slog.String("api_url", env.cfg.APIURL))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return env.session.Run(ctx) })
	g.Go(func() error {
		return countdown.Run(ctx, env.cfg.SettingsPoll, env.clock, func(now time.Time) {
			_ = printJSON(cmd.OutOrStdout(), env.session.View(now))
		})
	})
	err = g.Wait()
	env.logger.Info("🛑 ストアフロントの監視を停止しました")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runShopCheckout(cmd *cobra.Command, _ []string) error {
	env, err := newShopEnv(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	env.refresh(ctx)

	var c storefront.Customer
	c.Name, _ = cmd.Flags().GetString("name")
	c.Phone, _ = cmd.Flags().GetString("phone")
	c.Email, _ = cmd.Flags().GetString("email")
	c.City, _ = cmd.Flags().GetString("city")
	c.Address, _ = cmd.Flags().GetString("address")

	res, err := env.session.Checkout(ctx, storefront.CheckoutInput{Customer: c})
	if err != nil {
		return err
	}
	if res.ClaimLost {
		env.logger.WarnContext(ctx, "注文は確定しましたが、フラッシュオファーの枠は確保できませんでした",
			slog.String("order_number", res.Order.OrderNumber))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "order %s placed, total %d\n", res.Order.OrderNumber, res.Order.Total)
	return nil
}
