package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"herbwala/cmd/herbwala/shop"
	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/catalog"
	"herbwala/internal/config"
	"herbwala/internal/identity"
	"herbwala/internal/logging"
	"herbwala/internal/route"
	"herbwala/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	dataDir    string
	startAt    string

	// Catalog flags
	categoryFilter string
	searchQuery    string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "herbwala",
	Short: "Herb Wala - terminal storefront for pure herbal products",
	Long: `herbwala is the Herb Wala shop in your terminal.

Browse the catalog, fill a cart, and check out: the order summary is
handed to WhatsApp or your email client, where a real person confirms
stock and delivery with you. Accounts and sessions persist locally.

Run without arguments to open the interactive storefront.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "herbwala" && cmd.CalledAs() == "herbwala" {
			return nil
		}

		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

// catalogCmd lists products without opening the TUI
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog",
	Long: `Prints the compiled-in catalog as a table.

Examples:
  herbwala catalog
  herbwala catalog --category Powders
  herbwala catalog --search shilajit`,
	RunE: runCatalog,
}

// routeCmd resolves a fragment against the navigation grammar
var routeCmd = &cobra.Command{
	Use:   "route [fragment]",
	Short: "Resolve a navigation fragment",
	Long: `Parses a fragment like "#/product/3" and prints the page it
dispatches to. Anything outside the grammar resolves to home.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

// sessionCmd manages the persisted sign-in
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or clear the persisted session",
}

var sessionWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

var sessionLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out the persisted session",
	RunE:  runLogout,
}

// initCmd writes a starter config
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory and a default config.yaml",
	RunE:  runInit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml (default: ~/.herbwala/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Data directory (default: ~/.herbwala)")
	rootCmd.Flags().StringVar(&startAt, "route", "", `Fragment to open at, e.g. "#/shop"`)

	catalogCmd.Flags().StringVar(&categoryFilter, "category", "", "Only list one category")
	catalogCmd.Flags().StringVar(&searchQuery, "search", "", "Filter by name, category, or description")

	sessionCmd.AddCommand(sessionWhoamiCmd)
	sessionCmd.AddCommand(sessionLogoutCmd)

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path and loads it with flag overrides
// applied.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	return cfg, path, nil
}

// runStorefront launches the interactive shop.
func runStorefront() error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.DataDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}
	defer logging.CloseAll()

	return shop.Run(cfg, path, startAt)
}

// runCatalog prints the product table.
func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	products := catalog.All()
	if searchQuery != "" {
		products = catalog.Search(searchQuery)
	}
	if categoryFilter != "" {
		filtered := products[:0]
		for _, p := range products {
			if strings.EqualFold(p.Category, categoryFilter) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	logger.Debug("Listing catalog",
		zap.Int("products", len(products)),
		zap.String("category", categoryFilter),
		zap.String("search", searchQuery))

	if len(products) == 0 {
		fmt.Println("No products match.")
		return nil
	}

	fmt.Printf("%-4s %-34s %-10s %12s %8s\n", "ID", "NAME", "CATEGORY", "PRICE", "RATING")
	for _, p := range products {
		price := ui.Money(cfg.Shop.Currency, p.Price)
		if p.Discounted() {
			price += "*"
		}
		fmt.Printf("%-4d %-34s %-10s %12s %8.1f\n", p.ID, p.Name, p.Category, price, p.Rating)
	}
	fmt.Println("\n* on sale")
	return nil
}

// runRoute resolves a fragment.
func runRoute(cmd *cobra.Command, args []string) error {
	r := route.Parse(args[0])
	logger.Debug("Resolved fragment", zap.String("input", args[0]), zap.String("page", r.Page.String()))

	if r.Page == route.Product {
		fmt.Printf("%s -> product %d\n", r.Fragment(), r.ProductID)
		return nil
	}
	fmt.Printf("%s -> %s\n", r.Fragment(), r.Page)
	return nil
}

// openManager opens the persisted store and hydrates the identity manager
// for one-shot session commands.
func openManager(ctx context.Context) (*identity.Manager, *store.KV, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	kv, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	mgr := identity.NewManager(store.NewIdentityRepository(kv))
	if err := mgr.Hydrate(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("hydrate: %w", err)
	}
	return mgr, kv, nil
}

// runWhoami prints the signed-in account.
func runWhoami(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mgr, kv, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	s, ok := mgr.Current()
	if !ok {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s>\n", s.Name, s.Email)
	return nil
}

// runLogout clears the persisted session.
func runLogout(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mgr, kv, err := openManager(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	if _, ok := mgr.Current(); !ok {
		fmt.Println("Not signed in.")
		return nil
	}

	mgr.Logout()
	logger.Info("Session cleared")
	fmt.Println("Signed out.")
	return nil
}

// runInit writes the default config if none exists.
func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config already exists at %s\n", path)
		return nil
	}

	cfg := config.DefaultConfig()
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	logger.Info("Wrote default config", zap.String("path", path))
	fmt.Printf("Wrote %s\n", path)
	fmt.Println("Edit contact.whatsapp and contact.order_email before taking orders.")
	return nil
}
