package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Veraticus/swipe-grocery/internal/catalog"
	"github.com/Veraticus/swipe-grocery/internal/cli"
	"github.com/Veraticus/swipe-grocery/internal/common"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the SQLite product catalog",
		Long: `Inspect and edit the product catalog stored in SQLite.

Set catalog.source to "sqlite" (or pass --catalog sqlite to shop) to swipe
through it instead of the built-in products.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogImportCmd())
	cmd.AddCommand(catalogSeedCmd())
	cmd.AddCommand(catalogRemoveCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			items, err := store.Items(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, cli.FormatWarning("The catalog is empty. Run 'swipe catalog seed' or 'swipe catalog import'."))
				return nil
			}
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Catalog (%d items)", len(items))))
			fmt.Fprintln(out, cli.RenderItemTable(items))
			return nil
		},
	}
}

func catalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import items from a JSON file",
		Long: `Import items from a JSON array. Items are upserted by ID, so importing
the same file twice updates rather than duplicates.`,
		Args: cobra.ExactArgs(1),
		RunE: runCatalogImport,
	}
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	items, err := catalog.LoadJSON(f)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("could not read %s", args[0]), err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	common.LogDebug("Importing catalog items", common.Fields{"file": args[0], "count": len(items), "database": store.Path()})

	bar := cli.NewProgressBar(cmd.ErrOrStderr(), len(items), "Importing items")
	for i := range items {
		if err := store.SaveItem(ctx, &items[i]); err != nil {
			return fmt.Errorf("failed to save item %d: %w", items[i].ID, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	common.LogInfo("Catalog import finished", common.Fields{"file": args[0], "items": len(items)})

	total, err := store.CountItems(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("Import complete",
		fmt.Sprintf("Imported: %d\nCatalog size: %d", len(items), total)))
	return nil
}

func catalogSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty catalog with the built-in products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			items, err := catalog.Default().Items(cmd.Context())
			if err != nil {
				return err
			}
			n, err := store.Seed(cmd.Context(), items)
			if err != nil {
				return fmt.Errorf("failed to seed catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintln(out, cli.FormatWarning("Catalog already has items, nothing seeded"))
				return nil
			}
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Seeded %d items", n)))
			return nil
		},
	}
}

func catalogRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an item from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("%q is not an item ID", args[0]), err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := initStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteItem(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to remove item %d: %w", id, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Removed item %d", id)))
			return nil
		},
	}
}
