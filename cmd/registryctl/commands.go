package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"hvac_registry/internal/infrastructure/database"
	"hvac_registry/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			pool, err := database.ConnectPostgres(ctx, e.cfg.Postgres)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(ctx, pool); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			e.logger.Info("migrations applied")
			return nil
		},
	}
}

func createTablesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables",
		Short: "Create the DynamoDB tables that do not exist yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			ddb, err := database.ConnectDynamoDB(ctx, e.cfg.DynamoDB)
			if err != nil {
				return err
			}
			created, err := database.EnsureTables(ctx, ddb, e.cfg.DynamoDB, e.logger)
			if err != nil {
				return err
			}
			e.logger.Info("dynamodb tables ready", zap.Strings("created", created))
			return nil
		},
	}
}

func listCmd(e *env) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the registered equipment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			return withCatalog(ctx, e, func(catalog usecase.ICatalogUseCase) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTAG\tMODELO\tMARCA\tLOCAL")
				for _, eq := range catalog.ListEquipments(search) {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%v\n", eq.ID, eq.DisplayTag(), eq.ModelFamily, eq.Brand, eq.Locations())
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Only records whose tag, model family or location contains this text")
	return cmd
}

func exportCmd(e *env) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every equipment to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			return withCatalog(ctx, e, func(catalog usecase.ICatalogUseCase) error {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := catalog.ExportEquipments(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				e.logger.Info("equipment exported", zap.String("file", out))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "equipamentos.xlsx", "Output workbook")
	return cmd
}

func importCmd(e *env) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create equipment from an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			return withCatalog(ctx, e, func(catalog usecase.ICatalogUseCase) error {
				return importWorkbook(ctx, catalog, file, cmd)
			})
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Workbook to import")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func importWorkbook(ctx context.Context, catalog usecase.ICatalogUseCase, path string, cmd *cobra.Command) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	report, err := catalog.ImportEquipments(ctx, f)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "created: %d, failed: %d\n", len(report.Created), len(report.Failed))
	for _, fail := range report.Failed {
		fmt.Fprintf(w, "  row %d (%s): %s\n", fail.Row, fail.Tag, fail.Error)
	}
	if len(report.Failed) > 0 {
		return fmt.Errorf("%d rows were not imported", len(report.Failed))
	}
	return nil
}
