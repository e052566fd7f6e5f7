package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/linskybing/civictrack/internal/application"
	"github.com/linskybing/civictrack/internal/repository"
	"github.com/spf13/cobra"
)

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := openDB(); err != nil {
				return err
			}
			slog.Info("schema up to date")
			return nil
		},
	}
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default departments if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}
			svc := application.New(repository.NewRepositories(conn), application.Options{})
			created, err := svc.Department.SeedDefaults(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("departments seeded", "created", created)
			return nil
		},
	}
}

func overdueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "Print open reports past their SLA deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDB()
			if err != nil {
				return err
			}
			svc := application.New(repository.NewRepositories(conn), application.Options{})
			reports, err := svc.Report.ListOverdue()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tISSUE TYPE\tSTATUS\tPRIORITY\tDEADLINE\tTITLE")
			for _, r := range reports {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.Category, r.Status, r.Priority, r.SLADeadline.Format(time.RFC3339), r.Title)
			}
			return w.Flush()
		},
	}
}
