package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BookingBrowser/internal/domain"
)

func resourcesCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Показать справочник ресурсов",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseFilter(filter)
			if err != nil {
				return fmt.Errorf("unknown filter %q", filter)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := bootstrap(ctx, configPath)
			if err != nil {
				return err
			}
			defer a.close()

			list := domain.FilterResources(a.catalog.Resources(), f)
			if len(list) == 0 {
				fmt.Println("No resources found.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			fmt.Fprintln(writer, "ID\tTITLE\tCATEGORY\tLOCATION\tDATE\tTIME\tPRICE")
			for _, r := range list {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
					r.ID, r.Title, r.Category.Label(), r.Location, r.Date, r.Time, r.Price)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(domain.FilterAll), "Фильтр: all|venues|work|health|auto|lodging")
	return cmd
}
