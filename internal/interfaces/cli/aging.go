package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

func newAgingCmd(svc AgingService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Antigüedad de cartera por cliente",
		Example: `  # Cartera a hoy
  gestionctl aging

  # Con fecha de corte y filtro por cliente
  gestionctl aging --cutoff-date 2024-06-30 --filter "peña"

  # Exportar a Excel
  gestionctl aging --cutoff-date 2024-06-30 --format xlsx --out cartera.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cutoff, _ := cmd.Flags().GetString("cutoff-date")
			filter, _ := cmd.Flags().GetString("filter")
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")

			log := logger.WithComponent("gestionctl")
			log.Debug().Str("cutoff_date", cutoff).Str("format", format).Msg("aging")

			ctx := cmd.Context()
			switch format {
			case "table", "json":
				rep, err := svc.Report(ctx, cutoff, filter)
				if err != nil {
					return err
				}
				if format == "json" {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(rep)
				}
				return writeAgingTable(cmd.OutOrStdout(), rep)
			case "xlsx":
				data, name, err := svc.ExportXLSX(ctx, cutoff, filter)
				if err != nil {
					return err
				}
				if out == "" {
					out = name
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("escribir %s: %w", out, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "informe guardado en %s\n", out)
				return nil
			default:
				return fmt.Errorf("formato %q no soportado (table, json, xlsx)", format)
			}
		},
	}
	cmd.Flags().String("cutoff-date", "", "Fecha de corte YYYY-MM-DD (por defecto hoy)")
	cmd.Flags().String("filter", "", "Filtro por nombre o identificación del cliente")
	cmd.Flags().String("format", "table", "Salida: table, json o xlsx")
	cmd.Flags().String("out", "", "Archivo de salida para xlsx (por defecto cartera_<fecha>.xlsx)")
	return cmd
}

func writeAgingTable(w io.Writer, rep *dto.AgingReportResponse) error {
	fmt.Fprintf(w, "Cartera al %s\n\n", rep.CutoffDate)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CLIENTE\tIDENTIFICACIÓN\t0-30\t31-60\t61-90\t+90\tTOTAL\t")
	for _, c := range rep.Clients {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			c.Name, c.Identifier,
			c.Bucket0To30.StringFixed(2), c.Bucket31To60.StringFixed(2),
			c.Bucket61To90.StringFixed(2), c.BucketOver90.StringFixed(2),
			c.TotalPending.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nClientes: %d  Total: %s  Vencido: %s  Por vencer: %s\n",
		rep.Summary.TotalClients,
		rep.TotalPending.StringFixed(2),
		rep.Summary.OverdueAmount.StringFixed(2),
		rep.Summary.NotYetDueAmount.StringFixed(2))
	return nil
}
