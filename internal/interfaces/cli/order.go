package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/gestion-api/internal/application/dto"
)

func newOrderCmd(svc OrderService) *cobra.Command {
	order := &cobra.Command{
		Use:   "order",
		Short: "Órdenes de compra",
	}
	order.AddCommand(&cobra.Command{
		Use:   "summary <id>",
		Short: "Estado de recepción y pagos de una orden",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeOrderSummary(cmd.OutOrStdout(), o)
			return nil
		},
	})
	return order
}

func writeOrderSummary(w io.Writer, o *dto.PurchaseOrderResponse) {
	fmt.Fprintf(w, "Orden %s (%s)\n", o.Number, o.ID)
	fmt.Fprintf(w, "Estado: %s / %s\n", o.Status, o.PaymentStatus)
	fmt.Fprintf(w, "Total: %s\n", o.Total.StringFixed(2))

	complete := "no"
	if o.Reception.ReceptionComplete {
		complete = "sí"
	}
	fmt.Fprintf(w, "Recepción completa: %s (pendiente %s)\n", complete, o.Reception.TotalPending.String())
	fmt.Fprintf(w, "Pagado: %s  Saldo: %s\n", o.Payments.TotalPaid.StringFixed(2), o.Payments.Remaining.StringFixed(2))

	if len(o.Payments.Payments) == 0 {
		return
	}
	fmt.Fprintln(w, "\nPagos:")
	for _, p := range o.Payments.Payments {
		fmt.Fprintf(w, "  %s  %12s  %s\n", p.Date, p.Amount.StringFixed(2), p.ActorName)
	}
}
