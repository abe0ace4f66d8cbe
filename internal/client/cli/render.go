package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/flyzone/flyzone-cli/internal/client/models"
)

// renderFlights prints flights as an aligned table. Empty seat cells mean
// the seat is assigned at booking time.
func renderFlights(w io.Writer, flights []models.Flight) {
	if len(flights) == 0 {
		fmt.Fprintln(w, "No flights found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFROM\tTO\tDATE\tTIME\tSEAT\tPRICE")
	for _, f := range flights {
		seat := f.Seat
		if seat == "" {
			seat = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t$%.0f\n",
			f.ID, f.Departure, f.Destination, f.Date, f.Time, seat, f.Price)
	}
	_ = tw.Flush()
}
