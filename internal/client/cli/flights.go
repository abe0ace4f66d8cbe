package cli

import (
	"context"
	"os"
	"strconv"

	"github.com/flyzone/flyzone-cli/internal/client/services"
)

// MyFlights lists the user's bookings. When the backend is unreachable the
// listing degrades to sample data and a warning line is shown instead of an
// empty screen.
func (a *App) MyFlights(ctx context.Context) error {
	res, err := a.flights.MyFlights(ctx)
	if err != nil {
		return err
	}

	if res.Degraded {
		printlnFn("Warning:", res.Reason, "- showing sample bookings")
	}
	renderFlights(os.Stdout, res.Flights)
	return nil
}

// Search prompts for the search form and lists matching flights.
func (a *App) Search(ctx context.Context) error {
	from, err := getSimpleText(a.reader, "From (departure city)", os.Stdout)
	if err != nil {
		return err
	}
	to, err := getSimpleText(a.reader, "To (destination city)", os.Stdout)
	if err != nil {
		return err
	}
	date, err := getSimpleText(a.reader, "Departure date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	passengersText, err := getSimpleText(a.reader, "Passengers (1-4)", os.Stdout)
	if err != nil {
		return err
	}
	passengers, err := strconv.Atoi(passengersText)
	if err != nil {
		passengers = 0 // let validation produce the message
	}

	res, err := a.flights.Search(ctx, &services.FlightSearchRequest{
		From:       from,
		To:         to,
		Date:       date,
		Passengers: passengers,
	})
	if err != nil {
		return err
	}

	if res.Degraded {
		printlnFn("Warning:", res.Reason, "- showing sample results")
	}
	renderFlights(os.Stdout, res.Flights)
	printlnFn("Use 'book <id>' to book a flight.")
	return nil
}

// Book books a flight by id and prints the confirmation.
func (a *App) Book(ctx context.Context, flightID string) error {
	res, err := a.flights.Book(ctx, flightID)
	if err != nil {
		return err
	}

	if res.Degraded {
		printlnFn("Warning:", res.Reason)
	}
	printlnFn(res.Message)
	return nil
}
