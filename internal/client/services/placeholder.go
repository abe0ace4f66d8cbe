package services

import (
	"fmt"
	"strings"

	"github.com/flyzone/flyzone-cli/internal/client/models"
)

// Fixed placeholder datasets shown when the backend is unreachable. They are
// deliberately stable so the UI (and tests) can rely on their contents.

func placeholderMyFlights() []models.Flight {
	return []models.Flight{
		{ID: "1", Destination: "Los Angeles", Departure: "New York", Date: "2024-12-20", Time: "08:30", Seat: "12A", Price: 450},
		{ID: "2", Destination: "Miami", Departure: "Chicago", Date: "2024-12-25", Time: "14:20", Seat: "8C", Price: 320},
		{ID: "3", Destination: "Paris", Departure: "New York", Date: "2024-11-15", Time: "22:45", Seat: "15B", Price: 680},
	}
}

// placeholderSearchResults fabricates results on the searched route so the
// degraded listing still reflects what the user asked for. Seats are empty:
// a seat is assigned at booking time.
func placeholderSearchResults(req *FlightSearchRequest) []models.Flight {
	return []models.Flight{
		{ID: "1", Departure: req.From, Destination: req.To, Date: req.Date, Time: "08:30", Price: 299},
		{ID: "2", Departure: req.From, Destination: req.To, Date: req.Date, Time: "14:20", Price: 259},
		{ID: "3", Departure: req.From, Destination: req.To, Date: req.Date, Time: "19:15", Price: 329},
	}
}

func bookingConfirmation(flightID string) string {
	return fmt.Sprintf("Flight %s booked successfully! Check your bookings in \"My Flights\".", flightID)
}

// cannedAgentReply is the keyword-matched fallback used when the agent
// endpoint is unreachable.
func cannedAgentReply(query string) string {
	q := strings.ToLower(query)

	switch {
	case strings.Contains(q, "book") || strings.Contains(q, "flight"):
		return "I'd be happy to help you book a flight! You can use our flight booking feature to search for available flights. What destination are you interested in?"
	case strings.Contains(q, "cancel") || strings.Contains(q, "refund"):
		return "For cancellations and refunds, please check your booking details in the 'My Flights' section. Most tickets can be cancelled up to 24 hours before departure."
	case strings.Contains(q, "baggage") || strings.Contains(q, "luggage"):
		return "For baggage information: Carry-on is included with all tickets. Checked baggage fees vary by destination. Would you like specific information for your upcoming flight?"
	case strings.Contains(q, "check-in") || strings.Contains(q, "checkin"):
		return "Online check-in opens 24 hours before your flight. You can check in through our website or mobile app. Don't forget to have your booking reference ready!"
	default:
		return "Thank you for your message! I'm here to help with flights, bookings, check-ins, baggage, and any other travel-related questions. What would you like to know?"
	}
}
