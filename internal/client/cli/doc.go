// Package cli implements the interactive FlyZone client: a REPL offering
// register/login when anonymous, and chat, flight search, booking and the
// bookings list once authenticated.
package cli
